package parser

import "strconv"

// parseInt64 parses a decimal digit run as a signed 64-bit integer,
// surfacing overflow/malformed input as an error the caller turns into a
// parse error rather than panicking. Base is fixed at 10: the lexer's
// readNumber only ever produces plain decimal-digit runs (spec.md §4.1),
// so base-0 auto-detection would misread a leading-zero literal like
// "017" as octal instead of rejecting or accepting it as decimal 17.
func parseInt64(literal string) (int64, error) {
	return strconv.ParseInt(literal, 10, 64)
}
