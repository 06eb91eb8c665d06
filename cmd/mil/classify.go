package main

import (
	"strings"

	"github.com/dariusmocan/interpreter/internal/milerr"
)

// classifyParseError maps one of the parser's accumulated error strings
// to its spec.md §7 kind, grounded on the exact message prefixes
// parser.Parser emits (peekError, noPrefixParseFnError, integer parse
// failure).
func classifyParseError(msg string) *milerr.ParseError {
	switch {
	case strings.HasPrefix(msg, "expected next token to be"):
		return milerr.NewParseError(milerr.KindUnexpectedToken, "%s", msg)
	case strings.HasPrefix(msg, "no prefix parse function"):
		return milerr.NewParseError(milerr.KindMissingPrefix, "%s", msg)
	case strings.HasPrefix(msg, "Could not transform"):
		return milerr.NewParseError(milerr.KindBadInteger, "%s", msg)
	default:
		return milerr.NewParseError(milerr.KindUnexpectedToken, "%s", msg)
	}
}

// classifyRuntimeError maps an *object.Error's message to its spec.md §7
// kind, grounded on the exact wording eval.Eval emits for each case.
func classifyRuntimeError(msg string) *milerr.RuntimeError {
	switch {
	case strings.HasPrefix(msg, "identifier not found:"):
		return milerr.NewRuntimeError(milerr.KindIdentifierNotFound, "%s", msg)
	case strings.HasPrefix(msg, "type mismatch:"):
		return milerr.NewRuntimeError(milerr.KindTypeMismatch, "%s", msg)
	case msg == "Division by zero":
		return milerr.NewRuntimeError(milerr.KindDivisionByZero, "%s", msg)
	case strings.HasPrefix(msg, "unknown operator: -"):
		return milerr.NewRuntimeError(milerr.KindUnaryUnknown, "%s", msg)
	case strings.HasPrefix(msg, "unknown operator:"):
		return milerr.NewRuntimeError(milerr.KindUnknownOperator, "%s", msg)
	default:
		return milerr.NewRuntimeError(milerr.KindUnknownOperator, "%s", msg)
	}
}
