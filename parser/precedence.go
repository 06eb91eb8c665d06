package parser

import "github.com/dariusmocan/interpreter/token"

// Precedence ladder for the Pratt core, ascending. Grounded on the
// teacher's parser_precedence.go (a named-constant ladder plus a
// token-kind -> precedence lookup function) narrowed to MIL's eight
// operators — no bitwise/shift/range/assignment/member-access precedences,
// since those operators don't exist in MIL's grammar.
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x or !x
	CALL        // myFunction(x)
)

// precedences maps an infix operator's token kind to its binding power.
// A token kind absent from this table binds at LOWEST, which is what stops
// the Pratt loop from trying to treat it as an infix operator.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// peekPrecedence returns the precedence of the peek token, or LOWEST if it
// isn't an infix operator.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// currPrecedence returns the precedence of the current token, or LOWEST.
func (p *Parser) currPrecedence() int {
	if pr, ok := precedences[p.currToken.Type]; ok {
		return pr
	}
	return LOWEST
}
