/*
File    : monkeymix/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/monkeymix/lexer"

// Operator precedence levels, lowest to highest. Higher numbers
// bind tighter; the Pratt loop compares the caller's precedence against the
// next operator's precedence to decide whether to keep folding left.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // myFunction(x)
	INDEX       // array[index]
)

// precedences maps an infix operator token to its binding strength. Tokens
// that never appear in infix position (and therefore aren't in this table)
// fall back to LOWEST via peekPrecedence/curPrecedence.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LTE:      LESSGREATER,
	lexer.GTE:      LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}
