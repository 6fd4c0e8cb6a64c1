// Package parser provides a lisp parser.
//
//	expr   := <quote> | <list> | <number> | <string> | <symbol>
//	quote  := '\'' <expr>
//	list   := '(' <expr>* ')' | '(' <expr>+ '.' <expr> ')'
//	number := decimal text accepted by strconv.ParseFloat
//	string := '"' (/[^"\\]/ | '\' /./)* '"'
//	symbol := /[[:alpha:]!?+\-*\/=<>][[:alnum:]!?+\-*\/=<>]*/
//
// The symbol nil reads as the empty list.
package parser

import (
	"strings"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser/rdparser"
	"github.com/kse201/interpreter/parser/token"
)

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ParseString parses every expression in src.
func ParseString(name, src string) ([]*lisp.Cell, error) {
	return NewReader().Read(name, strings.NewReader(src))
}

// ParseOne parses the first expression in src, ignoring anything that
// follows it.  ParseOne returns nil if src contains no expression.
func ParseOne(name, src string) (*lisp.Cell, error) {
	p := rdparser.New(token.NewStringScanner(name, src))
	return p.ParseExpression()
}
