package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	switch tok.Type {
	case NUMBER, SYMBOL, OTHER:
		return fmt.Sprintf("%s %s", tok.Type, tok.Text)
	case STRING:
		return fmt.Sprintf("%s %q", tok.Type, tok.Text)
	case ERROR, INCOMPLETE:
		return fmt.Sprintf("%s: %s", tok.Type, tok.Text)
	default:
		return tok.Type.String()
	}
}

type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF
	INCOMPLETE // input ended inside a token; its text is the message

	// Atoms
	NUMBER
	SYMBOL
	STRING
	OTHER // a run of text that is neither a number nor a symbol

	// Operators
	QUOTE
	DOT

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:    "invalid",
		ERROR:      "error",
		EOF:        "EOF",
		INCOMPLETE: "incomplete",
		NUMBER:     "number",
		SYMBOL:     "symbol",
		STRING:     "string",
		OTHER:      "other",
		QUOTE:      "'",
		DOT:        ".",
		PAREN_L:    "(",
		PAREN_R:    ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Fixed returns the token type of a single rune token.  Fixed returns false
// if c does not form a token by itself.
func Fixed(c rune) (Type, bool) {
	switch c {
	case '(':
		return PAREN_L, true
	case ')':
		return PAREN_R, true
	case '\'':
		return QUOTE, true
	case '.':
		return DOT, true
	default:
		return INVALID, false
	}
}

// IsSeparator returns true if c terminates a run of atom text.
func IsSeparator(c rune) bool {
	return c == '(' || c == ')'
}

type Location struct {
	File string
	Pos  int // byte offset of the first rune
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
