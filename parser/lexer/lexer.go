package lexer

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kse201/interpreter/parser/token"
)

// symbolPunct are the non-alphanumeric runes allowed in a symbol.
const symbolPunct = "!?+-*/=<>"

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// readErr is the sticky error that ended the token stream (io.EOF when
	// the input was exhausted).
	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken scans and returns the next token.  Once the input is exhausted
// NextToken returns an EOF token on every call.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr)
	}
	lex.skipWhitespace()
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr)
	}
	if typ, ok := token.Fixed(lex.ch); ok {
		return lex.scanner.EmitToken(typ)
	}
	if lex.ch == '"' {
		return lex.readString()
	}
	return lex.readAtom()
}

func (lex *Lexer) emitError(err error) *token.Token {
	if errors.Is(err, io.EOF) {
		return lex.scanner.EmitText(token.EOF, "")
	}
	return lex.scanner.EmitText(token.ERROR, err.Error())
}

// readString reads a string literal whose opening quote is the current rune.
// The emitted token holds the unescaped contents.
func (lex *Lexer) readString() *token.Token {
	var buf strings.Builder
	for {
		if lex.readChar() != nil {
			return lex.unterminated()
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitText(token.STRING, buf.String())
		case '\\':
			if lex.readChar() != nil {
				return lex.unterminated()
			}
			buf.WriteRune(unescape(lex.ch))
		default:
			buf.WriteRune(lex.ch)
		}
	}
}

// unterminated reports a string literal cut off by the end of input as
// INCOMPLETE, so interactive callers can supply more text.
func (lex *Lexer) unterminated() *token.Token {
	if errors.Is(lex.readErr, io.EOF) {
		return lex.scanner.EmitText(token.INCOMPLETE, "unterminated string literal")
	}
	return lex.emitError(lex.readErr)
}

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return c
	}
}

// readAtom reads the maximal run of text starting with the current rune that
// contains no whitespace or list delimiters and classifies it.
func (lex *Lexer) readAtom() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || unicode.IsSpace(c) || token.IsSeparator(c) {
			break
		}
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr)
		}
	}
	text := lex.scanner.Text()
	return lex.scanner.EmitToken(Classify(text))
}

// Classify determines whether text is a NUMBER, a SYMBOL, or OTHER.  Decimal
// text which parses as a float64 is a number, even when it overflows.
// Hexadecimal floats such as 0x1p4 are not numbers.
func Classify(text string) token.Type {
	if !isHex(text) {
		_, err := strconv.ParseFloat(text, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return token.NUMBER
		}
	}
	if isSymbol(text) {
		return token.SYMBOL
	}
	return token.OTHER
}

func isHex(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
}

func isSymbol(text string) bool {
	if text == "" {
		return false
	}
	for i, c := range text {
		if i == 0 && isDigit(c) {
			return false
		}
		if !isSymbolRune(c) {
			return false
		}
	}
	return true
}

func isSymbolRune(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c) || strings.ContainsRune(symbolPunct, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		if lex.readChar() != nil {
			break
		}
	}
	lex.scanner.Ignore()
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		lex.readErr = err
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}
