package rdparser

import (
	"errors"
	"io"
	"strconv"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser/lexer"
	"github.com/kse201/interpreter/parser/token"
)

type reader struct {
	maxDepth int
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{maxDepth: lisp.DefaultMaxDepth}
}

// NewReaderDepth is like NewReader but the returned reader refuses to nest
// expressions deeper than maxDepth.
func NewReaderDepth(maxDepth int) lisp.Reader {
	return &reader{maxDepth: maxDepth}
}

// Read implements lisp.Reader.
func (r *reader) Read(name string, src io.Reader) ([]*lisp.Cell, error) {
	s := token.NewScanner(name, src)
	p := New(s)
	p.MaxDepth = r.maxDepth
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	// MaxDepth bounds the nesting of lists and quotes.  A non-positive
	// MaxDepth removes the limit.
	MaxDepth int

	lex   *lexer.Lexer
	curr  *token.Token
	peek  *token.Token
	depth int
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		MaxDepth: lisp.DefaultMaxDepth,
		lex:      lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses every expression remaining in the input.
func (p *Parser) ParseProgram() ([]*lisp.Cell, error) {
	var exprs []*lisp.Cell
	for !p.expect(token.EOF) {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses exactly one expression.  At the end of input
// ParseExpression returns nil without an error.
func (p *Parser) ParseExpression() (*lisp.Cell, error) {
	switch p.PeekType() {
	case token.EOF:
		return lisp.Nil(), nil
	case token.NUMBER:
		return p.ParseNumber()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.STRING:
		return p.ParseLiteralString()
	case token.QUOTE:
		return p.ParseQuote()
	case token.PAREN_L:
		return p.ParseConsExpression()
	case token.OTHER:
		p.ReadToken()
		return nil, p.errorf(lisp.ErrLexical, "invalid token: %q", p.Token().Text)
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf(lisp.ErrLexical, "%s", p.Token().Text)
	case token.INCOMPLETE:
		p.ReadToken()
		err := p.errorf(lisp.ErrLexical, "%s", p.Token().Text)
		err.Err = io.ErrUnexpectedEOF
		return nil, err
	default:
		p.ReadToken()
		return nil, p.errorf(lisp.ErrSyntax, "unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseNumber() (*lisp.Cell, error) {
	if !p.expect(token.NUMBER) {
		return nil, p.errorf(lisp.ErrSyntax, "invalid number: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, p.errorf(lisp.ErrLexical, "invalid number literal: %v", text)
	}
	return lisp.Number(x), nil
}

func (p *Parser) ParseSymbol() (*lisp.Cell, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf(lisp.ErrSyntax, "invalid symbol: %v", p.PeekType())
	}
	text := p.Token().Text
	if text == lisp.NilSymbol {
		return lisp.Nil(), nil
	}
	return lisp.Symbol(text), nil
}

func (p *Parser) ParseLiteralString() (*lisp.Cell, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf(lisp.ErrSyntax, "invalid string literal: %v", p.PeekType())
	}
	return lisp.String(p.Token().Text), nil
}

// ParseQuote parses 'expr as (quote expr).
func (p *Parser) ParseQuote() (*lisp.Cell, error) {
	if !p.expect(token.QUOTE) {
		return nil, p.errorf(lisp.ErrSyntax, "invalid quote: %v", p.PeekType())
	}
	quote := p.Token()
	if p.PeekType() == token.EOF {
		return nil, p.unexpectedEOF(quote, "quote without an expression")
	}
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()
	v, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return lisp.Quote(v), nil
}

// ParseConsExpression parses a proper or dotted list.
func (p *Parser) ParseConsExpression() (*lisp.Cell, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf(lisp.ErrSyntax, "invalid list: %v", p.PeekType())
	}
	open := p.Token()
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	b := lisp.NewListBuilder()
	for {
		switch p.PeekType() {
		case token.EOF:
			return nil, p.unexpectedEOF(open, "unmatched %s", open.Type)
		case token.PAREN_R:
			p.ReadToken()
			return b.List(), nil
		case token.DOT:
			p.ReadToken()
			if b.Empty() {
				return nil, p.errorf(lisp.ErrSyntax, "%s without a preceding expression", token.DOT)
			}
			tail, err := p.parseDottedTail(open)
			if err != nil {
				return nil, err
			}
			b.SetTail(tail)
			return b.List(), nil
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		b.Append(x)
	}
}

// parseDottedTail parses the final expression of a dotted list and the closing
// parenthesis that must follow it.
func (p *Parser) parseDottedTail(open *token.Token) (*lisp.Cell, error) {
	switch p.PeekType() {
	case token.EOF:
		return nil, p.unexpectedEOF(open, "unmatched %s", open.Type)
	case token.PAREN_R, token.DOT:
		p.ReadToken()
		return nil, p.errorf(lisp.ErrSyntax, "expected an expression after %s, found %s", token.DOT, p.Token().Type)
	}
	tail, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.expect(token.PAREN_R) {
		return tail, nil
	}
	if p.PeekType() == token.EOF {
		return nil, p.unexpectedEOF(open, "unmatched %s", open.Type)
	}
	p.ReadToken()
	return nil, p.errorf(lisp.ErrSyntax, "expected %s after dotted tail, found %s", token.PAREN_R, p.Token().Type)
}

func (p *Parser) enter() error {
	if p.MaxDepth > 0 && p.depth >= p.MaxDepth {
		return p.errorf(lisp.ErrDepth, "maximum nesting depth exceeded: %d", p.MaxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(kind lisp.ErrorKind, format string, v ...interface{}) *lisp.Error {
	var loc *token.Location
	if p.curr != nil {
		loc = p.curr.Source
	}
	return lisp.SourceErrorf(loc, kind, format, v...)
}

// unexpectedEOF returns a syntax error for input that ended inside the
// expression started by tok.  The error wraps io.ErrUnexpectedEOF so that
// interactive callers can ask for more input.
func (p *Parser) unexpectedEOF(tok *token.Token, format string, v ...interface{}) *lisp.Error {
	err := lisp.SourceErrorf(tok.Source, lisp.ErrSyntax, format, v...)
	err.Err = io.ErrUnexpectedEOF
	return err
}
