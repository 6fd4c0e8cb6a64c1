package rdparser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser/token"
)

func parseString(src string) ([]*lisp.Cell, error) {
	return NewReader().Read("test", strings.NewReader(src))
}

func TestParseProgram(t *testing.T) {
	tests := []struct {
		src    string
		result []string
	}{
		{"", nil},
		{"3", []string{"3"}},
		{"-0.5 abc", []string{"-0.5", "abc"}},
		{`"a\nb"`, []string{`"a\nb"`}},
		{"()", []string{"nil"}},
		{"nil", []string{"nil"}},
		{"(nil)", []string{"(nil)"}},
		{"(1 2 3)", []string{"(1 2 3)"}},
		{"(a (b (c)) d)", []string{"(a (b (c)) d)"}},
		{"'1", []string{"(quote 1)"}},
		{"''a", []string{"(quote (quote a))"}},
		{"'(a 'b)", []string{"(quote (a (quote b)))"}},
		{"(1 . 2)", []string{"(1 . 2)"}},
		{"(1 2 . 3)", []string{"(1 2 . 3)"}},
		{"(1 . (2 3))", []string{"(1 2 3)"}},
		{"(1 . nil)", []string{"(1)"}},
		{"(defun sq (x) (* x x)) (sq 3)", []string{"(defun sq (x) (* x x))", "(sq 3)"}},
	}
	for i, test := range tests {
		exprs, err := parseString(test.src)
		require.NoError(t, err, "test %d: %q", i, test.src)
		var result []string
		for _, v := range exprs {
			result = append(result, v.String())
		}
		assert.Equal(t, test.result, result, "test %d: %q", i, test.src)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src        string
		kind       lisp.ErrorKind
		unexpected bool // wraps io.ErrUnexpectedEOF
	}{
		{"(1 2", lisp.ErrSyntax, true},
		{"((a)", lisp.ErrSyntax, true},
		{"'", lisp.ErrSyntax, true},
		{"(1 .", lisp.ErrSyntax, true},
		{"(1 . 2", lisp.ErrSyntax, true},
		{")", lisp.ErrSyntax, false},
		{".", lisp.ErrSyntax, false},
		{"( . 1)", lisp.ErrSyntax, false},
		{"(1 . )", lisp.ErrSyntax, false},
		{"(1 . 2 3)", lisp.ErrSyntax, false},
		{"(1 . . 2)", lisp.ErrSyntax, false},
		{"3abc", lisp.ErrLexical, false},
		{"(a #)", lisp.ErrLexical, false},
		{`"open`, lisp.ErrLexical, true},
		{`(a "b`, lisp.ErrLexical, true},
		{`'"b\`, lisp.ErrLexical, true},
	}
	for i, test := range tests {
		_, err := parseString(test.src)
		require.Error(t, err, "test %d: %q", i, test.src)
		assert.Equal(t, test.kind, lisp.KindOf(err), "test %d: %q: %v", i, test.src, err)
		assert.Equal(t, test.unexpected, errors.Is(err, io.ErrUnexpectedEOF), "test %d: %q: %v", i, test.src, err)
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := parseString("(a\n  (b c)\n  ))")
	require.Error(t, err)
	assert.Equal(t, "test:3:4: syntax-error: unexpected )", err.Error())

	_, err = parseString("\n (a b")
	require.Error(t, err)
	assert.Equal(t, "test:2:2: syntax-error: unmatched (: unexpected EOF", err.Error())
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"(a b . c)",
		`("x\"y" 1.25 -3 (quote z) nil)`,
		"'(1 (2 (3 . 4)) \"s\\\\t\")",
		"(if (= n 0) 1 (* n (fact (+ n -1))))",
	}
	for _, src := range srcs {
		first, err := parseString(src)
		require.NoError(t, err, src)
		require.Len(t, first, 1)
		second, err := parseString(first[0].String())
		require.NoError(t, err, src)
		require.Len(t, second, 1)
		assert.True(t, lisp.Equal(first[0], second[0]), "%s != %s", first[0], second[0])
	}
}

func TestParseDepth(t *testing.T) {
	src := strings.Repeat("(", 20) + strings.Repeat(")", 20)
	_, err := NewReaderDepth(10).Read("test", strings.NewReader(src))
	assert.Equal(t, lisp.ErrDepth, lisp.KindOf(err))

	_, err = NewReaderDepth(20).Read("test", strings.NewReader(src))
	assert.NoError(t, err)

	_, err = NewReaderDepth(5).Read("test", strings.NewReader("''''''x"))
	assert.Equal(t, lisp.ErrDepth, lisp.KindOf(err))

	deep := strings.Repeat("(", lisp.DefaultMaxDepth+1)
	_, err = parseString(deep)
	assert.Equal(t, lisp.ErrDepth, lisp.KindOf(err))
}

func TestParseExpression(t *testing.T) {
	p := New(token.NewStringScanner("test", "1 (2)"))
	v, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
	v, err = p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "(2)", v.String())
	v, err = p.ParseExpression()
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}
