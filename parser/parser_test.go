package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kse201/interpreter/lisp"
)

func TestParseString(t *testing.T) {
	exprs, err := ParseString("test", "(setq x 1) x")
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "(setq x 1)", exprs[0].String())
	assert.Equal(t, "x", exprs[1].String())
}

func TestParseOne(t *testing.T) {
	v, err := ParseOne("test", "(a . b) trailing")
	require.NoError(t, err)
	assert.Equal(t, "(a . b)", v.String())

	v, err = ParseOne("test", "   ")
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	_, err = ParseOne("test", "(a")
	assert.Equal(t, lisp.ErrSyntax, lisp.KindOf(err))
}

func TestLoad(t *testing.T) {
	env := lisp.NewEnv(nil)
	require.NoError(t, lisp.InitializeUserEnv(env, lisp.WithReader(NewReader())))
	v, err := env.LoadString("test", "(defun inc (n) (+ n 1)) (setq x 1) (inc (inc x))")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	v, err = env.LoadString("test", "")
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	_, err = env.LoadString("test", "(inc")
	assert.Equal(t, lisp.ErrSyntax, lisp.KindOf(err))
}
