package lisp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T, config ...Config) *Env {
	env := NewEnv(nil)
	log, _ := test.NewNullLogger()
	config = append([]Config{WithLogger(logrus.NewEntry(log))}, config...)
	require.NoError(t, InitializeUserEnv(env, config...))
	return env
}

func TestEvalAtoms(t *testing.T) {
	env := newTestEnv(t)
	for _, v := range []*Cell{Nil(), Number(1), String("s"), Subr("f", nil)} {
		ret, err := env.Eval(v)
		require.NoError(t, err)
		assert.Same(t, v, ret)
	}

	env.Bind("x", Number(4))
	ret, err := env.Eval(Symbol("x"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, ret.Num)

	_, err = env.Eval(Symbol("y"))
	assert.Equal(t, ErrUnbound, KindOf(err))
}

func TestEvalQuote(t *testing.T) {
	env := newTestEnv(t)
	form := List(Symbol("a"), Number(1))
	ret, err := env.Eval(Quote(form))
	require.NoError(t, err)
	assert.Same(t, form, ret)
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)

	// arguments are passed unevaluated
	ret, err := env.Apply(Symbol("list"), List(Symbol("a"), Symbol("b")))
	require.NoError(t, err)
	assert.Equal(t, "(a b)", ret.String())

	add, ok := env.Lookup("+")
	require.True(t, ok)
	ret, err = env.Apply(add, List(Number(1), Number(2)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, ret.Num)

	ret, err = env.Apply(Symbol("if"), List(Nil(), Number(1), Number(2)))
	require.NoError(t, err)
	assert.Equal(t, 2.0, ret.Num)

	_, err = env.Apply(Symbol("nope"), Nil())
	assert.Equal(t, ErrUnbound, KindOf(err))
	_, err = env.Apply(Number(1), Nil())
	assert.Equal(t, ErrType, KindOf(err))
}

func TestApplyFunc(t *testing.T) {
	env := newTestEnv(t)
	body := List(List(Symbol("*"), Symbol("x"), Number(2)))
	env.Bind("double", Func("double", env, List(Symbol("x")), body))

	ret, err := env.Apply(Symbol("double"), List(Number(21)))
	require.NoError(t, err)
	assert.Equal(t, 42.0, ret.Num)

	_, err = env.Apply(Symbol("double"), Nil())
	assert.Equal(t, ErrArity, KindOf(err))
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestErrorStack(t *testing.T) {
	env := newTestEnv(t)
	body := List(Symbol("undefined"))
	env.Bind("broken", Func("broken", env, Nil(), body))
	outer := List(List(Symbol("broken")))
	env.Bind("outer", Func("outer", env, Nil(), outer))

	_, err := env.Eval(List(Symbol("outer")))
	require.Error(t, err)
	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, ErrUnbound, lerr.Kind)
	require.NotNil(t, lerr.Stack)
	require.Equal(t, 2, lerr.Stack.Height())
	assert.Equal(t, "broken", lerr.Stack.Top().Name)

	var buf bytes.Buffer
	_, err = lerr.Stack.DebugPrint(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "height 1: broken")
	assert.Contains(t, buf.String(), "height 0: outer")
	assert.Equal(t, 0, env.Runtime.Stack.Height())
	assert.Equal(t, 0, env.Runtime.Depth())
}

func TestEvalDepthLimit(t *testing.T) {
	env := newTestEnv(t, WithMaximumDepth(3))
	nested := List(Symbol("+"), List(Symbol("+"), List(Symbol("+"), Number(1))))
	_, err := env.Eval(nested)
	assert.Equal(t, ErrDepth, KindOf(err))
	assert.Equal(t, 0, env.Runtime.Depth())

	ret, err := env.Eval(List(Symbol("+"), Number(1)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, ret.Num)
}

func TestEvalDebugLog(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	env := newTestEnv(t, WithLogger(logrus.NewEntry(log)))
	_, err := env.Eval(List(Symbol("+"), Number(1), Number(2)))
	require.NoError(t, err)

	var msgs []string
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, env.Runtime.ID, entry.Data["session"])
		msgs = append(msgs, entry.Message)
	}
	assert.Contains(t, msgs, "eval: (+ 1 2)")
	assert.Contains(t, msgs, "evlis: (1 2)")
	assert.Contains(t, msgs, "apply: <subr: +> (1 2)")

	hook.Reset()
	log.SetLevel(logrus.InfoLevel)
	_, err = env.Eval(Number(1))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestPrintStdout(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t, WithStdout(&buf))
	ret, err := env.Eval(List(Symbol("print"), String("hi"), Number(2)))
	require.NoError(t, err)
	assert.True(t, ret.IsNil())
	assert.Equal(t, "hi 2\n", buf.String())
}
