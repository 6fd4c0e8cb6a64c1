package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser"
)

func newSession(t *testing.T, level logrus.Level) (*Session, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&stdout),
		lisp.WithLogger(logrus.NewEntry(log)))
	require.NoError(t, err)
	return NewSession(env, &stdout, &stderr), &stdout, &stderr
}

func TestSessionFeed(t *testing.T) {
	s, stdout, stderr := newSession(t, logrus.InfoLevel)
	assert.True(t, s.Feed("(setq x 2)"))
	assert.True(t, s.Feed("(* x 21) 'done"))
	assert.Equal(t, "2\n42\ndone\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSessionContinuation(t *testing.T) {
	s, stdout, _ := newSession(t, logrus.InfoLevel)
	assert.True(t, s.Feed("(+ 1"))
	assert.True(t, s.Pending())
	assert.Empty(t, stdout.String())

	// exit inside an incomplete expression is just a symbol
	assert.True(t, s.Feed("exit"))
	assert.True(t, s.Pending())

	s.Reset()
	assert.False(t, s.Pending())
	assert.True(t, s.Feed("(+ 1"))
	assert.True(t, s.Feed("2)"))
	assert.False(t, s.Pending())
	assert.Equal(t, "3\n", stdout.String())
}

func TestSessionStringContinuation(t *testing.T) {
	s, stdout, stderr := newSession(t, logrus.InfoLevel)
	assert.True(t, s.Feed(`(print "a`))
	assert.True(t, s.Pending())
	assert.Empty(t, stderr.String())

	assert.True(t, s.Feed(`b")`))
	assert.False(t, s.Pending())
	assert.Equal(t, "a\nb\nnil\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSessionPrintOutput(t *testing.T) {
	var envOut, stdout, stderr bytes.Buffer
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&envOut))
	require.NoError(t, err)

	s := NewSession(env, &stdout, &stderr)
	assert.True(t, s.Feed(`(print "hello" 1)`))
	assert.Equal(t, "hello 1\nnil\n", stdout.String())
	assert.Empty(t, envOut.String())
	assert.Empty(t, stderr.String())
}

func TestSessionErrors(t *testing.T) {
	s, stdout, stderr := newSession(t, logrus.InfoLevel)
	assert.True(t, s.Feed("(undefined)"))
	assert.Equal(t, "unbound-symbol: unbound function: undefined\n", stderr.String())

	stderr.Reset()
	assert.True(t, s.Feed(")"))
	assert.Contains(t, stderr.String(), "syntax-error")
	assert.False(t, s.Pending())

	// the session keeps working after errors
	assert.True(t, s.Feed(`(print "ok")`))
	assert.Equal(t, "ok\nnil\n", stdout.String())
}

func TestSessionErrorStack(t *testing.T) {
	s, _, stderr := newSession(t, logrus.DebugLevel)
	assert.True(t, s.Feed("(defun f () (g))"))
	assert.True(t, s.Feed("(f)"))
	assert.Contains(t, stderr.String(), "unbound function: g")
	assert.Contains(t, stderr.String(), "height 0: f")
}

func TestSessionExit(t *testing.T) {
	s, stdout, _ := newSession(t, logrus.InfoLevel)
	assert.False(t, s.Feed("exit"))
	assert.False(t, s.Feed("  exit  "))
	assert.Empty(t, stdout.String())
}
