package lisptest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser"
)

// NewEnv returns an initialized root environment whose print output goes to
// stdout.
func NewEnv(stdout io.Writer, config ...lisp.Config) (*lisp.Env, error) {
	env := lisp.NewEnv(nil)
	log := logrus.New()
	log.SetOutput(io.Discard)
	base := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithLogger(logrus.NewEntry(log)),
	}
	err := lisp.InitializeUserEnv(env, append(base, config...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Env.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or the error message
	Output string // text written by print while evaluating Expr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// EvalString parses src, which must hold exactly one expression, and evaluates
// it in env.  The result is the printed value, or the error message when
// evaluation fails.
func EvalString(env *lisp.Env, src string) (string, error) {
	exprs, err := parser.ParseString("test", src)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	if len(exprs) != 1 {
		return "", fmt.Errorf("expected one expression (got %d)", len(exprs))
	}
	v, err := env.Eval(exprs[0])
	if err != nil {
		env.Runtime.Reset()
		return err.Error(), nil
	}
	return v.String(), nil
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.Envs.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for i, test := range tests {
		var out bytes.Buffer
		env, err := NewEnv(&out, config...)
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			out.Reset()
			result, err := EvalString(env, expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: %v", i, test.Name, j, err)
				continue
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}
