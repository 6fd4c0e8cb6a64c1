package lisp

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *Env) error

// WithMaximumDepth returns a Config that will prevent an environment from
// nesting evaluation deeper than n.  A non-positive n removes the limit.
func WithMaximumDepth(n int) Config {
	return func(env *Env) error {
		env.Runtime.MaxDepth = n
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *Env) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes print write to w instead of the
// default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *Env) error {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithLogger returns a Config that sends evaluation traces to log.  The
// session field is added to log.
func WithLogger(log *logrus.Entry) Config {
	return func(env *Env) error {
		env.Runtime.Log = log.WithField("session", env.Runtime.ID)
		return nil
	}
}

// InitializeUserEnv binds the default special operators and builtins in env
// and applies config.
func InitializeUserEnv(env *Env, config ...Config) error {
	env.AddSpecialOps()
	env.AddBuiltins()
	env.Bind(TrueSymbol, True())
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}
