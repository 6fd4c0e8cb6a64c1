package lisp

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runtime is the state shared by every environment of one interpreter
// session.
type Runtime struct {
	// ID identifies the session in log output.
	ID string

	// Stdout receives the output of print.
	Stdout io.Writer

	// Log receives debug traces of evaluation.
	Log *logrus.Entry

	// Reader parses source for Load and LoadString.
	Reader Reader

	// MaxDepth bounds the nesting of evaluation.
	MaxDepth int

	Stack *CallStack

	depth int
}

// NewRuntime returns a Runtime that writes to os.Stdout and logs through the
// standard logrus logger.
func NewRuntime() *Runtime {
	id := uuid.New().String()
	return &Runtime{
		ID:       id,
		Stdout:   os.Stdout,
		Log:      logrus.StandardLogger().WithField("session", id),
		MaxDepth: DefaultMaxDepth,
		Stack:    &CallStack{},
	}
}

// Depth returns the current nesting of evaluation.
func (r *Runtime) Depth() int {
	return r.depth
}

func (r *Runtime) enter() error {
	if r.MaxDepth > 0 && r.depth >= r.MaxDepth {
		return Errorf(ErrDepth, "maximum evaluation depth exceeded: %d", r.MaxDepth)
	}
	r.depth++
	return nil
}

func (r *Runtime) leave() {
	r.depth--
}

func (r *Runtime) debugEnabled() bool {
	return r.Log != nil && r.Log.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func (r *Runtime) debugf(format string, v ...interface{}) {
	if r.debugEnabled() {
		r.Log.WithField("depth", r.depth).Debugf(format, v...)
	}
}

// Reset clears evaluation state left behind by an aborted evaluation.  The
// bindings of the session are untouched.
func (r *Runtime) Reset() {
	r.depth = 0
	r.Stack.Frames = r.Stack.Frames[:0]
}
