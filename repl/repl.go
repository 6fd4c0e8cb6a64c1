package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/kse201/interpreter/lisp"
)

// ExitCommand ends an interactive session.
const ExitCommand = "exit"

// Session evaluates source text one line at a time, buffering lines until
// they contain complete expressions.
type Session struct {
	Env    *lisp.Env
	Stdout io.Writer
	Stderr io.Writer

	buf strings.Builder
}

// NewSession returns a Session that evaluates in env and writes values to
// stdout and errors to stderr.  Output from print also goes to stdout, so
// env's runtime is redirected there.  The env must have a Reader configured.
func NewSession(env *lisp.Env, stdout, stderr io.Writer) *Session {
	env.Runtime.Stdout = stdout
	return &Session{
		Env:    env,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Pending returns true if the session holds an incomplete expression.
func (s *Session) Pending() bool {
	return s.buf.Len() > 0
}

// Reset discards any incomplete expression.
func (s *Session) Reset() {
	s.buf.Reset()
}

// Feed evaluates line, along with any buffered lines before it.  Feed returns
// false once the user has asked to quit.
func (s *Session) Feed(line string) bool {
	if !s.Pending() && strings.TrimSpace(line) == ExitCommand {
		return false
	}
	if s.Pending() {
		s.buf.WriteString("\n")
	}
	s.buf.WriteString(line)

	exprs, err := s.Env.Runtime.Reader.Read("stdin", strings.NewReader(s.buf.String()))
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	s.Reset()
	if err != nil {
		s.printError(err)
		return true
	}
	for _, expr := range exprs {
		v, err := s.Env.Eval(expr)
		if err != nil {
			s.Env.Runtime.Reset()
			s.printError(err)
			return true
		}
		fmt.Fprintln(s.Stdout, v)
	}
	return true
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.Stderr, err)
	var lerr *lisp.Error
	if !errors.As(err, &lerr) || lerr.Stack == nil {
		return
	}
	log := s.Env.Runtime.Log
	if log != nil && log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		lerr.Stack.DebugPrint(s.Stderr)
	}
}

// RunRepl runs an interactive session on the terminal until the user quits
// or closes the input.
func RunRepl(env *lisp.Env, prompt string) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	s := NewSession(env, rl.Stdout(), rl.Stderr())
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !s.Feed(line) {
			return nil
		}
		if s.Pending() {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}
