package lisp

import (
	"errors"
	"fmt"

	"github.com/kse201/interpreter/parser/token"
)

// ErrorKind classifies an Error.
type ErrorKind uint

// Possible ErrorKind values
const (
	ErrUnknown ErrorKind = iota
	ErrLexical
	ErrSyntax
	ErrUnbound
	ErrType
	ErrArity
	ErrDepth
)

var errorKindStrings = []string{
	ErrUnknown: "error",
	ErrLexical: "lexical-error",
	ErrSyntax:  "syntax-error",
	ErrUnbound: "unbound-symbol",
	ErrType:    "type-error",
	ErrArity:   "arity-error",
	ErrDepth:   "depth-exceeded",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrUnknown]
	}
	return errorKindStrings[k]
}

// Error is the error type returned by the reader and the evaluator.
type Error struct {
	Kind ErrorKind
	Msg  string

	// Source is the location of the offending text, when known.
	Source *token.Location

	// Stack is a snapshot of the user function calls active when the error
	// was raised.  It is nil for errors raised outside of any function call.
	Stack *CallStack

	// Err is an underlying cause, such as io.ErrUnexpectedEOF.
	Err error
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// SourceErrorf is like Errorf but attaches the source location loc.
func SourceErrorf(loc *token.Location, kind ErrorKind, format string, v ...interface{}) *Error {
	err := Errorf(kind, format, v...)
	err.Source = loc
	return err
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Source != nil {
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err, if err is (or wraps) an *Error.
// KindOf returns ErrUnknown for other non-nil errors.
func KindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return ErrUnknown
}
