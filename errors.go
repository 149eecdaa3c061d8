package lisp

import (
	"errors"
	"fmt"
	"text/scanner"
)

// ErrUnexpectedEOF is wrapped by the SyntaxError reported when the tokens
// run out inside a list. Embedders use it to ask for more input.
var ErrUnexpectedEOF = errors.New("unexpected EOF")

// ErrRecursionDepth is returned when evaluation nests deeper than the
// interpreter's MaxDepth.
var ErrRecursionDepth = errors.New("recursion too deep")

// SyntaxError reports malformed program text or a malformed special form.
// Pos is invalid for errors found after reading.
type SyntaxError struct {
	Pos scanner.Position
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("syntax error: %s at %s", e.Msg, e.Pos)
	}
	return "syntax error: " + e.Msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// UnboundNameError reports a symbol with no binding in the environment chain.
type UnboundNameError struct {
	Name Symbol
}

func (e *UnboundNameError) Error() string {
	return string(e.Name) + " not found"
}

// ArityError reports a procedure applied to the wrong number of arguments.
// When AtLeast is set, Want is a minimum.
type ArityError struct {
	Callee  string
	Want    int
	Got     int
	AtLeast bool
}

func (e *ArityError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%s: want at least %d args, got %d", e.Callee, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: want %d args, got %d", e.Callee, e.Want, e.Got)
}

// TypeMismatchError reports an operand of the wrong variant.
type TypeMismatchError struct {
	Context string
	Want    string
	Got     Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s %s", e.Context, e.Want, typeName(e.Got), stringify(e.Got))
}

func stringify(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
