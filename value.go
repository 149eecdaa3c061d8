// Package lisp implements a little Lisp: a tokenizer, a recursive-descent
// reader, lexical environments and a tree-walking evaluator with closures.
//
// The evaluator performs no I/O. Embedders build a standard environment once
// with NewStandardEnvironment and feed it program text with EvalString.
package lisp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is an S-expression. It is both the syntax tree handed to Evaluate
// and the result Evaluate returns. The variants are Number, Symbol,
// Boolean, List, *Native and *Closure.
type Value interface {
	fmt.Stringer
	value()
}

// Number represents a numeric literal or result.
type Number float64

// Symbol represents an identifier.
type Symbol string

// Boolean represents a truth value. Two Booleans are the same value when
// they hold the same bool.
type Boolean bool

// List represents a compound expression or quoted list data.
// A List must not be modified once it has been built.
type List []Value

// The canonical truth values.
const (
	True  = Boolean(true)
	False = Boolean(false)
)

// Nil is the empty list.
var Nil = List{}

// Symbols with special meaning to Evaluate.
const (
	Quote  = Symbol("quote")
	If     = Symbol("if")
	Define = Symbol("define")
	SetQ   = Symbol("set!")
	Lambda = Symbol("lambda")
	Begin  = Symbol("begin")
)

func (Number) value()  {}
func (Symbol) value()  {}
func (Boolean) value() {}
func (List) value()    {}

// String writes integral numbers without an exponent up to 1e21.
func (n Number) String() string {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s Symbol) String() string {
	return string(s)
}

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (l List) String() string {
	ss := make([]string, len(l))
	for i, x := range l {
		ss[i] = x.String()
	}
	return "(" + strings.Join(ss, " ") + ")"
}

//----------------------------------------------------------------------

// Callable is a Value that can be applied to arguments.
type Callable interface {
	Value
	callable()
}

// Native represents a builtin procedure implemented in Go.
type Native struct {
	Name string
	Fn   func(args List) (Value, error)
}

// Closure represents a lambda expression with its environment.
type Closure struct {
	Params []Symbol
	Body   Value
	Env    *Environment
}

func (*Native) value()     {}
func (*Native) callable()  {}
func (*Closure) value()    {}
func (*Closure) callable() {}

func (f *Native) String() string {
	return "#<builtin " + f.Name + ">"
}

func (c *Closure) String() string {
	ss := make([]string, len(c.Params))
	for i, p := range c.Params {
		ss[i] = string(p)
	}
	return "#<lambda (" + strings.Join(ss, " ") + ") " + c.Body.String() + ">"
}

// typeName names the variant of v for error messages.
func typeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	case Boolean:
		return "boolean"
	case List:
		return "list"
	case *Native, *Closure:
		return "procedure"
	case nil:
		return "nothing"
	}
	return fmt.Sprintf("%T", v)
}

// Equal reports whether a and b are the same value. Numbers, symbols and
// booleans compare by content, lists element by element and procedures
// by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Number, Symbol, Boolean, *Native, *Closure:
		return a == b
	}
	return false
}
