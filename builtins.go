package lisp

import (
	"fmt"
	"math"

	"github.com/nukata/goarith"
)

func toArith(name string, v Value) (goarith.Number, error) {
	n, ok := v.(Number)
	if !ok {
		return nil, &TypeMismatchError{Context: name, Want: "number", Got: v}
	}
	return goarith.AsNumber(float64(n)), nil
}

func fromArith(n goarith.Number) Number {
	if f, ok := n.(goarith.Float64); ok {
		return Number(f)
	}
	panic(fmt.Sprintf("non-float result %v (%T)", n, n))
}

// fold makes a builtin which applies op from left to right over one or
// more numbers.
func fold(name string, op func(a, b goarith.Number) goarith.Number) *Native {
	return &Native{name, func(args List) (Value, error) {
		if len(args) == 0 {
			return nil, &ArityError{Callee: name, Want: 1, AtLeast: true}
		}
		acc, err := toArith(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, x := range args[1:] {
			b, err := toArith(name, x)
			if err != nil {
				return nil, err
			}
			acc = op(acc, b)
		}
		return fromArith(acc), nil
	}}
}

// compare makes a builtin which tests the ordering of exactly two numbers.
// When either is NaN it returns unordered.
func compare(name string, test func(cmp int) bool, unordered Boolean) *Native {
	return &Native{name, func(args List) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Callee: name, Want: 2, Got: len(args)}
		}
		a, err := toArith(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := toArith(name, args[1])
		if err != nil {
			return nil, err
		}
		if math.IsNaN(float64(args[0].(Number))) || math.IsNaN(float64(args[1].(Number))) {
			return unordered, nil
		}
		return Boolean(test(a.Cmp(b))), nil
	}}
}

// quotient is float64 division; 1/0 is +Inf.
func quotient(a, b goarith.Number) goarith.Number {
	return goarith.AsNumber(float64(fromArith(a)) / float64(fromArith(b)))
}

// Builtins lists the procedures of the standard environment.
func Builtins() []*Native {
	return []*Native{
		fold("+", goarith.Number.Add),
		fold("-", goarith.Number.Sub),
		fold("*", goarith.Number.Mul),
		fold("/", quotient),
		compare(">", func(c int) bool { return c > 0 }, False),
		compare("<", func(c int) bool { return c < 0 }, False),
		compare("==", func(c int) bool { return c == 0 }, False),
		compare("!=", func(c int) bool { return c != 0 }, True),
		compare(">=", func(c int) bool { return c >= 0 }, False),
		compare("<=", func(c int) bool { return c <= 0 }, False),
	}
}

// NewStandardEnvironment returns a new root environment holding the
// builtins. Each call returns an independent environment.
func NewStandardEnvironment() *Environment {
	env := NewEnvironment(nil)
	for _, f := range Builtins() {
		env.Define(Symbol(f.Name), f)
	}
	return env
}
