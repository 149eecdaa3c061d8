package lisp

import (
	"errors"
	"io"
	"log/slog"
)

// DefaultMaxDepth bounds the nesting of evaluation unless an Interpreter
// is told otherwise.
const DefaultMaxDepth = 10000

// machine carries the state of one evaluation: how deeply Evaluate is
// nested, and where to trace procedure calls.
type machine struct {
	depth int
	max   int
	log   *slog.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Evaluate evaluates an expression in an environment.
func Evaluate(exp Value, env *Environment) (Value, error) {
	m := &machine{max: DefaultMaxDepth, log: discard}
	return m.eval(exp, env)
}

// EvalString reads every expression of src and evaluates them in order
// in env, returning the value of the last one. Evaluation stops at the
// first error; definitions made before it stay in env.
func EvalString(src string, env *Environment) (Value, error) {
	m := &machine{max: DefaultMaxDepth, log: discard}
	return m.evalString(src, env)
}

func (m *machine) evalString(src string, env *Environment) (Value, error) {
	p := NewParser(Tokenize(src))
	if !p.More() {
		return nil, &SyntaxError{Msg: "no expression", Err: ErrUnexpectedEOF}
	}
	var result Value
	for p.More() {
		exp, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if result, err = m.eval(exp, env); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func malformed(form Symbol) error {
	return &SyntaxError{Msg: "malformed " + string(form)}
}

func (m *machine) eval(exp Value, env *Environment) (Value, error) {
	m.depth++
	defer func() { m.depth-- }()
	if m.max > 0 && m.depth > m.max {
		return nil, ErrRecursionDepth
	}
	switch x := exp.(type) {
	case Symbol:
		if v, ok := env.Lookup(x); ok {
			return v, nil
		}
		return nil, &UnboundNameError{Name: x}
	case List:
		if len(x) == 0 {
			return x, nil
		}
		if kar, ok := x[0].(Symbol); ok {
			switch kar {
			case Quote: // (quote e)
				if len(x) != 2 {
					return nil, malformed(kar)
				}
				return x[1], nil
			case If: // (if e1 e2 e3)
				return m.evalIf(x, env)
			case Define: // (define var e)
				return m.evalDefine(x, env)
			case SetQ: // (set! var e)
				return m.evalSetQ(x, env)
			case Lambda: // (lambda (v...) e)
				return m.evalLambda(x, env)
			case Begin: // (begin e...)
				return m.evalBegin(x, env)
			}
		}
		return m.apply(x, env)
	}
	return exp, nil // a number, #t, #f or a procedure
}

func (m *machine) evalIf(x List, env *Environment) (Value, error) {
	if len(x) != 4 {
		return nil, malformed(If)
	}
	test, err := m.eval(x[1], env)
	if err != nil {
		return nil, err
	}
	switch test {
	case True:
		return m.eval(x[2], env)
	case False:
		return m.eval(x[3], env)
	}
	return nil, &TypeMismatchError{Context: "if", Want: "boolean", Got: test}
}

// variable returns the target of define or set!.
func variable(x List) (Symbol, error) {
	if len(x) != 3 {
		return "", malformed(x[0].(Symbol))
	}
	name, ok := x[1].(Symbol)
	if !ok {
		return "", &TypeMismatchError{Context: string(x[0].(Symbol)), Want: "symbol", Got: x[1]}
	}
	return name, nil
}

func (m *machine) evalDefine(x List, env *Environment) (Value, error) {
	name, err := variable(x)
	if err != nil {
		return nil, err
	}
	val, err := m.eval(x[2], env)
	if err != nil {
		return nil, err
	}
	env.Define(name, val)
	m.log.Debug("define", slog.String("name", string(name)))
	return val, nil
}

func (m *machine) evalSetQ(x List, env *Environment) (Value, error) {
	name, err := variable(x)
	if err != nil {
		return nil, err
	}
	val, err := m.eval(x[2], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, val); err != nil {
		return nil, err
	}
	m.log.Debug("set!", slog.String("name", string(name)))
	return val, nil
}

func (m *machine) evalLambda(x List, env *Environment) (Value, error) {
	if len(x) != 3 {
		return nil, malformed(Lambda)
	}
	vars, ok := x[1].(List)
	if !ok {
		return nil, &TypeMismatchError{Context: "lambda", Want: "parameter list", Got: x[1]}
	}
	params := make([]Symbol, len(vars))
	for i, v := range vars {
		p, ok := v.(Symbol)
		if !ok {
			return nil, &TypeMismatchError{Context: "lambda", Want: "symbol", Got: v}
		}
		params[i] = p
	}
	return &Closure{Params: params, Body: x[2], Env: env}, nil
}

func (m *machine) evalBegin(x List, env *Environment) (Value, error) {
	if len(x) < 2 {
		return nil, malformed(Begin)
	}
	var result Value
	for _, e := range x[1:] {
		var err error
		if result, err = m.eval(e, env); err != nil {
			return nil, err
		}
	}
	return result, nil
}

//----------------------------------------------------------------------

// apply evaluates (fun arg...): the head first, then each argument from
// left to right.
func (m *machine) apply(x List, env *Environment) (Value, error) {
	fun, err := m.eval(x[0], env)
	if err != nil {
		return nil, err
	}
	f, ok := fun.(Callable)
	if !ok {
		return nil, &TypeMismatchError{Context: stringify(x[0]), Want: "procedure", Got: fun}
	}
	args := make(List, 0, len(x)-1)
	for _, e := range x[1:] {
		a, err := m.eval(e, env)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	m.log.Debug("procedure call",
		slog.Any("callee", x[0]),
		slog.Int("argument-count", len(args)),
		slog.Int("depth", m.depth))
	return m.call(x[0], f, args)
}

func (m *machine) call(head Value, f Callable, args List) (Value, error) {
	switch fn := f.(type) {
	case *Native:
		return fn.Fn(args)
	case *Closure:
		env, err := fn.Env.Extend(fn.Params, args)
		if err != nil {
			var ae *ArityError
			if errors.As(err, &ae) {
				ae.Callee = stringify(head)
			}
			return nil, err
		}
		return m.eval(fn.Body, env)
	}
	panic("unknown callable " + f.String())
}
