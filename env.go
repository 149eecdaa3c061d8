package lisp

// Environment represents a lexical scope: its own bindings and the scope
// it is nested in. Closures share the environments they capture.
type Environment struct {
	vars  map[Symbol]Value
	outer *Environment
}

// NewEnvironment returns an empty scope nested in outer, which may be nil.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[Symbol]Value), outer: outer}
}

// Outer returns the enclosing scope, or nil for a root environment.
func (env *Environment) Outer() *Environment {
	return env.outer
}

// find returns the innermost scope binding name.
func (env *Environment) find(name Symbol) *Environment {
	for ; env != nil; env = env.outer {
		if _, ok := env.vars[name]; ok {
			return env
		}
	}
	return nil
}

// Lookup searches the scope chain for name.
func (env *Environment) Lookup(name Symbol) (Value, bool) {
	if e := env.find(name); e != nil {
		return e.vars[name], true
	}
	return nil, false
}

// Define binds name in this scope, replacing any binding it already has
// here. Outer scopes are never touched.
func (env *Environment) Define(name Symbol, val Value) {
	env.vars[name] = val
}

// Set rebinds name in the innermost scope that already binds it.
func (env *Environment) Set(name Symbol, val Value) error {
	e := env.find(name)
	if e == nil {
		return &UnboundNameError{Name: name}
	}
	e.vars[name] = val
	return nil
}

// Extend builds the scope of a procedure call: a child of env binding
// each of params to the argument at the same position.
func (env *Environment) Extend(params []Symbol, args List) (*Environment, error) {
	if len(params) != len(args) {
		return nil, &ArityError{Callee: "lambda", Want: len(params), Got: len(args)}
	}
	child := &Environment{vars: make(map[Symbol]Value, len(params)), outer: env}
	for i, p := range params {
		child.vars[p] = args[i]
	}
	return child, nil
}
