package lisp

import "log/slog"

// Interpreter is a session: a standard environment that successive
// programs build on, plus the limits and logger evaluation runs with.
type Interpreter struct {
	Env      *Environment
	MaxDepth int // zero means unlimited
	Logger   *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxDepth sets how deeply evaluation may nest before it fails with
// ErrRecursionDepth.
func WithMaxDepth(n int) Option {
	return func(ip *Interpreter) { ip.MaxDepth = n }
}

// WithLogger sets the logger procedure calls and definitions are traced to
// at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(ip *Interpreter) { ip.Logger = l }
}

// NewInterpreter returns a session on a fresh standard environment.
func NewInterpreter(opts ...Option) *Interpreter {
	ip := &Interpreter{
		Env:      NewStandardEnvironment(),
		MaxDepth: DefaultMaxDepth,
		Logger:   discard,
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Reset discards every definition made in the session.
func (ip *Interpreter) Reset() {
	ip.Env = NewStandardEnvironment()
}

func (ip *Interpreter) machine() *machine {
	log := ip.Logger
	if log == nil {
		log = discard
	}
	return &machine{max: ip.MaxDepth, log: log}
}

// Eval evaluates an expression in the session environment.
func (ip *Interpreter) Eval(exp Value) (Value, error) {
	return ip.machine().eval(exp, ip.Env)
}

// EvalString evaluates every expression of src in the session
// environment and returns the value of the last one.
func (ip *Interpreter) EvalString(src string) (Value, error) {
	m := ip.machine()
	v, err := m.evalString(src, ip.Env)
	if err != nil {
		m.log.Debug("evaluation failed", slog.Any("error", err))
	}
	return v, err
}
