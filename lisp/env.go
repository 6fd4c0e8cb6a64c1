package lisp

import (
	"io"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Env is a lisp environment, a mapping from symbol names to values with a
// link to an enclosing environment.
type Env struct {
	ID      uint
	Scope   map[string]*Cell
	Parent  *Env
	Runtime *Runtime
}

// NewEnv initializes and returns a new Env.  A root environment (parent nil)
// gets a fresh Runtime while child environments share their parent's.
func NewEnv(parent *Env) *Env {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = NewRuntime()
	}
	return &Env{
		ID:      getEnvID(),
		Scope:   make(map[string]*Cell),
		Parent:  parent,
		Runtime: runtime,
	}
}

// Bind binds name to v in env, replacing any existing binding in env.
// Bindings in parent environments are not affected.
func (env *Env) Bind(name string, v *Cell) {
	if v == nil {
		v = Nil()
	}
	env.Scope[name] = v
}

// Lookup returns the value bound to name in env or the nearest enclosing
// environment that binds it.  The second return value is false when name is
// unbound.
func (env *Env) Lookup(name string) (*Cell, bool) {
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope[name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Find returns the value bound to name, or nil when name is unbound.  Callers
// that must distinguish an unbound name from one bound to nil use Lookup.
func (env *Env) Find(name string) *Cell {
	v, ok := env.Lookup(name)
	if !ok {
		return Nil()
	}
	return v
}

// Set updates the nearest existing binding of name.  If name is unbound Set
// binds it in env.
func (env *Env) Set(name string, v *Cell) {
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[name]; ok {
			e.Bind(name, v)
			return
		}
	}
	env.Bind(name, v)
}

// Root returns the root (global) environment of env.
func (env *Env) Root() *Env {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddSpecialOps binds the given special operators to their names in env.  When
// called with no arguments AddSpecialOps adds the DefaultSpecialOps to env.
func (env *Env) AddSpecialOps(ops ...*BuiltinDef) {
	if len(ops) == 0 {
		ops = DefaultSpecialOps()
	}
	for _, op := range ops {
		env.Bind(op.Name, Fsubr(op.Name, FsubrFunc(op.Fun)))
	}
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *Env) AddBuiltins(funs ...*BuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		env.Bind(f.Name, Subr(f.Name, SubrFunc(f.Fun)))
	}
}

// Load reads source code from r and evaluates each form in env.  Load returns
// the value of the last form, or the first error encountered.
func (env *Env) Load(name string, r io.Reader) (*Cell, error) {
	if env.Runtime.Reader == nil {
		return nil, Errorf(ErrUnknown, "no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	ret := Nil()
	for _, expr := range exprs {
		ret, err = env.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// LoadString is like Load but reads from the string src.
func (env *Env) LoadString(name, src string) (*Cell, error) {
	return env.Load(name, strings.NewReader(src))
}
