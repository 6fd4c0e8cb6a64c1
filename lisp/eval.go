package lisp

import (
	"errors"
	"fmt"
)

// Eval evaluates v in the context (scope) of env and returns the resulting
// Cell.
func (env *Env) Eval(v *Cell) (*Cell, error) {
	if v == nil {
		return Nil(), nil
	}
	rt := env.Runtime
	err := rt.enter()
	if err != nil {
		return nil, err
	}
	defer rt.leave()
	rt.debugf("eval: %v", v)

	switch v.Type {
	case LNil, LNumber, LString, LSubr, LFsubr, LFunc:
		return v, nil
	case LSymbol:
		val, ok := env.Lookup(v.Str)
		if !ok {
			return nil, Errorf(ErrUnbound, "unbound symbol: %s", v.Str)
		}
		return val, nil
	case LCons:
		return env.evalForm(v)
	default:
		panic(fmt.Sprintf("unknown cell type: %v", v.Type))
	}
}

// evalForm evaluates the function application form v.
func (env *Env) evalForm(v *Cell) (*Cell, error) {
	head, args := v.car, v.cdr
	if head.IsSymbol(QuoteSymbol) {
		return quote(args)
	}
	switch head.Type {
	case LSymbol:
		fun, ok := env.Lookup(head.Str)
		if !ok {
			return nil, Errorf(ErrUnbound, "unbound function: %s", head.Str)
		}
		if !fun.IsFunc() {
			return nil, Errorf(ErrType, "%s is not a function: %v", head.Str, fun)
		}
		return env.call(fun, args, true)
	case LNumber:
		return nil, Errorf(ErrType, "number is not a function: %v", head)
	default:
		return nil, Errorf(ErrType, "invalid function form: %v", v)
	}
}

func quote(args *Cell) (*Cell, error) {
	if args.Type != LCons || args.cdr.IsValue() {
		return nil, Errorf(ErrArity, "%s expects exactly one argument: %v", QuoteSymbol, args)
	}
	return args.car, nil
}

// Apply calls fun with the list args.  The elements of args are passed as
// given, they are not evaluated.  If fun is a symbol the function bound to it
// is called.
func (env *Env) Apply(fun *Cell, args *Cell) (*Cell, error) {
	if fun.Type == LSymbol {
		val, ok := env.Lookup(fun.Str)
		if !ok {
			return nil, Errorf(ErrUnbound, "unbound function: %s", fun.Str)
		}
		fun = val
	}
	if !fun.IsFunc() {
		return nil, Errorf(ErrType, "not a function: %v", fun)
	}
	return env.call(fun, args, false)
}

// call invokes fun with args.  Unless fun is a special operator the elements
// of args are evaluated first when evalArgs is true.
func (env *Env) call(fun *Cell, args *Cell, evalArgs bool) (*Cell, error) {
	rt := env.Runtime
	var err error
	if evalArgs && fun.Type != LFsubr {
		args, err = env.evlis(args)
		if err != nil {
			return nil, err
		}
	}
	rt.debugf("apply: %v %v", fun, args)

	switch fun.Type {
	case LSubr:
		return fun.Subr(env, args)
	case LFsubr:
		return fun.Fsubr(env, args)
	case LFunc:
		return env.callFunc(fun, args)
	default:
		panic(fmt.Sprintf("not a function type: %v", fun.Type))
	}
}

// evlis evaluates each element of the list args and returns a new list of the
// results.
func (env *Env) evlis(args *Cell) (*Cell, error) {
	env.Runtime.debugf("evlis: %v", args)
	b := NewListBuilder()
	it := NewListIterator(args)
	for it.Next() {
		v, err := env.Eval(it.Value())
		if err != nil {
			return nil, err
		}
		b.Append(v)
	}
	if it.Err() != nil {
		return nil, Errorf(ErrType, "improper argument list: %v", args)
	}
	return b.List(), nil
}

// callFunc binds the formal arguments of the user function fun in a new
// child of its defining environment and evaluates the function body there.
func (env *Env) callFunc(fun *Cell, args *Cell) (*Cell, error) {
	rt := env.Runtime
	frame := NewEnv(fun.Env)
	formals := NewListIterator(fun.Formals)
	actuals := NewListIterator(args)
	nformal := Length(fun.Formals)
	nactual := Length(args)
	if nformal != nactual {
		return nil, Errorf(ErrArity, "%s expects %d arguments (got %d)", fun.Str, nformal, nactual)
	}
	for formals.Next() && actuals.Next() {
		name := formals.Value().Str
		rt.debugf("bind: %s = %v", name, actuals.Value())
		frame.Bind(name, actuals.Value())
	}

	rt.Stack.Push(fun.Str, args)
	defer rt.Stack.Pop()
	ret, err := frame.progn(fun.Body)
	if err != nil {
		return nil, rt.attachStack(err)
	}
	return ret, nil
}

// progn evaluates the forms in body in order and returns the value of the
// last one.  An empty body evaluates to nil.
func (env *Env) progn(body *Cell) (*Cell, error) {
	ret := Nil()
	it := NewListIterator(body)
	for it.Next() {
		var err error
		ret, err = env.Eval(it.Value())
		if err != nil {
			return nil, err
		}
	}
	if it.Err() != nil {
		return nil, Errorf(ErrType, "improper body: %v", body)
	}
	return ret, nil
}

// attachStack records the current call stack in err unless err already holds
// a stack from a deeper call.
func (r *Runtime) attachStack(err error) error {
	var lerr *Error
	if errors.As(err, &lerr) && lerr.Stack == nil {
		lerr.Stack = r.Stack.Copy()
	}
	return err
}
