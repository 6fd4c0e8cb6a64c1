package lisp

var langSpecialOps = []*BuiltinDef{
	{QuoteSymbol, opQuote},
	{"setq", opSetq},
	{"if", opIf},
	{"defun", opDefun},
	{"progn", opProgn},
}

// DefaultSpecialOps returns the default set of BuiltinDefs added to Env by
// AddSpecialOps.
func DefaultSpecialOps() []*BuiltinDef {
	ops := make([]*BuiltinDef, len(langSpecialOps))
	copy(ops, langSpecialOps)
	return ops
}

func opQuote(env *Env, args *Cell) (*Cell, error) {
	return quote(args)
}

// opSetq evaluates its second argument and assigns the value to the symbol
// given as its first argument.
func opSetq(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("setq", args, 2)
	if err != nil {
		return nil, err
	}
	sym := cells[0]
	if sym.Type != LSymbol {
		return nil, Errorf(ErrType, "setq: first argument is not a symbol: %v", sym)
	}
	val, err := env.Eval(cells[1])
	if err != nil {
		return nil, err
	}
	env.Set(sym.Str, val)
	return val, nil
}

func opIf(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("if", args, -1)
	if err != nil {
		return nil, err
	}
	if len(cells) != 2 && len(cells) != 3 {
		return nil, Errorf(ErrArity, "if expects 2 or 3 arguments (got %d)", len(cells))
	}
	test, err := env.Eval(cells[0])
	if err != nil {
		return nil, err
	}
	if test.IsValue() {
		return env.Eval(cells[1])
	}
	if len(cells) == 3 {
		return env.Eval(cells[2])
	}
	return Nil(), nil
}

// opDefun binds a user function in the root environment and returns its name.
//
//	(defun name (formals...) body...)
func opDefun(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("defun", args, -1)
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, Errorf(ErrArity, "defun expects a name and a formal argument list (got %d arguments)", len(cells))
	}
	name := cells[0]
	if name.Type != LSymbol {
		return nil, Errorf(ErrType, "defun: function name is not a symbol: %v", name)
	}
	formals := cells[1]
	if formals.Type != LCons && formals.Type != LNil {
		return nil, Errorf(ErrType, "defun: formal arguments are not a list: %v", formals)
	}
	params, err := Slice(formals)
	if err != nil {
		return nil, Errorf(ErrType, "defun: improper formal argument list: %v", formals)
	}
	for _, p := range params {
		if p.Type != LSymbol {
			return nil, Errorf(ErrType, "defun: formal argument is not a symbol: %v", p)
		}
	}
	body := args.Cddr()
	env.Root().Bind(name.Str, Func(name.Str, env, formals, body))
	return Symbol(name.Str), nil
}

func opProgn(env *Env, args *Cell) (*Cell, error) {
	return env.progn(args)
}
