package lisp

import (
	"io"
	"math"
)

// Builtin is a function implemented in Go.  Builtins bound as subrs receive
// evaluated arguments and builtins bound as special operators receive them
// unevaluated.
type Builtin func(env *Env, args *Cell) (*Cell, error)

// BuiltinDef names a Builtin.
type BuiltinDef struct {
	Name string
	Fun  Builtin
}

var langBuiltins = []*BuiltinDef{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"mod", builtinMod},
	{"<", builtinLT},
	{">", builtinGT},
	{"=", builtinEqual},
	{"eq", builtinEq},
	{"and", builtinAnd},
	{"or", builtinOr},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"cons", builtinCons},
	{"list", builtinList},
	{"null", builtinNull},
	{"print", builtinPrint},
}

// DefaultBuiltins returns the default set of BuiltinDefs added to Env by
// AddBuiltins.
func DefaultBuiltins() []*BuiltinDef {
	ops := make([]*BuiltinDef, len(langBuiltins))
	copy(ops, langBuiltins)
	return ops
}

// argSlice returns the elements of args, checking that there are exactly n
// of them.  A negative n accepts any number.
func argSlice(name string, args *Cell, n int) ([]*Cell, error) {
	cells, err := Slice(args)
	if err != nil {
		return nil, Errorf(ErrType, "%s: improper argument list: %v", name, args)
	}
	if n >= 0 && len(cells) != n {
		return nil, Errorf(ErrArity, "%s expects %d arguments (got %d)", name, n, len(cells))
	}
	return cells, nil
}

func numbers(name string, args *Cell, n int) ([]float64, error) {
	cells, err := argSlice(name, args, n)
	if err != nil {
		return nil, err
	}
	nums := make([]float64, len(cells))
	for i, v := range cells {
		if v.Type != LNumber {
			return nil, Errorf(ErrType, "%s: argument is not a number: %v", name, v)
		}
		nums[i] = v.Num
	}
	return nums, nil
}

func builtinAdd(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("+", args, -1)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, x := range nums {
		sum += x
	}
	return Number(sum), nil
}

// builtinSub subtracts every argument from zero, so (- 3 2 1) is -6.
func builtinSub(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("-", args, -1)
	if err != nil {
		return nil, err
	}
	diff := 0.0
	for _, x := range nums {
		diff -= x
	}
	return Number(diff), nil
}

func builtinMul(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("*", args, -1)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, x := range nums {
		prod *= x
	}
	return Number(prod), nil
}

func builtinDiv(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("/", args, -1)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, Errorf(ErrArity, "/ expects at least one argument")
	}
	quo := nums[0]
	for _, x := range nums[1:] {
		quo /= x
	}
	return Number(quo), nil
}

func builtinMod(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("mod", args, 2)
	if err != nil {
		return nil, err
	}
	return Number(math.Mod(nums[0], nums[1])), nil
}

func builtinLT(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers("<", args, 2)
	if err != nil {
		return nil, err
	}
	return Bool(nums[0] < nums[1]), nil
}

func builtinGT(env *Env, args *Cell) (*Cell, error) {
	nums, err := numbers(">", args, 2)
	if err != nil {
		return nil, err
	}
	return Bool(nums[0] > nums[1]), nil
}

// builtinEqual returns its first argument when both arguments are equal.
func builtinEqual(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("=", args, 2)
	if err != nil {
		return nil, err
	}
	if Equal(cells[0], cells[1]) {
		return cells[0], nil
	}
	return Nil(), nil
}

func builtinEq(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("eq", args, 2)
	if err != nil {
		return nil, err
	}
	return Bool(Equal(cells[0], cells[1])), nil
}

// builtinAnd is true when every adjacent pair of arguments is equal.
func builtinAnd(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("and", args, -1)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(cells); i++ {
		if !Equal(cells[i-1], cells[i]) {
			return Nil(), nil
		}
	}
	return True(), nil
}

// builtinOr is true when some adjacent pair of arguments is equal.
func builtinOr(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("or", args, -1)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(cells); i++ {
		if Equal(cells[i-1], cells[i]) {
			return True(), nil
		}
	}
	return Nil(), nil
}

func listArg(name string, args *Cell) (*Cell, error) {
	cells, err := argSlice(name, args, 1)
	if err != nil {
		return nil, err
	}
	v := cells[0]
	if v.Type != LCons && v.Type != LNil {
		return nil, Errorf(ErrType, "%s: argument is not a list: %v", name, v)
	}
	return v, nil
}

func builtinCAR(env *Env, args *Cell) (*Cell, error) {
	v, err := listArg("car", args)
	if err != nil {
		return nil, err
	}
	return v.Car(), nil
}

func builtinCDR(env *Env, args *Cell) (*Cell, error) {
	v, err := listArg("cdr", args)
	if err != nil {
		return nil, err
	}
	return v.Cdr(), nil
}

func builtinCons(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("cons", args, 2)
	if err != nil {
		return nil, err
	}
	car, cdr := cells[0], cells[1]
	if car == cdr && car.Type == LCons {
		cdr = cdr.Copy()
	}
	return Cons(car, cdr), nil
}

func builtinList(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("list", args, -1)
	if err != nil {
		return nil, err
	}
	return List(cells...), nil
}

func builtinNull(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("null", args, 1)
	if err != nil {
		return nil, err
	}
	return Bool(cells[0].IsNil()), nil
}

// builtinPrint writes its arguments separated by spaces, followed by a
// newline.  Strings are written without quotes.
func builtinPrint(env *Env, args *Cell) (*Cell, error) {
	cells, err := argSlice("print", args, -1)
	if err != nil {
		return nil, err
	}
	w := env.Runtime.Stdout
	for i, v := range cells {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return nil, err
			}
		}
		_, err = Display(w, v)
		if err != nil {
			return nil, err
		}
	}
	_, err = io.WriteString(w, "\n")
	if err != nil {
		return nil, err
	}
	return Nil(), nil
}
