package lisp

import (
	"fmt"
)

// LType is the type of a Cell
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LNumber
	LSymbol
	LString
	LCons
	LSubr
	LFsubr
	LFunc
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LNumber:  "number",
	LSymbol:  "symbol",
	LString:  "string",
	LCons:    "cons",
	LSubr:    "subr",
	LFsubr:   "fsubr",
	LFunc:    "function",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// SubrFunc implements a builtin function.  The arguments of a subr are
// evaluated before it is called.
type SubrFunc func(env *Env, args *Cell) (*Cell, error)

// FsubrFunc implements a special form.  An fsubr receives its arguments
// unevaluated and decides for itself which of them to evaluate in env.
type FsubrFunc func(env *Env, args *Cell) (*Cell, error)

// Cell is a lisp value, an S-expression.  The zero Cell is invalid; use the
// constructors.
type Cell struct {
	Type LType
	Num  float64
	Str  string // symbol name, string contents, or function name

	car *Cell
	cdr *Cell

	Subr  SubrFunc
	Fsubr FsubrFunc

	// Variables needed for user function values
	Env     *Env
	Formals *Cell
	Body    *Cell
}

// Nil returns a Cell representing nil, an empty list, an absent value.
func Nil() *Cell {
	return &Cell{Type: LNil}
}

// Number returns a Cell representing the number x.
func Number(x float64) *Cell {
	return &Cell{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns a Cell representing the symbol s.
func Symbol(s string) *Cell {
	return &Cell{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns a Cell representing the string s.
func String(s string) *Cell {
	return &Cell{
		Type: LString,
		Str:  s,
	}
}

// True returns the canonical true value, the symbol t.
func True() *Cell {
	return Symbol(TrueSymbol)
}

// Bool returns True() if ok and Nil() otherwise.
func Bool(ok bool) *Cell {
	if ok {
		return True()
	}
	return Nil()
}

// Cons returns a new cons cell.  If cdr is a list then Cons returns a list as
// well.  Cons panics if car and cdr are the same cons cell.
func Cons(car, cdr *Cell) *Cell {
	if car == nil {
		car = Nil()
	}
	if cdr == nil {
		cdr = Nil()
	}
	checkAlias(car, cdr)
	return &Cell{
		Type: LCons,
		car:  car,
		cdr:  cdr,
	}
}

// Quote returns the expression (quote v).
func Quote(v *Cell) *Cell {
	return Cons(Symbol(QuoteSymbol), Cons(v, Nil()))
}

// Subr returns a builtin function cell.
func Subr(name string, fn SubrFunc) *Cell {
	return &Cell{
		Type: LSubr,
		Str:  name,
		Subr: fn,
	}
}

// Fsubr returns a special form cell.
func Fsubr(name string, fn FsubrFunc) *Cell {
	return &Cell{
		Type:  LFsubr,
		Str:   name,
		Fsubr: fn,
	}
}

// Func returns a user defined function which binds formals in a child of env
// and evaluates the forms in body.
func Func(name string, env *Env, formals *Cell, body *Cell) *Cell {
	return &Cell{
		Type:    LFunc,
		Str:     name,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsNil returns true if v is nil.  A nil pointer is treated as nil.
func (v *Cell) IsNil() bool {
	return v == nil || v.Type == LNil
}

// IsValue returns true if v is anything but nil.
func (v *Cell) IsValue() bool {
	return !v.IsNil()
}

// IsSymbol returns true if v is a symbol named name.
func (v *Cell) IsSymbol(name string) bool {
	return v != nil && v.Type == LSymbol && v.Str == name
}

// IsFunc returns true if v can be called.
func (v *Cell) IsFunc() bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case LSubr, LFsubr, LFunc:
		return true
	default:
		return false
	}
}

// Car returns the head of cons v.  The car of anything else is nil.
func (v *Cell) Car() *Cell {
	if v == nil || v.Type != LCons {
		return Nil()
	}
	return v.car
}

// Cdr returns the tail of cons v.  The cdr of anything else is nil.
func (v *Cell) Cdr() *Cell {
	if v == nil || v.Type != LCons {
		return Nil()
	}
	return v.cdr
}

// Cadr returns the second element of list v.
func (v *Cell) Cadr() *Cell {
	return v.Cdr().Car()
}

// Cddr returns the list v without its first two elements.
func (v *Cell) Cddr() *Cell {
	return v.Cdr().Cdr()
}

// setCar stores w in the car of cons v.
func (v *Cell) setCar(w *Cell) {
	v.mustCons()
	checkAlias(w, v.cdr)
	checkSelf(v, w)
	v.car = w
}

// setCdr stores w in the cdr of cons v.
func (v *Cell) setCdr(w *Cell) {
	v.mustCons()
	checkAlias(v.car, w)
	checkSelf(v, w)
	v.cdr = w
}

func (v *Cell) mustCons() {
	if v.Type != LCons {
		panic(fmt.Sprintf("not a cons: %v", v.Type))
	}
}

func checkAlias(car, cdr *Cell) {
	if car == cdr && car.Type == LCons {
		panic("cons car and cdr alias the same cell")
	}
}

func checkSelf(v, w *Cell) {
	if v == w {
		panic("cons cell references itself")
	}
}

// Copy creates a deep copy of the receiver.  Function cells share their
// environment.
func (v *Cell) Copy() *Cell {
	if v == nil {
		return nil
	}
	switch v.Type {
	case LCons:
		b := NewListBuilder()
		it := NewListIterator(v)
		for it.Next() {
			b.Append(it.Value().Copy())
		}
		rest := it.Rest()
		if rest.IsValue() {
			b.SetTail(rest.Copy())
		}
		return b.List()
	default:
		cp := &Cell{}
		*cp = *v
		return cp
	}
}

// Equal returns true if v1 is structurally identical to v2.  Functions are
// only equal to themselves, or in the case of builtins, to builtins of the
// same name.
func Equal(v1, v2 *Cell) bool {
	for {
		if v1.IsNil() || v2.IsNil() {
			return v1.IsNil() && v2.IsNil()
		}
		if v1.Type != v2.Type {
			return false
		}
		switch v1.Type {
		case LNumber:
			return v1.Num == v2.Num
		case LSymbol, LString:
			return v1.Str == v2.Str
		case LSubr, LFsubr:
			return v1.Str == v2.Str
		case LFunc:
			return v1 == v2
		case LCons:
			if !Equal(v1.car, v2.car) {
				return false
			}
			v1, v2 = v1.cdr, v2.cdr
		default:
			panic(fmt.Sprintf("unknown cell type: %v", v1.Type))
		}
	}
}

func (v *Cell) String() string {
	return FormatString(v)
}

// GoString makes %#v output readable in test failures.
func (v *Cell) GoString() string {
	if v == nil {
		return "<nil cell>"
	}
	return fmt.Sprintf("lisp.Cell{%v %s}", v.Type, v.String())
}
