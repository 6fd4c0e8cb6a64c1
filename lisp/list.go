package lisp

import "fmt"

// ListBuilder constructs a cons list front to back.
type ListBuilder struct {
	front *Cell
	back  *Cell
}

// NewListBuilder returns an empty ListBuilder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

// List returns a cons list with the elements appended so far.  If Append is
// called after List the value returned by List will be modified.
func (b *ListBuilder) List() *Cell {
	if b.front == nil {
		return Nil()
	}
	return b.front
}

// Empty reports whether no elements have been appended.
func (b *ListBuilder) Empty() bool {
	return b.front == nil
}

// Append adds elements to the end of the cons list.
func (b *ListBuilder) Append(v ...*Cell) {
	for i := range v {
		cell := Cons(v[i], Nil())
		if b.front == nil {
			b.front, b.back = cell, cell
			continue
		}
		b.back.setCdr(cell)
		b.back = cell
	}
}

// SetTail terminates the list with v instead of nil, producing a dotted list.
// SetTail panics if nothing has been appended.
func (b *ListBuilder) SetTail(v *Cell) {
	if b.back == nil {
		panic("dotted tail without a list head")
	}
	b.back.setCdr(v)
}

// ListIterator iterates through cons lists
type ListIterator struct {
	v    *Cell
	rest *Cell
	err  error
}

// NewListIterator returns a ListIterator that will iterate through list v.
func NewListIterator(v *Cell) *ListIterator {
	return &ListIterator{
		v:    Nil(),
		rest: v,
	}
}

// Value returns the iteration's current value.  Value will return nil if Next
// has not been called.
func (it *ListIterator) Value() *Cell {
	return it.v
}

// Rest returns any items remaining to be iterated over.  After Next returns
// false for a dotted list Rest holds the final cdr.
func (it *ListIterator) Rest() *Cell {
	return it.rest
}

// Next advances the iterator to the next list element.  Next returns false if
// iteration terminated, either because the list had no more elements or
// because an non-list value was encountered.
func (it *ListIterator) Next() bool {
	if it.rest.IsNil() || it.err != nil {
		return false
	}
	if it.rest.Type != LCons {
		it.err = fmt.Errorf("not a list: %v", it.rest.Type)
		return false
	}
	it.v = it.rest.car
	it.rest = it.rest.cdr
	return true
}

// Err returns a non-nil error if the iteration encountered a non-list value
// terminating the cons chain.
func (it *ListIterator) Err() error {
	return it.err
}

// List returns a proper list containing v.
func List(v ...*Cell) *Cell {
	b := NewListBuilder()
	b.Append(v...)
	return b.List()
}

// Slice returns the elements of list v.  Slice returns an error if v is not a
// proper list.
func Slice(v *Cell) ([]*Cell, error) {
	var cells []*Cell
	it := NewListIterator(v)
	for it.Next() {
		cells = append(cells, it.Value())
	}
	if it.Err() != nil {
		return nil, it.Err()
	}
	return cells, nil
}

// Length returns the number of elements in list v, ignoring any dotted tail.
func Length(v *Cell) int {
	n := 0
	it := NewListIterator(v)
	for it.Next() {
		n++
	}
	return n
}
