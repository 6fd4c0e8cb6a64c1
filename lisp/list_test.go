package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBuilder(t *testing.T) {
	b := NewListBuilder()
	assert.True(t, b.Empty())
	assert.True(t, b.List().IsNil())

	b.Append(Number(1))
	b.Append(Number(2), Number(3))
	assert.False(t, b.Empty())
	assert.Equal(t, "(1 2 3)", b.List().String())
	assert.Equal(t, 3, Length(b.List()))

	b.SetTail(Symbol("x"))
	assert.Equal(t, "(1 2 3 . x)", b.List().String())

	assert.Panics(t, func() { NewListBuilder().SetTail(Number(1)) })
}

func TestListIterator(t *testing.T) {
	it := NewListIterator(List(Number(1), Number(2)))
	assert.True(t, it.Value().IsNil())
	require.True(t, it.Next())
	assert.Equal(t, 1.0, it.Value().Num)
	require.True(t, it.Next())
	assert.Equal(t, 2.0, it.Value().Num)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())

	it = NewListIterator(Cons(Number(1), Number(2)))
	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.Error(t, it.Err())
	assert.Equal(t, 2.0, it.Rest().Num)
}

func TestSlice(t *testing.T) {
	cells, err := Slice(List(Symbol("a"), Symbol("b")))
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, "b", cells[1].Str)

	cells, err = Slice(Nil())
	assert.NoError(t, err)
	assert.Empty(t, cells)

	_, err = Slice(Cons(Symbol("a"), Symbol("b")))
	assert.Error(t, err)
}
