package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bold() Optional[LastWriteWins[bool]] {
	return Some(LastWriteWins[bool]{Value: true})
}

func TestComposeInsertInsert(t *testing.T) {
	a := newStringDelta().Insert("A", None[Unit]())
	b := newStringDelta().Insert("B", None[Unit]()).Retain(1, None[Unit]())

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Insert("BA", None[Unit]())))
}

func TestComposeInsertRetain(t *testing.T) {
	a := newStringDelta().Insert("A", None[Unit]())
	b := newStringDelta().Retain(1, None[Unit]())

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Insert("A", None[Unit]())))
}

func TestComposeInsertDeleteCancels(t *testing.T) {
	a := newStringDelta().Insert("A", None[Unit]())
	b := newStringDelta().Delete(1)

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestComposeRetainDelete(t *testing.T) {
	a := newStringDelta().Retain(1, None[Unit]())
	b := newStringDelta().Delete(1)

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Delete(1)))
}

func TestComposeDeleteInsert(t *testing.T) {
	a := newStringDelta().Delete(1)
	b := newStringDelta().Insert("B", None[Unit]())

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Insert("B", None[Unit]()).Delete(1)))
}

func TestComposeDeleteDelete(t *testing.T) {
	// base "abcde": a deletes "ab" and keeps "cde"; b then deletes the
	// first of those three kept characters ("c") and keeps "de". The two
	// deletes land adjacent in the composed result and merge; the trailing
	// bare retain over "de" is chopped.
	a := newStringDelta().Delete(2).Retain(3, None[Unit]())
	b := newStringDelta().Delete(1).Retain(2, None[Unit]())

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Delete(3)))
}

func TestComposeInsertMid(t *testing.T) {
	a := newStringDelta().Insert("Hello", None[Unit]())
	b := newStringDelta().Retain(3, None[Unit]()).Insert("X", None[Unit]())

	got, err := Compose(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(newStringDelta().Insert("HelXlo", None[Unit]())))
}

func TestComposeRetainAttributeMerge(t *testing.T) {
	a := NewDelta[string, LastWriteWins[bool]](StringSeq{}).Insert("A", None[LastWriteWins[bool]]())
	b := NewDelta[string, LastWriteWins[bool]](StringSeq{}).Retain(1, bold())

	got, err := Compose(a, b)
	require.NoError(t, err)
	want := NewDelta[string, LastWriteWins[bool]](StringSeq{}).Insert("A", bold())
	assert.True(t, got.Equal(want))
}

func TestComposeLengthMismatch(t *testing.T) {
	a := newStringDelta().Retain(2, None[Unit]())
	b := newStringDelta().Retain(5, None[Unit]())

	_, err := Compose(a, b)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
