package delta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalOmitsAttributesWhenAbsent(t *testing.T) {
	d := newStringDelta().Insert("hi", None[Unit]()).Retain(2, None[Unit]())
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "attributes")
	assert.Contains(t, string(raw), `"insert":"hi"`)
	assert.Contains(t, string(raw), `"retain":2`)
}

func TestMarshalIncludesAttributesWhenPresent(t *testing.T) {
	d := NewDelta[string, LastWriteWins[bool]](StringSeq{})
	d.Retain(2, Some(LastWriteWins[bool]{Value: true}))
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"attributes"`)
}

func TestRoundTripWireFormat(t *testing.T) {
	d := newStringDelta().Insert("hello", None[Unit]()).Retain(3, None[Unit]()).Delete(2)
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	got, err := UnmarshalDelta[string, Unit](raw, StringSeq{})
	require.NoError(t, err)
	assert.True(t, got.Equal(d))
}

func TestRoundTripWithAttributes(t *testing.T) {
	d := NewDelta[string, LastWriteWins[bool]](StringSeq{})
	d.Insert("hi", Some(LastWriteWins[bool]{Value: true}))
	d.Retain(3, None[LastWriteWins[bool]]())

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	got, err := UnmarshalDelta[string, LastWriteWins[bool]](raw, StringSeq{})
	require.NoError(t, err)
	assert.True(t, got.Equal(d))
}

func TestUnmarshalMalformedOp(t *testing.T) {
	_, err := UnmarshalDelta[string, Unit]([]byte(`[{}]`), StringSeq{})
	assert.ErrorIs(t, err, ErrMalformedWireOp)
}
