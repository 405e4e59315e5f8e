package textseq_test

import (
	"testing"

	"github.com/coreseekdev/delta/pkg/delta"
	"github.com/coreseekdev/delta/pkg/textseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// family is a single grapheme cluster (a ZWJ emoji sequence) that spans
// multiple Unicode scalar values, and é is a base letter plus a combining
// acute accent: also one grapheme cluster, two runes. Built with explicit
// rune literals rather than a string constant so the zero-width joiners
// (U+200D) between the component emoji are unambiguous.
var family = string([]rune{
	'\U0001F468', '‍',
	'\U0001F469', '‍',
	'\U0001F467', '‍',
	'\U0001F466',
})

func TestGraphemeSeqLenCountsClustersNotRunes(t *testing.T) {
	seq := textseq.GraphemeSeq{}
	assert.Equal(t, 1, seq.Len(family))
	assert.Equal(t, 1, seq.Len("é"))
	assert.Equal(t, 3, seq.Len("a"+family+"b"))
}

func TestGraphemeSeqSplitKeepsClustersIntact(t *testing.T) {
	seq := textseq.GraphemeSeq{}
	head, tail := seq.Split("a"+family+"b", 2)
	assert.Equal(t, "a"+family, head)
	assert.Equal(t, "b", tail)
}

// TestDeltaOverGraphemeSeq exercises GraphemeSeq as a real delta.Seq[string]
// instantiation: a Delete op over it must consume whole grapheme clusters,
// not the runes or bytes underneath an emoji sequence.
func TestDeltaOverGraphemeSeq(t *testing.T) {
	seq := textseq.GraphemeSeq{}
	base := "a" + family + "b"
	require.Equal(t, 3, seq.Len(base))

	d := delta.NewDelta[string, delta.Unit](seq)
	d.Retain(1, delta.None[delta.Unit]())
	d.Delete(1)
	d.Retain(1, delta.None[delta.Unit]())

	assert.Equal(t, 3, d.BaseLength())

	var out string
	rest := base
	for _, o := range d.Ops() {
		switch v := any(o).(type) {
		case delta.RetainOp[delta.Unit]:
			var head string
			head, rest = seq.Split(rest, v.Count)
			out += head
		case delta.DeleteOp:
			_, rest = seq.Split(rest, v.Count)
		}
	}
	assert.Equal(t, "ab", out)
}
