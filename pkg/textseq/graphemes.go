// Package textseq provides a delta.Seq[string] instantiation that measures
// strings in Unicode grapheme clusters (user-perceived characters) rather
// than scalar values, for callers who want caret/selection semantics to
// match what a user sees rather than how Unicode encodes it underneath.
package textseq

import (
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
)

// GraphemeSeq measures strings in extended grapheme clusters, e.g. an emoji
// family or a base letter plus combining marks counts as one element.
type GraphemeSeq struct{}

// Len returns the number of grapheme clusters in v.
func (GraphemeSeq) Len(v string) int {
	return len(graphemes.SegmentAllString(v))
}

// Split divides v after the k-th grapheme cluster, clamped to [0, Len(v)].
func (GraphemeSeq) Split(v string, k int) (string, string) {
	if k <= 0 {
		return "", v
	}
	segments := graphemes.SegmentAllString(v)
	if k >= len(segments) {
		return v, ""
	}
	var head strings.Builder
	for _, s := range segments[:k] {
		head.WriteString(s)
	}
	return head.String(), v[head.Len():]
}

// Concat returns a+b.
func (GraphemeSeq) Concat(a, b string) string {
	return a + b
}
