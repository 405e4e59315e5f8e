// Package fuzzcheck is a property-based harness that generates random
// concurrent delta pairs and checks the convergence law pkg/delta promises.
// It is test-only infrastructure, not part of the public module surface.
package fuzzcheck

import (
	"fmt"
	"strings"

	"github.com/coreseekdev/delta/pkg/delta"
)

// ApplyString applies d to base and returns the resulting string. Any part
// of base past d's base length is kept unchanged, as a chopped trailing
// Retain implies. It exists only so this harness can check that two deltas
// the convergence law claims are equivalent really do produce the same
// document; pkg/delta itself has no Apply, since the algebra is defined
// purely in terms of Compose and Transform.
func ApplyString[A delta.Attrs[A]](base string, d *delta.Delta[string, A]) (string, error) {
	seq := delta.StringSeq{}
	if d.BaseLength() > seq.Len(base) {
		return "", fmt.Errorf("fuzzcheck: delta base length %d exceeds document length %d", d.BaseLength(), seq.Len(base))
	}
	var out strings.Builder
	rest := base
	for _, o := range d.Ops() {
		switch v := any(o).(type) {
		case delta.InsertOp[string, A]:
			out.WriteString(v.Value)
		case delta.RetainOp[A]:
			var head string
			head, rest = seq.Split(rest, v.Count)
			out.WriteString(head)
		case delta.DeleteOp:
			_, rest = seq.Split(rest, v.Count)
		}
	}
	out.WriteString(rest)
	return out.String(), nil
}
