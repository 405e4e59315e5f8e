package fuzzcheck

import (
	"fmt"

	"github.com/coreseekdev/delta/pkg/delta"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mismatch describes a convergence-law failure found by CheckConvergence.
type Mismatch struct {
	Base     string
	A, B     *delta.Delta[string, delta.Unit]
	LeftDoc  string
	RightDoc string
	Diff     string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("convergence failed for base %q: left=%q right=%q\n%s", m.Base, m.LeftDoc, m.RightDoc, m.Diff)
}

// CheckConvergence verifies, for the given (base, a, b) triple:
//
//	compose(compose(base, a), Transform(a, b, true))
//	  == compose(compose(base, b), Transform(b, a, false))
//
// by applying both sides to base and comparing the resulting documents
// (the composed deltas themselves are not compared). It returns a *Mismatch
// describing the failure (with a diffmatchpatch-rendered diff between the
// two resulting documents) or nil if the property held.
func CheckConvergence(base string, a, b *delta.Delta[string, delta.Unit]) (*Mismatch, error) {
	// bPrime is B rebased onto a world where A already happened (A has
	// priority); aPrime is A rebased onto a world where B already
	// happened (B has priority). The two Transform calls always use
	// opposite priority values.
	bPrime, err := delta.Transform(a, b, true)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: transform(a,b,true): %w", err)
	}
	aPrime, err := delta.Transform(b, a, false)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: transform(b,a,false): %w", err)
	}

	leftDelta, err := delta.Compose(a, bPrime)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: compose(a,b'): %w", err)
	}
	rightDelta, err := delta.Compose(b, aPrime)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: compose(b,a'): %w", err)
	}

	leftDoc, err := ApplyString[delta.Unit](base, leftDelta)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: applying left side: %w", err)
	}
	rightDoc, err := ApplyString[delta.Unit](base, rightDelta)
	if err != nil {
		return nil, fmt.Errorf("fuzzcheck: applying right side: %w", err)
	}

	if leftDoc == rightDoc {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(leftDoc, rightDoc, false)
	return &Mismatch{
		Base:     base,
		A:        a,
		B:        b,
		LeftDoc:  leftDoc,
		RightDoc: rightDoc,
		Diff:     dmp.DiffPrettyText(diffs),
	}, nil
}
