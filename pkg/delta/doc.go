// Package delta implements a generic Operational Transformation algebra.
//
// A Delta[T, A] is a canonical, normalized sequence of Insert/Retain/Delete
// operations over an element-sequence type T, with pluggable per-element
// attributes A. The two primitives, Compose and Transform, combine deltas
// derived from a common base so that concurrent edits converge:
//
//	compose(compose(base, a), Transform(a, b, true)) == compose(compose(base, b), Transform(b, a, false))
//
// T and A are supplied by the caller: a Seq[T] adapter describes how to
// measure, split and concatenate values of T, and an Attrs[A] implementation
// describes how two attribute sets merge. See StringSeq and Unit for the
// simplest instantiation, or pkg/textseq and pkg/delta/jsattr for richer
// ones.
package delta
