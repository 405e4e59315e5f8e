package delta

import (
	"reflect"
	"strings"
)

// Delta is a canonical, normalized sequence of Insert/Retain/Delete ops
// over element-sequence type T, with pluggable attributes A. The zero
// value is not usable; construct one with NewDelta.
type Delta[T any, A Attrs[A]] struct {
	seq Seq[T]
	ops []op[T, A]
}

// NewDelta returns an empty Delta that uses seq to measure, split and
// join values of T.
func NewDelta[T any, A Attrs[A]](seq Seq[T]) *Delta[T, A] {
	return &Delta[T, A]{seq: seq}
}

// BaseLength returns the length of the document this Delta must be
// applied to (the sum of Retain and Delete counts). Computed from ops
// rather than tracked incrementally, so it stays correct across the
// Delete-before-Insert reordering push performs and is never at risk of
// double counting.
func (d *Delta[T, A]) BaseLength() int {
	n := 0
	for _, o := range d.ops {
		switch v := o.(type) {
		case RetainOp[A]:
			n += v.Count
		case DeleteOp:
			n += v.Count
		}
	}
	return n
}

// TargetLength returns the length of the document this Delta produces
// (the sum of Retain and Insert counts).
func (d *Delta[T, A]) TargetLength() int {
	n := 0
	for _, o := range d.ops {
		switch v := o.(type) {
		case RetainOp[A]:
			n += v.Count
		case InsertOp[T, A]:
			n += v.Length
		}
	}
	return n
}

// Ops returns the Delta's ops. The returned slice must not be mutated.
func (d *Delta[T, A]) Ops() []op[T, A] { return d.ops }

// Len returns the number of ops.
func (d *Delta[T, A]) Len() int { return len(d.ops) }

// Seq returns the Seq adapter this Delta was constructed with.
func (d *Delta[T, A]) Seq() Seq[T] { return d.seq }

// Insert appends an Insert op, canonicalizing as it goes. Returns the
// receiver for chaining.
func (d *Delta[T, A]) Insert(v T, attrs Optional[A]) *Delta[T, A] {
	n := d.seq.Len(v)
	if n == 0 {
		return d
	}
	d.push(InsertOp[T, A]{Value: v, Length: n, Attributes: attrs})
	return d
}

// Retain appends a Retain op. Returns the receiver for chaining.
func (d *Delta[T, A]) Retain(n int, attrs Optional[A]) *Delta[T, A] {
	if n == 0 {
		return d
	}
	d.push(RetainOp[A]{Count: n, Attributes: attrs})
	return d
}

// Delete appends a Delete op. Returns the receiver for chaining.
func (d *Delta[T, A]) Delete(n int) *Delta[T, A] {
	if n == 0 {
		return d
	}
	d.push(DeleteOp{Count: n})
	return d
}

// push is the sole canonicalization entry point: every builder method and
// both engines funnel their emitted ops through it.
func (d *Delta[T, A]) push(o op[T, A]) {
	if o.Len() == 0 {
		return
	}

	if len(d.ops) == 0 {
		d.ops = append(d.ops, o)
		return
	}

	last := d.ops[len(d.ops)-1]

	// Rule 3: Delete must never immediately precede Insert. If we're
	// pushing an Insert right after a Delete, swap: keep the Insert
	// before the Delete (re-pushing the Delete recurses, but the
	// recursive call sees an Insert or Retain as the new last op, never
	// another Delete-before-Insert, so it terminates).
	if ins, ok := o.(InsertOp[T, A]); ok {
		if del, ok := last.(DeleteOp); ok {
			d.ops = d.ops[:len(d.ops)-1]
			d.push(ins)
			d.ops = append(d.ops, del)
			return
		}
	}

	switch v := o.(type) {
	case InsertOp[T, A]:
		if lastIns, ok := last.(InsertOp[T, A]); ok && equalOptional(lastIns.Attributes, v.Attributes) {
			merged := InsertOp[T, A]{
				Value:      d.seq.Concat(lastIns.Value, v.Value),
				Length:     lastIns.Length + v.Length,
				Attributes: v.Attributes,
			}
			d.ops[len(d.ops)-1] = merged
			return
		}
	case RetainOp[A]:
		if lastRet, ok := last.(RetainOp[A]); ok && equalOptional(lastRet.Attributes, v.Attributes) {
			d.mergeCount(lastRet.Count, v.Count, func(n int) op[T, A] {
				return RetainOp[A]{Count: n, Attributes: v.Attributes}
			})
			return
		}
	case DeleteOp:
		if lastDel, ok := last.(DeleteOp); ok {
			d.mergeCount(lastDel.Count, v.Count, func(n int) op[T, A] {
				return DeleteOp{Count: n}
			})
			return
		}
	}

	d.ops = append(d.ops, o)
}

// mergeCount replaces the last op with a merge of a and b's counts,
// saturating at maxCount and spilling the remainder into a fresh trailing
// op of the same make(n) kind if the sum overflows.
func (d *Delta[T, A]) mergeCount(a, b int, make func(int) op[T, A]) {
	sum, overflowed := saturatingAdd(a, b)
	d.ops[len(d.ops)-1] = make(sum)
	if overflowed {
		remainder := (a - (maxCount - b)) - 1
		if remainder < 0 {
			remainder = 0
		}
		d.ops = append(d.ops, make(remainder+1))
	}
}

// Chop removes every trailing bare (attribute-less) Retain, including both
// halves of a pair split at maxCount. It is idempotent.
func (d *Delta[T, A]) Chop() *Delta[T, A] {
	for len(d.ops) > 0 {
		last, ok := d.ops[len(d.ops)-1].(RetainOp[A])
		if !ok || last.Attributes.IsSome() {
			return d
		}
		d.ops = d.ops[:len(d.ops)-1]
	}
	return d
}

// Equal reports whether two deltas have the same ops in the same order.
// Attribute comparisons use A's Equal method; Insert/Retain/Delete shapes
// and counts are compared directly, and Insert values with reflect.DeepEqual
// (so this works for both comparable T like string and non-comparable T
// like []E).
func (d *Delta[T, A]) Equal(other *Delta[T, A]) bool {
	if len(d.ops) != len(other.ops) {
		return false
	}
	for i := range d.ops {
		if !opsEqual[T, A](d.ops[i], other.ops[i]) {
			return false
		}
	}
	return true
}

func opsEqual[T any, A Attrs[A]](a, b op[T, A]) bool {
	switch av := a.(type) {
	case InsertOp[T, A]:
		bv, ok := b.(InsertOp[T, A])
		if !ok || av.Length != bv.Length || !equalOptional(av.Attributes, bv.Attributes) {
			return false
		}
		return reflect.DeepEqual(av.Value, bv.Value)
	case RetainOp[A]:
		bv, ok := b.(RetainOp[A])
		return ok && av.Count == bv.Count && equalOptional(av.Attributes, bv.Attributes)
	case DeleteOp:
		bv, ok := b.(DeleteOp)
		return ok && av.Count == bv.Count
	default:
		return false
	}
}

// String renders the Delta's ops for debugging.
func (d *Delta[T, A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, o := range d.ops {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := any(o).(interface{ String() string }); ok {
			b.WriteString(s.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}
