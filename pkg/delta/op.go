package delta

import "fmt"

// maxCount is the saturation ceiling for Retain/Delete op counts. A merge
// that would exceed it is capped here and the remainder spills into a new
// op immediately after (see push in delta.go).
const maxCount = int(^uint(0) >> 1)

// op is the sealed interface satisfied by InsertOp[T,A], RetainOp[A] and
// DeleteOp. The marker method restricts implementers to this package's own
// generic instantiations of those three types.
type op[T any, A Attrs[A]] interface {
	Len() int
	isOp()
}

// InsertOp inserts Value (Len elements long, per the Delta's Seq) at the
// current position, optionally carrying attributes.
type InsertOp[T any, A Attrs[A]] struct {
	Value      T
	Length     int
	Attributes Optional[A]
}

// Len returns the number of elements inserted.
func (o InsertOp[T, A]) Len() int { return o.Length }
func (InsertOp[T, A]) isOp()      {}

// String renders the op for debugging.
func (o InsertOp[T, A]) String() string {
	if o.Attributes.IsSome() {
		return fmt.Sprintf("insert(%v, attrs=%v)", o.Value, o.Attributes.value)
	}
	return fmt.Sprintf("insert(%v)", o.Value)
}

// RetainOp keeps Count elements unchanged, optionally updating attributes.
type RetainOp[A Attrs[A]] struct {
	Count      int
	Attributes Optional[A]
}

// Len returns Count.
func (o RetainOp[A]) Len() int { return o.Count }
func (RetainOp[A]) isOp()      {}

// String renders the op for debugging.
func (o RetainOp[A]) String() string {
	if o.Attributes.IsSome() {
		return fmt.Sprintf("retain(%d, attrs=%v)", o.Count, o.Attributes.value)
	}
	return fmt.Sprintf("retain(%d)", o.Count)
}

// DeleteOp removes Count elements. Deleted content's attributes are moot,
// so DeleteOp carries none.
type DeleteOp struct {
	Count int
}

// Len returns Count.
func (o DeleteOp) Len() int { return o.Count }
func (DeleteOp) isOp()      {}

// String renders the op for debugging.
func (o DeleteOp) String() string {
	return fmt.Sprintf("delete(%d)", o.Count)
}

// splitOp divides an op at element offset k (clamped to the op's length),
// returning the prefix and suffix halves. seq is consulted only for
// InsertOp, whose Value must itself be split.
func splitOp[T any, A Attrs[A]](o op[T, A], k int, seq Seq[T]) (op[T, A], op[T, A]) {
	switch v := o.(type) {
	case InsertOp[T, A]:
		if k < 0 {
			k = 0
		}
		if k > v.Length {
			k = v.Length
		}
		head, tail := seq.Split(v.Value, k)
		return InsertOp[T, A]{Value: head, Length: k, Attributes: v.Attributes},
			InsertOp[T, A]{Value: tail, Length: v.Length - k, Attributes: v.Attributes}
	case RetainOp[A]:
		if k < 0 {
			k = 0
		}
		if k > v.Count {
			k = v.Count
		}
		return RetainOp[A]{Count: k, Attributes: v.Attributes},
			RetainOp[A]{Count: v.Count - k, Attributes: v.Attributes}
	case DeleteOp:
		if k < 0 {
			k = 0
		}
		if k > v.Count {
			k = v.Count
		}
		return DeleteOp{Count: k}, DeleteOp{Count: v.Count - k}
	default:
		panic("delta: unreachable op type")
	}
}

// saturatingAdd adds a and b, capping at maxCount and reporting overflow
// instead of wrapping.
func saturatingAdd(a, b int) (sum int, overflowed bool) {
	if a > maxCount-b {
		return maxCount, true
	}
	return a + b, false
}
