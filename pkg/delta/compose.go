package delta

import "fmt"

// Compose returns a Delta equivalent to applying a, then b, in sequence:
//
//	apply(apply(base, a), b) == apply(base, Compose(a, b))
//
// b.BaseLength() must not exceed a.TargetLength(). A shorter b leaves the
// rest of a's output implicitly retained, the same way a chopped trailing
// bare Retain does. An empty a is exempt from the check, so Compose(empty, b)
// returns b, chopped.
func Compose[T any, A Attrs[A]](a, b *Delta[T, A]) (*Delta[T, A], error) {
	if a.Len() > 0 && b.BaseLength() > a.TargetLength() {
		return nil, fmt.Errorf("%w: a's target length %d, b's base length %d", ErrLengthMismatch, a.TargetLength(), b.BaseLength())
	}

	out := NewDelta[T, A](a.seq)
	ia := newIterator[T, A](a.ops, a.seq)
	ib := newIterator[T, A](b.ops, b.seq)

	for {
		_, aOk := ia.Peek()
		_, bOk := ib.Peek()
		if !aOk || !bOk {
			break
		}
		if o, emit := composePrimitive(ia, ib); emit {
			out.push(o)
		}
	}
	for _, o := range ia.Rest() {
		out.push(o)
	}
	for _, o := range ib.Rest() {
		out.push(o)
	}
	out.Chop()
	return out, nil
}

// composePrimitive dispatches a single compose step per the Insert/Retain/
// Delete x Insert/Retain/Delete table (see SPEC_FULL.md §4.4), mutating ia
// and ib in place and returning the op to emit (if any).
func composePrimitive[T any, A Attrs[A]](ia, ib *iterator[T, A]) (op[T, A], bool) {
	ax, _ := ia.Peek()
	bx, _ := ib.Peek()

	// Bob's Insert always wins whole, regardless of Alice's current op:
	// advance only ib, leave ia completely untouched.
	if _, ok := bx.(InsertOp[T, A]); ok {
		ins := ib.Take().(InsertOp[T, A])
		return ins, true
	}

	switch a := ax.(type) {
	case InsertOp[T, A]:
		switch bx.(type) {
		case RetainOp[A]:
			pa, pb := ia.SplitWith(ib)
			ins := pa.(InsertOp[T, A])
			ret := pb.(RetainOp[A])
			return InsertOp[T, A]{Value: ins.Value, Length: ins.Length, Attributes: composeOptional(ins.Attributes, ret.Attributes)}, true
		case DeleteOp:
			ia.SplitWith(ib)
			return DeleteOp{Count: 0}, false
		}
	case RetainOp[A]:
		switch bx.(type) {
		case RetainOp[A]:
			pa, pb := ia.SplitWith(ib)
			r1 := pa.(RetainOp[A])
			r2 := pb.(RetainOp[A])
			return RetainOp[A]{Count: r1.Count, Attributes: composeOptional(r1.Attributes, r2.Attributes)}, true
		case DeleteOp:
			_, pb := ia.SplitWith(ib)
			return pb.(DeleteOp), true
		}
	case DeleteOp:
		_ = a
		// Alice's Delete is taken in full every time regardless of Bob's
		// current op length; Bob's op is left untouched and re-matched
		// against Alice's next op.
		del := ia.Take().(DeleteOp)
		switch bx.(type) {
		case RetainOp[A]:
			return del, true
		case DeleteOp:
			return del, true
		}
	}
	panic("delta: unreachable compose combination")
}
