package delta

import "fmt"

// Transform rebases b onto a world where a has already happened, returning
// b' such that:
//
//	compose(compose(base, a), Transform(a, b, true)) == compose(compose(base, b), Transform(b, a, false))
//
// Exactly one side of a concurrent pair is transformed with priority=true;
// the two calls must use opposite priorities for both replicas to converge
// on the same position tie-break.
//
// a.BaseLength() must equal b.BaseLength() unless either delta is empty;
// an empty a yields b (chopped) and an empty b yields an empty Delta.
func Transform[T any, A Attrs[A]](a, b *Delta[T, A], priority bool) (*Delta[T, A], error) {
	if a.Len() > 0 && b.Len() > 0 && a.BaseLength() != b.BaseLength() {
		return nil, fmt.Errorf("%w: a's base length %d, b's base length %d", ErrLengthMismatch, a.BaseLength(), b.BaseLength())
	}

	out := NewDelta[T, A](b.seq)
	ia := newIterator[T, A](a.ops, a.seq)
	ib := newIterator[T, A](b.ops, b.seq)

	for {
		_, aOk := ia.Peek()
		_, bOk := ib.Peek()
		if !aOk || !bOk {
			break
		}
		if o, emit := transformPrimitive(ia, ib, priority); emit {
			out.push(o)
		}
	}
	for _, o := range ib.Rest() {
		out.push(o)
	}
	out.Chop()
	return out, nil
}

// transformPrimitive dispatches a single transform step per the table in
// SPEC_FULL.md §4.5, mutating ia and ib in place and returning the single
// op to emit into b' (if any).
func transformPrimitive[T any, A Attrs[A]](ia, ib *iterator[T, A], priority bool) (op[T, A], bool) {
	ax, _ := ia.Peek()
	bx, _ := ib.Peek()

	switch ax.(type) {
	case InsertOp[T, A]:
		if _, ok := bx.(InsertOp[T, A]); ok {
			if priority {
				ins := ia.Take().(InsertOp[T, A])
				return RetainOp[A]{Count: ins.Length}, true
			}
			ins := ib.Take().(InsertOp[T, A])
			return ins, true
		}
		// Bob is Retain or Delete: Alice's Insert is consumed whole and
		// becomes a Retain of its own length in b', regardless of Bob's
		// current op.
		ins := ia.Take().(InsertOp[T, A])
		return RetainOp[A]{Count: ins.Length}, true

	case RetainOp[A]:
		switch b := bx.(type) {
		case InsertOp[T, A]:
			_ = b
			ins := ib.Take().(InsertOp[T, A])
			return ins, true
		case RetainOp[A]:
			pa, pb := ia.SplitWith(ib)
			r1 := pa.(RetainOp[A])
			r2 := pb.(RetainOp[A])
			var attrs Optional[A]
			if priority {
				attrs = orOptional(r1.Attributes, r2.Attributes)
			} else {
				attrs = orOptional(r2.Attributes, r1.Attributes)
			}
			return RetainOp[A]{Count: r2.Count, Attributes: attrs}, true
		case DeleteOp:
			_, pb := ia.SplitWith(ib)
			return pb.(DeleteOp), true
		}

	case DeleteOp:
		switch bx.(type) {
		case InsertOp[T, A]:
			ins := ib.Take().(InsertOp[T, A])
			return ins, true
		case RetainOp[A]:
			ia.SplitWith(ib)
			return DeleteOp{Count: 0}, false
		case DeleteOp:
			ia.SplitWith(ib)
			return DeleteOp{Count: 0}, false
		}
	}
	panic("delta: unreachable transform combination")
}

// TransformPosition rebases a single cursor index through d without
// needing the other concurrent delta: useful for rebasing a cursor or
// selection boundary through an incoming remote op. priority=true means
// whoever owns index wins a tie: an insert landing exactly at index lands
// just after the cursor and leaves it in place, whereas with priority=false
// the insert wins and pushes the index forward.
func TransformPosition[T any, A Attrs[A]](d *Delta[T, A], index int, priority bool) int {
	out := index
	offset := 0
	for _, o := range d.ops {
		if offset > index {
			break
		}
		switch v := o.(type) {
		case InsertOp[T, A]:
			if offset < out || !priority {
				out += v.Length
			}
			offset += v.Length
		case RetainOp[A]:
			offset += v.Count
		case DeleteOp:
			diff := out - offset
			if diff < 0 {
				diff = 0
			}
			n := v.Count
			if n > diff {
				n = diff
			}
			out -= n
		}
	}
	return out
}
