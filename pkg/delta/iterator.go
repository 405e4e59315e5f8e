package delta

// iterator is the dual-cursor walker both Compose and Transform drive.
// Peek returns the current op without consuming it. SplitWith, which the
// combinators use when only part of the current op is consumed, leaves the
// unconsumed remainder pending, so the next Peek sees that remainder rather
// than the next whole op. Take consumes the current op in full.
type iterator[T any, A Attrs[A]] struct {
	ops     []op[T, A]
	idx     int
	pending op[T, A]
	seq     Seq[T]
}

func newIterator[T any, A Attrs[A]](ops []op[T, A], seq Seq[T]) *iterator[T, A] {
	return &iterator[T, A]{ops: ops, seq: seq}
}

// Peek returns the current op and true, advancing past any exhausted
// (zero-length) pending op, or false once both the pending slot and the
// backing slice are exhausted.
func (it *iterator[T, A]) Peek() (op[T, A], bool) {
	for it.pending == nil || it.pending.Len() == 0 {
		if it.idx >= len(it.ops) {
			it.pending = nil
			return nil, false
		}
		it.pending = it.ops[it.idx]
		it.idx++
	}
	return it.pending, true
}

// SetPending replaces the current pending op, e.g. with the residual
// suffix left after a partial consumption.
func (it *iterator[T, A]) SetPending(o op[T, A]) {
	it.pending = o
}

// Take consumes and returns the current op in full.
func (it *iterator[T, A]) Take() op[T, A] {
	o, ok := it.Peek()
	if !ok {
		panic("delta: Take on exhausted iterator")
	}
	it.pending = nil
	return o
}

// SplitWith peeks both iterators' current ops, splits each at the shorter
// of the two current lengths, leaves each iterator holding its own
// residual suffix as pending, and returns the two aligned prefixes.
func (it *iterator[T, A]) SplitWith(other *iterator[T, A]) (op[T, A], op[T, A]) {
	a, aok := it.Peek()
	b, bok := other.Peek()
	if !aok || !bok {
		panic("delta: SplitWith on exhausted iterator")
	}
	m := a.Len()
	if b.Len() < m {
		m = b.Len()
	}
	prefixA, suffixA := splitOp[T, A](a, m, it.seq)
	prefixB, suffixB := splitOp[T, A](b, m, other.seq)
	it.pending = suffixA
	other.pending = suffixB
	return prefixA, prefixB
}

// Rest drains every remaining op (pending plus whatever is left in the
// backing slice) into out.
func (it *iterator[T, A]) Rest() []op[T, A] {
	var out []op[T, A]
	for {
		o, ok := it.Peek()
		if !ok {
			return out
		}
		out = append(out, o)
		it.pending = nil
	}
}
