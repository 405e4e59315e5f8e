package delta

// Attrs is the pluggable attribute algebra a Delta's Retain and Insert ops
// carry. Compose describes how two attribute sets merge when their ops
// compose (A applied, then the receiver); Equal is needed to detect
// mergeable adjacent ops when canonicalizing.
type Attrs[A any] interface {
	Compose(other A) A
	Equal(other A) bool
}

// Optional wraps an Attrs value that may be absent. None composed with
// anything yields the other side unchanged; Some(x) composed with Some(y)
// recurses into x.Compose(y). The zero value is None.
type Optional[A any] struct {
	value A
	ok    bool
}

// None returns an absent attribute value.
func None[A any]() Optional[A] {
	return Optional[A]{}
}

// Some wraps a present attribute value.
func Some[A any](v A) Optional[A] {
	return Optional[A]{value: v, ok: true}
}

// IsSome reports whether the value is present.
func (o Optional[A]) IsSome() bool {
	return o.ok
}

// Get returns the wrapped value and whether it was present.
func (o Optional[A]) Get() (A, bool) {
	return o.value, o.ok
}

// composeOptional implements the Optional lift over an Attrs[A]: transparent
// when either side is None, recursive Compose when both are Some.
func composeOptional[A Attrs[A]](a, b Optional[A]) Optional[A] {
	switch {
	case !a.ok && !b.ok:
		return Optional[A]{}
	case a.ok && !b.ok:
		return a
	case !a.ok && b.ok:
		return b
	default:
		return Some(a.value.Compose(b.value))
	}
}

// orOptional returns a if present, else b. Used by Retain/Retain transform,
// where attribute writes are last-write-wins rather than merged.
func orOptional[A any](a, b Optional[A]) Optional[A] {
	if a.ok {
		return a
	}
	return b
}

// equalOptional reports whether two Optional values are equivalent: both
// absent, or both present with equal wrapped values.
func equalOptional[A Attrs[A]](a, b Optional[A]) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}
	return a.value.Equal(b.value)
}

// Unit is the attribute type for deltas that carry no attributes at all.
// Compose and Equal are both trivial.
type Unit struct{}

// Compose returns Unit{}; there is nothing to merge.
func (Unit) Compose(Unit) Unit { return Unit{} }

// Equal always reports true: every Unit value is equivalent.
func (Unit) Equal(Unit) bool { return true }

// LastWriteWins is an Attrs instantiation where composing two attribute
// sets always keeps the right-hand (later) value, and equality is Go's
// built-in == on V.
type LastWriteWins[V comparable] struct {
	Value V
}

// Compose returns other: the later write wins.
func (LastWriteWins[V]) Compose(other LastWriteWins[V]) LastWriteWins[V] {
	return other
}

// Equal compares the wrapped values with ==.
func (l LastWriteWins[V]) Equal(other LastWriteWins[V]) bool {
	return l.Value == other.Value
}
