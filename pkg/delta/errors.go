package delta

import "errors"

// ErrLengthMismatch is returned by Compose when the second delta's base
// length exceeds the first's target length, or by Transform when the two
// deltas' base lengths disagree. An empty delta on either side never
// triggers it.
var ErrLengthMismatch = errors.New("delta: length mismatch")

// ErrMalformedWireOp is returned while decoding a wire-format op that has
// none of insert, retain or delete present.
var ErrMalformedWireOp = errors.New("delta: malformed op: no insert/retain/delete key present")
