package delta

import "encoding/json"

// wireOp is the untagged JSON shape of a single op, matching Quill's delta
// format: variant discrimination is by key presence, and attributes is
// omitted entirely (not emitted as null) when absent.
type wireOp[T any, A any] struct {
	Insert     *T   `json:"insert,omitempty"`
	Retain     *int `json:"retain,omitempty"`
	Delete     *int `json:"delete,omitempty"`
	Attributes *A   `json:"attributes,omitempty"`
}

// MarshalJSON encodes the Delta as a JSON array of untagged op objects.
func (d *Delta[T, A]) MarshalJSON() ([]byte, error) {
	wire := make([]wireOp[T, A], 0, len(d.ops))
	for _, o := range d.ops {
		switch v := o.(type) {
		case InsertOp[T, A]:
			w := wireOp[T, A]{Insert: &v.Value}
			if val, ok := v.Attributes.Get(); ok {
				w.Attributes = &val
			}
			wire = append(wire, w)
		case RetainOp[A]:
			n := v.Count
			w := wireOp[T, A]{Retain: &n}
			if val, ok := v.Attributes.Get(); ok {
				w.Attributes = &val
			}
			wire = append(wire, w)
		case DeleteOp:
			n := v.Count
			wire = append(wire, wireOp[T, A]{Delete: &n})
		}
	}
	return json.Marshal(wire)
}

// UnmarshalDelta decodes a JSON array of untagged op objects into a new
// Delta using seq to measure Insert values. Unlike MarshalJSON, this is a
// free function rather than a method: decoding needs a Seq[T] adapter that
// cannot itself be recovered from the JSON payload.
func UnmarshalDelta[T any, A Attrs[A]](data []byte, seq Seq[T]) (*Delta[T, A], error) {
	var wire []wireOp[T, A]
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	d := NewDelta[T, A](seq)
	for _, w := range wire {
		switch {
		case w.Insert != nil:
			attrs := Optional[A]{}
			if w.Attributes != nil {
				attrs = Some(*w.Attributes)
			}
			d.Insert(*w.Insert, attrs)
		case w.Retain != nil:
			attrs := Optional[A]{}
			if w.Attributes != nil {
				attrs = Some(*w.Attributes)
			}
			d.Retain(*w.Retain, attrs)
		case w.Delete != nil:
			d.Delete(*w.Delete)
		default:
			return nil, ErrMalformedWireOp
		}
	}
	return d, nil
}
