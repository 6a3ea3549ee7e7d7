package types

import (
	"bytes"
	"encoding/json"
)

// Nullable is a tri-state value: absent, explicit null, or set.
// Tag struct fields with `json:",omitzero"` so that the absent state is
// left out of the payload while Null() serializes as null.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true}
}

// Null returns a Nullable holding an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

// FromPtr maps nil to null and any other pointer to its value.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Value(*p)
}

// IsZero reports whether the value is absent.
func (n Nullable[T]) IsZero() bool { return !n.set }

// IsNull reports whether the value is an explicit null.
func (n Nullable[T]) IsNull() bool { return n.set && n.null }

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}

// Ptr returns nil for absent and null, otherwise a pointer to a copy.
func (n Nullable[T]) Ptr() *T {
	if !n.set || n.null {
		return nil
	}
	v := n.value
	return &v
}

// MarshalJSON implements json.Marshaler. Absent values marshal as null when
// the field is not omitted.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.set || n.null {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON implements json.Unmarshaler. A present key always sets the
// value; the literal null sets it to null.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.value = zero
		n.null = true
		return nil
	}
	n.null = false
	return json.Unmarshal(b, &n.value)
}
