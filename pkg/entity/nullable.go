package entity

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Nullable is an update field for a nullable column. The zero value means the
// field was absent; Set with a nil Value means an explicit null that clears
// the column.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// IsNull reports an explicit null.
func (n Nullable[T]) IsNull() bool {
	return n.Set && n.Value == nil
}

// UnmarshalJSON is only called for keys present in the document, null included.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// MarshalJSON writes null for both an explicit null and an absent field; use
// the omitzero tag to leave absent fields out.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return sonic.Marshal(*n.Value)
}
