package domain

import "encoding/json"

// Nullable distinguishes the three states a JSON field can take in a partial
// update: absent (keep the current value), explicit null (clear the value),
// and present (set the value). A plain pointer cannot represent all three.
type Nullable[T any] struct {
	// Set is true when the field appeared in the JSON payload at all.
	Set bool
	// Valid is true when the field carried a non-null value.
	Valid bool
	// Value holds the decoded value when Valid is true.
	Value T
}

// NullableOf returns a Nullable holding the given value.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// NullableNull returns a Nullable representing an explicit null.
func NullableNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present in the payload, so Set is always true here; absent fields
// keep the zero Nullable.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
