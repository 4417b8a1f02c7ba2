// Package optional implements the tri-state fields used by patch request
// bodies. A patch field can be in one of three states, each with a distinct
// wire meaning: absent (the key is omitted and the server leaves the field
// untouched), null (the key is sent as JSON null and the server clears the
// field), or a concrete value.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type state uint8

const (
	absent state = iota
	null
	present
)

// Field is a tri-state patch value. The zero value is Absent.
type Field[T any] struct {
	state state
	value T
}

// Absent returns a field whose key is omitted from the encoded payload.
func Absent[T any]() Field[T] { return Field[T]{} }

// Null returns a field encoded as an explicit JSON null.
func Null[T any]() Field[T] { return Field[T]{state: null} }

// Of returns a field carrying a concrete value.
func Of[T any](v T) Field[T] { return Field[T]{state: present, value: v} }

// IsAbsent reports whether the field is omitted from the payload.
func (f Field[T]) IsAbsent() bool { return f.state == absent }

// IsNull reports whether the field is an explicit null.
func (f Field[T]) IsNull() bool { return f.state == null }

// IsValue reports whether the field carries a concrete value.
func (f Field[T]) IsValue() bool { return f.state == present }

// Get returns the field's value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	if f.state != present {
		var zero T
		return zero, false
	}
	return f.value, true
}

// GetOr returns the field's value, or def when the field is absent or null.
func (f Field[T]) GetOr(def T) T {
	if f.state != present {
		return def
	}
	return f.value
}

// MalformedFieldError reports a wire value that violates the field's schema:
// a required key that is missing, or a null where the schema forbids one.
type MalformedFieldError struct {
	Key    string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Key, e.Reason)
}

var jsonNull = []byte("null")

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// Decode reads key from a decoded JSON object. A missing key decodes to
// Absent. A JSON null decodes to Null when the field's schema permits
// null-as-clear, and is a MalformedFieldError otherwise; it is never
// silently coerced to a value. Anything else decodes to a value.
func Decode[T any](obj map[string]json.RawMessage, key string, nullable bool) (Field[T], error) {
	raw, ok := obj[key]
	if !ok {
		return Absent[T](), nil
	}
	if isJSONNull(raw) {
		if !nullable {
			return Absent[T](), &MalformedFieldError{Key: key, Reason: "null is not permitted"}
		}
		return Null[T](), nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return Absent[T](), &MalformedFieldError{Key: key, Reason: err.Error()}
	}
	return Of(v), nil
}

// Encode writes the field into an object under construction. Absent writes
// nothing, Null writes a JSON null, and a value writes the value.
func Encode[T any](out map[string]any, key string, f Field[T]) {
	switch f.state {
	case absent:
	case null:
		out[key] = nil
	case present:
		out[key] = f.value
	}
}

// Required reads a key that must be present and non-null.
func Required[T any](obj map[string]json.RawMessage, key string) (T, error) {
	var v T
	raw, ok := obj[key]
	if !ok {
		return v, &MalformedFieldError{Key: key, Reason: "required key is missing"}
	}
	if isJSONNull(raw) {
		return v, &MalformedFieldError{Key: key, Reason: "null is not permitted"}
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &MalformedFieldError{Key: key, Reason: err.Error()}
	}
	return v, nil
}
