// Package jsonutil provides shared JSON decoding helpers that wrap errors
// with context.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a single JSON value from r into v.
// Unknown fields are rejected when strict is true.
func DecodeWithContext(r io.Reader, v interface{}, context string, strict bool) error {
	dec := json.NewDecoder(r)
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// A JSON null yields an empty, non-nil slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// UnmarshalArrayOrEnvelope accepts either a bare JSON array or an object
// holding the array under key, e.g. {"foods": [...]}.
func UnmarshalArrayOrEnvelope[T any](data []byte, key, context string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := UnmarshalWithContext(trimmed, &env, context); err != nil {
			return nil, err
		}
		raw, ok := env[key]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", context, key)
		}
		return UnmarshalArrayAllowEmpty[T](raw, context)
	}
	return UnmarshalArrayAllowEmpty[T](trimmed, context)
}
