package repositories

import (
	"encoding/json"
	"fmt"
)

// encodeJSONColumn serializes a list-valued field for a JSON column
//
// Nil slices are stored as an empty JSON array.
func encodeJSONColumn[T any](values []T) (string, error) {
	if values == nil {
		values = []T{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode json column: %w", err)
	}
	return string(data), nil
}

// decodeJSONColumn deserializes a JSON column into a list, NULL yields an empty list
func decodeJSONColumn[T any](data []byte) ([]T, error) {
	values := []T{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode json column: %w", err)
	}
	if values == nil {
		values = []T{}
	}
	return values, nil
}
