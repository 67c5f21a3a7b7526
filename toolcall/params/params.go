/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package params

import "fmt"

// Extract returns a required parameter from args, converting JSON numerics
// where the target type calls for it. Missing or mistyped parameters are
// errors.
func Extract[T any](args map[string]any, name string) (T, error) {
	var zero T

	value, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("%s parameter is required", name)
	}
	if v, ok := value.(T); ok {
		return v, nil
	}
	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// ExtractOptional returns a parameter or the default when absent. A present
// but mistyped value is still an error.
func ExtractOptional[T any](args map[string]any, name string, defaultValue T) (T, error) {
	value, ok := args[name]
	if !ok {
		return defaultValue, nil
	}
	if v, ok := value.(T); ok {
		return v, nil
	}
	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// convertNumeric maps JSON's float64 onto the integer types tools declare.
func convertNumeric[T any](value any) (T, bool) {
	var zero T
	f, ok := value.(float64)
	if !ok {
		return zero, false
	}
	switch any(zero).(type) {
	case int:
		return any(int(f)).(T), true
	case int32:
		return any(int32(f)).(T), true
	case int64:
		return any(int64(f)).(T), true
	}
	return zero, false
}
