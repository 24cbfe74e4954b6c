// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers.
package slicest

// Conversion

// ToMap builds a map from s using fn for every key/value pair.
func ToMap[T any, K comparable, V any, S ~[]T](s S, fn func(T) (K, V)) map[K]V {
	result := make(map[K]V, len(s))
	for _, t := range s {
		k, v := fn(t)
		result[k] = v
	}
	return result
}

// Map

// MapX maps slice S to []U with error propagation.
// - X: Stops on failure and returns error.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	result := make([]U, 0, len(s))
	for _, t := range s {
		u, err := fn(t)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}

// Map maps slice S to []U.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapX(s, func(t T) (U, error) {
		return fn(t), nil
	})
	return result
}
