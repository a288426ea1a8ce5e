package pure_utils

import "slices"

// Map transforms every element of src with f, keeping the order.
func Map[T, U any](src []T, f func(T) U) []U {
	out := make([]U, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return out
}

// FlatMap maps every element of src onto a slice and concatenates the
// results.
func FlatMap[T, U any](src []T, f func(T) []U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		out = append(out, f(v)...)
	}
	return slices.Clip(out)
}

// MapErr is Map for fallible transforms: the first error aborts and is
// returned as-is.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, len(src))
	for i, v := range src {
		u, err := f(v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// MapValues transforms the values of src with f, keeping the keys.
func MapValues[K comparable, T, U any](src map[K]T, f func(T) U) map[K]U {
	out := make(map[K]U, len(src))
	for k, v := range src {
		out[k] = f(v)
	}
	return out
}
