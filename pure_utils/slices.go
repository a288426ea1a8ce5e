package pure_utils

import (
	"github.com/hashicorp/go-set/v2"
)

func ContainsSameElements[T comparable](a, b []T) bool {
	return set.From(a).Equal(set.From(b))
}

// SlicesEqual reports whether a and b hold the same elements, in any order.
// Unlike ContainsSameElements it also requires the same length.
func SlicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return ContainsSameElements(a, b)
}

// Check if all elements of a are present in b
func AllElementsIn[T comparable](a, b []T) bool {
	bSet := make(map[T]bool, len(b))
	for _, item := range b {
		bSet[item] = true
	}
	for _, item := range a {
		if !bSet[item] {
			return false
		}
	}
	return true
}
