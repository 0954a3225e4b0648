package slicex

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T constraints.Ordered](arr []T) T {
	var sum T
	for _, value := range arr {
		sum += value
	}
	return sum
}

// Max returns the largest element of arr, or false if arr is empty.
func Max[T constraints.Ordered](arr []T) (T, bool) {
	var largest T
	if len(arr) == 0 {
		return largest, false
	}

	largest = arr[0]
	for _, value := range arr[1:] {
		if value > largest {
			largest = value
		}
	}
	return largest, true
}

// AllNonNegative reports whether no element of arr is below zero. It is
// true for an empty slice.
func AllNonNegative[T Number](arr []T) bool {
	var zero T
	for _, value := range arr {
		if value < zero {
			return false
		}
	}
	return true
}

// AllNegative reports whether arr is non-empty and every element is below
// zero.
func AllNegative[T Number](arr []T) bool {
	if len(arr) == 0 {
		return false
	}

	var zero T
	for _, value := range arr {
		if value >= zero {
			return false
		}
	}
	return true
}
