// Package kadane computes the maximum sum over all contiguous, non-empty
// runs of a numeric sequence in a single linear pass.
package kadane

import (
	customerrors "maxsubarray/app/pkg/custom-types/custom-errors"
	"maxsubarray/app/pkg/utils/slicex"
)

// Number is any type with a total order, an additive identity (its zero
// value) and a closed addition. Floats holding NaN have no total order and
// give an unspecified result.
type Number = slicex.Number

// MaxSubarraySum returns the largest sum of any contiguous non-empty run of
// values. values is only read. An empty sequence returns
// customerrors.ErrorEmptyInput and never a zero default, since zero is a
// legitimate answer for inputs that contain it.
//
// Overflow follows the arithmetic of T.
func MaxSubarraySum[S ~[]T, T Number](values S) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, customerrors.ErrorEmptyInput
	}

	best, running := values[0], values[0]
	for _, x := range values[1:] {
		// max(x, x+running) == x + max(0, running) for ordered additive groups
		running = x + max(zero, running)
		best = max(best, running)
	}

	return best, nil
}

// MustMaxSubarraySum is like MaxSubarraySum but panics on empty input.
func MustMaxSubarraySum[S ~[]T, T Number](values S) T {
	best, err := MaxSubarraySum(values)
	if err != nil {
		panic(err)
	}
	return best
}
