package customerrors

import (
	"fmt"
)

// EmptyInputError is returned when an operation needs at least one element
// to seed its state and received none.
type EmptyInputError struct {
	op string
}

func (e EmptyInputError) Error() string {
	return fmt.Sprintf("Empty Input Error: %s - sequence has no elements", e.op)
}

var ErrorEmptyInput = EmptyInputError{"max subarray sum"}
