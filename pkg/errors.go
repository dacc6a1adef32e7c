package pkg

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned when user provided data is missing or out of range.
type InvalidInputError struct {
	Field  string
	Reason string
}

func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{
		Field:  field,
		Reason: reason,
	}
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input [%s]: %s", e.Field, e.Reason)
}

func IsInvalidInput(err error) bool {
	var invalidInputErr *InvalidInputError
	return errors.As(err, &invalidInputErr)
}
