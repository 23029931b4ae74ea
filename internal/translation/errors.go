package translation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned (wrapped) when a dictionary entry is rejected.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports which part of a new entry was rejected.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must not be empty (got %q)", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
