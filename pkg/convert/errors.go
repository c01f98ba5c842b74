package convert

import (
	"errors"
	"fmt"
)

// ErrConversion is wrapped by every strict-mode conversion failure.
var ErrConversion = errors.New("conversion failed")

// DuplicateConverterError is returned when registering a name that is already bound.
type DuplicateConverterError struct {
	Name string
}

func (e *DuplicateConverterError) Error() string {
	return fmt.Sprintf("converter for %q already registered", e.Name)
}

// UnknownConverterError is returned when invoking a name that was never registered.
type UnknownConverterError struct {
	Name string
}

func (e *UnknownConverterError) Error() string {
	return fmt.Sprintf("converter %q is not registered", e.Name)
}

// InvalidRangeError is returned when a range expression cannot be parsed.
type InvalidRangeError struct {
	Expr   string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range expression %q: %s", e.Expr, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error { return ErrConversion }

func conversionError(input any, target string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %v to %s: %v", ErrConversion, input, target, cause)
	}
	return fmt.Errorf("%w: %v to %s", ErrConversion, input, target)
}
