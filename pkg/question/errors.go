package question

import (
	"errors"
	"fmt"

	"github.com/aretw0/inquire/pkg/convert"
)

var (
	// ErrNotConfigured is returned when evaluating a question without a message.
	ErrNotConfigured = errors.New("question is not configured")
	// ErrAlreadyEvaluated is returned when evaluating a question twice without Reset.
	ErrAlreadyEvaluated = errors.New("question already evaluated")
)

// MissingValueError is returned when a required question receives no value.
type MissingValueError struct {
	Message string
}

func (e *MissingValueError) Error() string {
	if e.Message == "" {
		return "no value provided for required question"
	}
	return fmt.Sprintf("no value provided for required question %q", e.Message)
}

// OutOfRangeError is returned when a value falls outside the accepted range.
type OutOfRangeError struct {
	Value string
	Range convert.Range
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %s is not included in the range %s", e.Value, e.Range)
}

// Bounds returns the lower and upper bound of the rejected range.
func (e *OutOfRangeError) Bounds() (lo, hi any) {
	return e.Range.Bounds()
}
