package question

import (
	"fmt"

	"github.com/aretw0/inquire/pkg/validation"
)

// Input is a raw answer as read by the I/O layer: either absent or a string.
type Input struct {
	value   string
	present bool
}

// Absent is the input of a user who submitted nothing.
func Absent() Input { return Input{} }

// Provided wraps a line of user input.
func Provided(s string) Input { return Input{value: s, present: true} }

// Value returns the text and whether any was provided.
func (in Input) Value() (string, bool) { return in.value, in.present }

// Answer is the outcome of a successful evaluation.
type Answer struct {
	// Value is the default as configured, or the modified input string.
	// It is nil when nothing was provided and no default exists.
	Value any
	// Present is false for an empty answer.
	Present bool
	// Defaulted is true when Value came from the default.
	Defaulted bool
}

func (a Answer) String() string {
	if !a.Present {
		return ""
	}
	return fmt.Sprint(a.Value)
}

// Evaluate turns input into an Answer, applying the question's policies in
// order. Failures are returned as typed errors; see KindOf.
func (q *Question) Evaluate(in Input) (Answer, error) {
	switch q.state {
	case Unset:
		return Answer{}, ErrNotConfigured
	case Evaluated:
		return Answer{}, ErrAlreadyEvaluated
	}

	ans, err := q.evaluate(in)
	if err != nil {
		return Answer{}, err
	}
	q.state = Evaluated
	return ans, nil
}

func (q *Question) evaluate(in Input) (Answer, error) {
	if !in.present && q.hasDefault {
		return Answer{Value: q.defaultValue, Present: true, Defaulted: true}, nil
	}

	if q.required && !q.hasDefault && (!in.present || in.value == "") {
		return Answer{}, &MissingValueError{Message: q.message}
	}

	if !in.present {
		return Answer{}, nil
	}

	if !q.rng.IsZero() && in.value != "" && !q.rng.Contains(in.value) {
		return Answer{}, &OutOfRangeError{Value: in.value, Range: q.rng}
	}

	value, err := validation.Validate(q.validation, in.value)
	if err != nil {
		return Answer{}, err
	}

	value, err = q.modifier.Apply(value)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Value: value, Present: true}, nil
}
