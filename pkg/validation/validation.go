// Package validation holds the single validation rule a question applies to
// an answer before it is modified.
//
// A rule is a regular expression, a predicate, an error-returning function or
// a go-playground/validator tag. Expected failures come back as *Error values;
// rules never panic for bad input.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Rule inspects a value and reports whether it is acceptable.
type Rule interface {
	// Validate returns nil when input is acceptable.
	Validate(input string) error
	// Describe returns a human-readable form of the expected shape.
	Describe() string
}

// Error is returned for an input rejected by a Rule.
type Error struct {
	Value       string
	Description string
	Cause       error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid value %q", e.Value)
	if e.Description != "" {
		msg += fmt.Sprintf(", expected %s", e.Description)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Validate applies rule to input, returning input unchanged on success.
// A nil rule accepts everything.
func Validate(rule Rule, input string) (string, error) {
	if rule == nil {
		return input, nil
	}
	if err := rule.Validate(input); err != nil {
		var verr *Error
		if errors.As(err, &verr) {
			return "", verr
		}
		return "", &Error{Value: input, Description: rule.Describe(), Cause: err}
	}
	return input, nil
}

// None accepts every input.
var None Rule = noneRule{}

type noneRule struct{}

func (noneRule) Validate(string) error { return nil }
func (noneRule) Describe() string      { return "" }

// PatternOption configures a pattern rule.
type PatternOption func(*patternRule)

// Contains makes the pattern match anywhere in the input instead of the
// whole input.
func Contains() PatternOption {
	return func(p *patternRule) {
		p.contains = true
	}
}

type patternRule struct {
	source   *regexp.Regexp
	full     *regexp.Regexp
	contains bool
}

// Pattern builds a rule from a compiled expression. By default the whole
// input must match.
func Pattern(re *regexp.Regexp, opts ...PatternOption) Rule {
	p := &patternRule{source: re}
	for _, opt := range opts {
		opt(p)
	}
	if !p.contains {
		p.full = regexp.MustCompile(`^(?:` + re.String() + `)$`)
	}
	return p
}

// Compile builds a pattern rule from a textual expression.
func Compile(expr string, opts ...PatternOption) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile validation pattern: %w", err)
	}
	return Pattern(re, opts...), nil
}

// MustCompile is like Compile but panics on a bad expression.
func MustCompile(expr string, opts ...PatternOption) Rule {
	r, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (p *patternRule) Validate(input string) error {
	re := p.full
	if p.contains {
		re = p.source
	}
	if !re.MatchString(input) {
		return &Error{Value: input, Description: p.Describe()}
	}
	return nil
}

func (p *patternRule) Describe() string {
	return fmt.Sprintf("match for /%s/", p.source.String())
}

type predicateRule struct {
	desc string
	fn   func(string) bool
}

// Predicate accepts input when fn returns true.
func Predicate(desc string, fn func(string) bool) Rule {
	return &predicateRule{desc: desc, fn: fn}
}

func (p *predicateRule) Validate(input string) error {
	if !p.fn(input) {
		return &Error{Value: input, Description: p.desc}
	}
	return nil
}

func (p *predicateRule) Describe() string { return p.desc }

type funcRule struct {
	desc string
	fn   func(string) error
}

// Func accepts input when fn returns nil. A returned error becomes the Cause.
func Func(desc string, fn func(string) error) Rule {
	return &funcRule{desc: desc, fn: fn}
}

func (f *funcRule) Validate(input string) error {
	if err := f.fn(input); err != nil {
		return &Error{Value: input, Description: f.desc, Cause: err}
	}
	return nil
}

func (f *funcRule) Describe() string { return f.desc }

var tagValidate = validator.New()

type tagRule struct {
	tag string
}

// Tag builds a rule from a go-playground/validator tag such as "email",
// "numeric" or "min=3,max=20". Unknown tags are reported here, not at
// validation time.
func Tag(tag string) (rule Rule, err error) {
	defer func() {
		// validator panics on undefined tags.
		if r := recover(); r != nil {
			rule, err = nil, fmt.Errorf("invalid validation tag %q: %v", tag, r)
		}
	}()
	var invalid *validator.InvalidValidationError
	if verr := tagValidate.Var("", tag); errors.As(verr, &invalid) {
		return nil, fmt.Errorf("invalid validation tag %q: %w", tag, verr)
	}
	return &tagRule{tag: tag}, nil
}

func (t *tagRule) Validate(input string) error {
	if err := tagValidate.Var(input, t.tag); err != nil {
		return &Error{Value: input, Description: t.Describe(), Cause: err}
	}
	return nil
}

func (t *tagRule) Describe() string {
	return fmt.Sprintf("value satisfying %q", t.tag)
}
