package question

import (
	"fmt"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/modifier"
	"github.com/aretw0/inquire/pkg/validation"
)

// State is the lifecycle position of a Question.
type State int

const (
	Unset State = iota
	Configured
	Evaluated
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Evaluated:
		return "evaluated"
	default:
		return "unset"
	}
}

// Question holds the policies applied to one answer.
type Question struct {
	state    State
	registry convert.Registry

	message string

	defaultValue any
	hasDefault   bool

	required  bool
	echo      bool
	raw       bool
	mask      rune
	hasMask   bool
	character bool

	rng      convert.Range
	rangeSrc string

	onError    ErrorAction
	validation validation.Rule
	modifier   modifier.Pipeline
	read       convert.Ref
}

// Option configures a Question at construction.
type Option func(*Question) error

// WithRegistry sets the converter registry used to parse ranges.
// It should come before WithRange.
func WithRegistry(reg convert.Registry) Option {
	return func(q *Question) error {
		q.registry = reg
		return nil
	}
}

// WithDefault sets the value returned when no input is given.
func WithDefault(v any) Option {
	return func(q *Question) error {
		q.SetDefault(v)
		return nil
	}
}

// WithRequired marks the question as requiring a value.
func WithRequired(required bool) Option {
	return func(q *Question) error {
		q.SetRequired(required)
		return nil
	}
}

// WithEcho turns echoing of typed input on or off.
func WithEcho(echo bool) Option {
	return func(q *Question) error {
		q.SetEcho(echo)
		return nil
	}
}

// WithRaw turns raw terminal mode on or off. A raw question is read key by
// key on a terminal, with the prompt doing the echo.
func WithRaw(raw bool) Option {
	return func(q *Question) error {
		q.SetRaw(raw)
		return nil
	}
}

// WithMask sets the character displayed in place of each typed character.
// A mask takes precedence over echo.
func WithMask(mask rune) Option {
	return func(q *Question) error {
		q.SetMask(mask)
		return nil
	}
}

// WithChar switches to single keystroke input.
func WithChar(character bool) Option {
	return func(q *Question) error {
		q.SetChar(character)
		return nil
	}
}

// WithRange restricts answers to a range expression such as "1-10".
func WithRange(expr string) Option {
	return func(q *Question) error {
		return q.SetRange(expr)
	}
}

// WithValidation sets the validation rule.
func WithValidation(rule validation.Rule) Option {
	return func(q *Question) error {
		q.SetValidation(rule)
		return nil
	}
}

// WithModifiers replaces the modifier pipeline.
func WithModifiers(rules ...modifier.Rule) Option {
	return func(q *Question) error {
		q.Modify(rules...)
		return nil
	}
}

// WithErrorAction sets the recovery policy consulted by the I/O layer.
func WithErrorAction(action ErrorAction) Option {
	return func(q *Question) error {
		q.SetErrorAction(action)
		return nil
	}
}

// WithConvert sets the conversion applied to the final answer by the I/O layer.
func WithConvert(ref convert.Ref) Option {
	return func(q *Question) error {
		q.SetConvert(ref)
		return nil
	}
}

// New creates a question. A non-empty message makes it Configured.
func New(message string, opts ...Option) (*Question, error) {
	q := &Question{registry: convert.Default()}
	q.defaults()
	q.message = message
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	if q.message != "" {
		q.state = Configured
	}
	return q, nil
}

func (q *Question) defaults() {
	q.message = ""
	q.defaultValue, q.hasDefault = nil, false
	q.required = false
	q.echo = true
	q.raw = false
	q.mask, q.hasMask = 0, false
	q.character = false
	q.rng, q.rangeSrc = convert.Range{}, ""
	q.onError = nil
	q.validation = nil
	q.modifier = modifier.Pipeline{}
	q.read = convert.Ref{}
}

// Call sets the message, runs the configuration blocks in order and moves
// the question to Configured. The first configuration error is returned.
func (q *Question) Call(message string, configure ...func(*Question) error) error {
	q.message = message
	for _, fn := range configure {
		if err := fn(q); err != nil {
			return err
		}
	}
	if q.message == "" {
		return ErrNotConfigured
	}
	q.state = Configured
	return nil
}

// Reopen moves an Evaluated question back to Configured, for callers that
// reject an answer after evaluation (for example when type conversion fails).
func (q *Question) Reopen() error {
	if q.state == Unset {
		return ErrNotConfigured
	}
	q.state = Configured
	return nil
}

// Reset returns the question to Unset with construction defaults.
// The converter registry is kept.
func (q *Question) Reset() {
	q.defaults()
	q.state = Unset
}

// State returns the lifecycle state.
func (q *Question) State() State { return q.state }

// Registry returns the converter registry.
func (q *Question) Registry() convert.Registry { return q.registry }

// Message returns the prompt message.
func (q *Question) Message() string { return q.message }

// SetMessage sets the prompt message and returns the previous one.
func (q *Question) SetMessage(message string) string {
	prev := q.message
	q.message = message
	if q.state == Unset && message != "" {
		q.state = Configured
	}
	return prev
}

// Default returns the default value and whether one is set.
func (q *Question) Default() (any, bool) { return q.defaultValue, q.hasDefault }

// HasDefault reports whether a default is set. A default of false, 0 or ""
// still counts.
func (q *Question) HasDefault() bool { return q.hasDefault }

// SetDefault sets the default and returns the previous one (nil if none).
func (q *Question) SetDefault(v any) any {
	prev := q.defaultValue
	q.defaultValue, q.hasDefault = v, true
	return prev
}

// ClearDefault removes the default.
func (q *Question) ClearDefault() {
	q.defaultValue, q.hasDefault = nil, false
}

// Required reports whether a value is required.
func (q *Question) Required() bool { return q.required }

// SetRequired sets the required flag and returns the previous value.
func (q *Question) SetRequired(required bool) bool {
	prev := q.required
	q.required = required
	return prev
}

// Echo reports whether typed input is echoed.
func (q *Question) Echo() bool { return q.echo }

// SetEcho sets the echo flag and returns the previous value.
func (q *Question) SetEcho(echo bool) bool {
	prev := q.echo
	q.echo = echo
	return prev
}

// Raw reports whether raw terminal mode is requested.
func (q *Question) Raw() bool { return q.raw }

// SetRaw sets the raw flag and returns the previous value.
func (q *Question) SetRaw(raw bool) bool {
	prev := q.raw
	q.raw = raw
	return prev
}

// Mask returns the mask character and whether one is set.
func (q *Question) Mask() (rune, bool) { return q.mask, q.hasMask }

// SetMask sets the mask character and returns the previous one (0 if none).
func (q *Question) SetMask(mask rune) rune {
	prev := q.mask
	q.mask, q.hasMask = mask, true
	return prev
}

// ClearMask removes the mask character.
func (q *Question) ClearMask() {
	q.mask, q.hasMask = 0, false
}

// Char reports whether single keystroke input is requested.
func (q *Question) Char() bool { return q.character }

// SetChar sets character mode and returns the previous value.
func (q *Question) SetChar(character bool) bool {
	prev := q.character
	q.character = character
	return prev
}

// Range returns the accepted range and whether one is set.
func (q *Question) Range() (convert.Range, bool) { return q.rng, !q.rng.IsZero() }

// RangeExpr returns the expression the range was parsed from.
func (q *Question) RangeExpr() string { return q.rangeSrc }

// SetRange parses expr through the registry's "range" converter in strict
// mode. A bad expression fails here and leaves the current range untouched.
func (q *Question) SetRange(expr string) error {
	out, err := q.registry.Invoke(convert.ByName("range"), expr, convert.Strict())
	if err != nil {
		return fmt.Errorf("set range: %w", err)
	}
	rng, ok := out.(convert.Range)
	if !ok {
		return fmt.Errorf("set range: %w", &convert.InvalidRangeError{
			Expr:   expr,
			Reason: fmt.Sprintf("range converter returned %T", out),
		})
	}
	q.rng, q.rangeSrc = rng, expr
	return nil
}

// ClearRange removes the range restriction.
func (q *Question) ClearRange() {
	q.rng, q.rangeSrc = convert.Range{}, ""
}

// Validation returns the validation rule, nil when none is set.
func (q *Question) Validation() validation.Rule { return q.validation }

// SetValidation replaces the validation rule and returns the previous one.
func (q *Question) SetValidation(rule validation.Rule) validation.Rule {
	prev := q.validation
	q.validation = rule
	return prev
}

// Modifier returns the modifier pipeline.
func (q *Question) Modifier() modifier.Pipeline { return q.modifier }

// SetModifier replaces the modifier pipeline and returns the previous one.
func (q *Question) SetModifier(p modifier.Pipeline) modifier.Pipeline {
	prev := q.modifier
	q.modifier = p
	return prev
}

// Modify replaces the modifier pipeline with rules.
func (q *Question) Modify(rules ...modifier.Rule) {
	q.modifier = modifier.New(rules...)
}

// ErrorAction returns the configured recovery policy, nil when unset.
func (q *Question) ErrorAction() ErrorAction { return q.onError }

// SetErrorAction sets the recovery policy and returns the previous one.
func (q *Question) SetErrorAction(action ErrorAction) ErrorAction {
	prev := q.onError
	q.onError = action
	return prev
}

// Convert returns the conversion applied to the final answer.
func (q *Question) Convert() convert.Ref { return q.read }

// SetConvert sets the conversion and returns the previous one.
func (q *Question) SetConvert(ref convert.Ref) convert.Ref {
	prev := q.read
	q.read = ref
	return prev
}

func (q *Question) String() string { return q.message }
