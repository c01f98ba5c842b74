package convert

import (
	"maps"
	"slices"
)

// Options tunes a single conversion.
type Options struct {
	// Strict makes a converter fail when the input cannot be converted.
	// Without it the input is returned unchanged.
	Strict bool
}

// Option mutates Options for one Invoke call.
type Option func(*Options)

// Strict enables strict conversion.
func Strict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// Func converts an input value. Converters are expected to be pure.
type Func func(input any, opts Options) (any, error)

// Ref points at a converter either by registered name or directly.
// The zero Ref means "no conversion".
type Ref struct {
	name string
	fn   Func
}

// ByName references a registered converter.
func ByName(name string) Ref {
	return Ref{name: name}
}

// Direct wraps a converter function so it is invoked without lookup.
func Direct(fn Func) Ref {
	return Ref{fn: fn}
}

// IsZero reports whether the Ref points at nothing.
func (r Ref) IsZero() bool {
	return r.name == "" && r.fn == nil
}

// Name returns the registered name, or "" for direct converters.
func (r Ref) Name() string {
	return r.name
}

func (r Ref) String() string {
	switch {
	case r.fn != nil:
		return "<func>"
	case r.name != "":
		return r.name
	default:
		return "<none>"
	}
}

// Registry maps converter names to conversion functions.
// The zero value is an empty, usable registry.
type Registry struct {
	converters map[string]Func
}

// NewRegistry creates a registry from the given bindings. The map is copied.
func NewRegistry(base map[string]Func) Registry {
	return Registry{converters: maps.Clone(base)}
}

// Register returns a new registry with name bound to fn.
// The receiver is left untouched.
func (r Registry) Register(name string, fn Func) (Registry, error) {
	if r.Has(name) {
		return r, &DuplicateConverterError{Name: name}
	}
	next := make(map[string]Func, len(r.converters)+1)
	maps.Copy(next, r.converters)
	next[name] = fn
	return Registry{converters: next}, nil
}

// MustRegister is like Register but panics on a duplicate name.
// Intended for package-level setup.
func (r Registry) MustRegister(name string, fn Func) Registry {
	next, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return next
}

// Has reports whether name is bound.
func (r Registry) Has(name string) bool {
	_, ok := r.converters[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.converters))
}

// Invoke runs the converter referenced by ref on input.
// A zero ref returns the input unchanged.
func (r Registry) Invoke(ref Ref, input any, opts ...Option) (any, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	fn := ref.fn
	if fn == nil {
		if ref.name == "" {
			return input, nil
		}
		var ok bool
		fn, ok = r.converters[ref.name]
		if !ok {
			return nil, &UnknownConverterError{Name: ref.name}
		}
	}
	return fn(input, o)
}
