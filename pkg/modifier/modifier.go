// Package modifier applies ordered string transformations to answers.
package modifier

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in rule names.
const (
	Trim       = "trim"
	Chomp      = "chomp"
	Collapse   = "collapse"
	Remove     = "remove"
	Up         = "up"
	Down       = "down"
	Capitalize = "capitalize"
)

// Casers carry state, so a fresh one is built per call.
func upcase(s string) string   { return cases.Upper(language.Und).String(s) }
func downcase(s string) string { return cases.Lower(language.Und).String(s) }

var builtins = map[string]func(string) string{
	Trim:        strings.TrimSpace,
	"strip":     strings.TrimSpace,
	Chomp:       chomp,
	Collapse:    collapse,
	Remove:      remove,
	Up:          upcase,
	"upcase":    upcase,
	"uppercase": upcase,
	Down:        downcase,
	"downcase":  downcase,
	"lowercase": downcase,
	Capitalize:  capitalize,
}

// UnknownModifierError is returned when a named rule is not a built-in.
type UnknownModifierError struct {
	Name string
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier %q", e.Name)
}

// Rule is either a built-in referenced by name or a custom function.
type Rule struct {
	name string
	fn   func(string) string
}

// Named references a built-in rule.
func Named(name string) Rule {
	return Rule{name: name}
}

// Custom wraps a caller supplied transformation.
func Custom(fn func(string) string) Rule {
	return Rule{fn: fn}
}

func (r Rule) String() string {
	if r.fn != nil {
		return "<func>"
	}
	return r.name
}

func (r Rule) resolve() (func(string) string, error) {
	if r.fn != nil {
		return r.fn, nil
	}
	fn, ok := builtins[strings.ToLower(r.name)]
	if !ok {
		return nil, &UnknownModifierError{Name: r.name}
	}
	return fn, nil
}

// Known reports whether name is a built-in rule.
func Known(name string) bool {
	_, ok := builtins[strings.ToLower(name)]
	return ok
}

// Apply runs rules over input in order; each rule sees the previous output.
func Apply(rules []Rule, input string) (string, error) {
	out := input
	for _, r := range rules {
		fn, err := r.resolve()
		if err != nil {
			return "", err
		}
		out = fn(out)
	}
	return out, nil
}

// Pipeline is an immutable, ordered set of rules.
type Pipeline struct {
	rules []Rule
}

// New builds a pipeline from rules.
func New(rules ...Rule) Pipeline {
	return Pipeline{rules: append([]Rule(nil), rules...)}
}

// Parse builds a pipeline from a comma separated list of built-in names,
// e.g. "trim,up". Names are checked eagerly.
func Parse(list string) (Pipeline, error) {
	var rules []Rule
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !Known(name) {
			return Pipeline{}, &UnknownModifierError{Name: name}
		}
		rules = append(rules, Named(name))
	}
	return New(rules...), nil
}

// Rules returns a copy of the pipeline's rules.
func (p Pipeline) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Len returns the number of rules.
func (p Pipeline) Len() int {
	return len(p.rules)
}

// Apply runs the pipeline over input.
func (p Pipeline) Apply(input string) (string, error) {
	return Apply(p.rules, input)
}

func chomp(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func remove(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(first)) + downcase(s[size:])
}
