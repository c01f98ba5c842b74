package convert

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

type rangeKind int

const (
	numericRange rangeKind = iota
	charRange
)

var (
	numericRangePattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*(\.\.\.|\.\.|-|,)\s*(-?\d+(?:\.\d+)?)\s*$`)
	charRangePattern    = regexp.MustCompile(`^\s*(\pL)\s*(\.\.\.|\.\.|-|,)\s*(\pL)\s*$`)
)

// Range is an inclusive (or end-exclusive) interval of numbers or letters,
// parsed from expressions such as "1-10", "1..10", "1...10", "a-z".
type Range struct {
	kind      rangeKind
	lo, hi    float64
	exclusive bool
	set       bool
}

// ParseRange parses a range expression strictly.
func ParseRange(expr string) (Range, error) {
	if m := numericRangePattern.FindStringSubmatch(expr); m != nil {
		lo, err := cast.ToFloat64E(m[1])
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		hi, err := cast.ToFloat64E(m[3])
		if err != nil {
			return Range{}, &InvalidRangeError{Expr: expr, Reason: err.Error()}
		}
		return newRange(expr, numericRange, lo, hi, m[2] == "...")
	}
	if m := charRangePattern.FindStringSubmatch(expr); m != nil {
		lo, _ := utf8.DecodeRuneInString(m[1])
		hi, _ := utf8.DecodeRuneInString(m[3])
		return newRange(expr, charRange, float64(lo), float64(hi), m[2] == "...")
	}
	return Range{}, &InvalidRangeError{Expr: expr, Reason: "expected <start><sep><end> with sep one of '-', '..', '...', ','"}
}

// NumericRange builds an inclusive numeric range.
func NumericRange(lo, hi float64) (Range, error) {
	return newRange(fmt.Sprintf("%v..%v", lo, hi), numericRange, lo, hi, false)
}

func newRange(expr string, kind rangeKind, lo, hi float64, exclusive bool) (Range, error) {
	if lo > hi {
		return Range{}, &InvalidRangeError{Expr: expr, Reason: "start is greater than end"}
	}
	return Range{kind: kind, lo: lo, hi: hi, exclusive: exclusive, set: true}, nil
}

// IsZero reports whether r is the zero Range.
func (r Range) IsZero() bool {
	return !r.set
}

// Exclusive reports whether the upper bound is excluded.
func (r Range) Exclusive() bool {
	return r.exclusive
}

// Bounds returns the lower and upper bound. Numeric bounds are int when
// integral, float64 otherwise; letter bounds are one-character strings.
func (r Range) Bounds() (lo, hi any) {
	return r.bound(r.lo), r.bound(r.hi)
}

func (r Range) bound(v float64) any {
	if r.kind == charRange {
		return string(rune(v))
	}
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt32 {
		return int(v)
	}
	return v
}

// Contains reports whether value lies within the range. Strings are parsed
// as numbers for numeric ranges and must be a single letter for letter ranges.
func (r Range) Contains(value any) bool {
	v, ok := r.position(value)
	if !ok || !r.set {
		return false
	}
	if v < r.lo {
		return false
	}
	if r.exclusive {
		return v < r.hi
	}
	return v <= r.hi
}

func (r Range) position(value any) (float64, bool) {
	if r.kind == charRange {
		switch v := value.(type) {
		case rune:
			return float64(v), true
		case string:
			s := strings.TrimSpace(v)
			if utf8.RuneCountInString(s) != 1 {
				return 0, false
			}
			c, _ := utf8.DecodeRuneInString(s)
			return float64(c), true
		default:
			return 0, false
		}
	}

	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r Range) String() string {
	sep := ".."
	if r.exclusive {
		sep = "..."
	}
	lo, hi := r.Bounds()
	return fmt.Sprintf("%v%s%v", lo, sep, hi)
}

// MarshalText encodes the range in its canonical form so it reads back
// through ParseRange.
func (r Range) MarshalText() ([]byte, error) {
	if !r.set {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

func rangeConverter(input any, opts Options) (any, error) {
	switch v := input.(type) {
	case Range:
		return v, nil
	case string:
		r, err := ParseRange(v)
		if err != nil {
			if opts.Strict {
				return nil, err
			}
			return input, nil
		}
		return r, nil
	default:
		if opts.Strict {
			return nil, &InvalidRangeError{Expr: fmt.Sprint(input), Reason: fmt.Sprintf("unsupported type %T", input)}
		}
		return input, nil
	}
}
