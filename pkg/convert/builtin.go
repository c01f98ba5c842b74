package convert

import (
	"strings"

	"github.com/spf13/cast"
)

var defaultRegistry = NewRegistry(map[string]Func{
	"string":  toString,
	"int":     toInt,
	"integer": toInt,
	"float":   toFloat,
	"bool":    toBool,
	"boolean": toBool,
	"list":    toList,
	"array":   toList,
	"range":   rangeConverter,
})

// Default returns the registry of built-in converters:
// string, int (integer), float, bool (boolean), list (array) and range.
func Default() Registry {
	return defaultRegistry
}

func toString(input any, opts Options) (any, error) {
	s, err := cast.ToStringE(input)
	if err != nil {
		return fallback(input, "string", opts, err)
	}
	return s, nil
}

func toInt(input any, opts Options) (any, error) {
	if s, ok := input.(string); ok {
		input = trimLeadingZeros(strings.TrimSpace(s))
	}
	n, err := cast.ToIntE(input)
	if err != nil {
		return fallback(input, "int", opts, err)
	}
	return n, nil
}

// trimLeadingZeros keeps "08" from being read as an invalid octal literal.
func trimLeadingZeros(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = strings.TrimLeft(s, "0")
		if s == "" || s[0] == '.' {
			s = "0" + s
		}
	}
	return sign + s
}

func toFloat(input any, opts Options) (any, error) {
	if s, ok := input.(string); ok {
		input = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(input)
	if err != nil {
		return fallback(input, "float", opts, err)
	}
	return f, nil
}

func toBool(input any, opts Options) (any, error) {
	if s, ok := input.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y", "yes", "on":
			return true, nil
		case "n", "no", "off":
			return false, nil
		}
		input = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(input)
	if err != nil {
		return fallback(input, "bool", opts, err)
	}
	return b, nil
}

func toList(input any, opts Options) (any, error) {
	s, ok := input.(string)
	if !ok {
		list, err := cast.ToStringSliceE(input)
		if err != nil {
			return fallback(input, "list", opts, err)
		}
		return list, nil
	}

	items := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}

func fallback(input any, target string, opts Options, cause error) (any, error) {
	if opts.Strict {
		return nil, conversionError(input, target, cause)
	}
	return input, nil
}
