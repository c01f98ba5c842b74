// Package convert provides the converter registry used to coerce raw answers
// into typed values.
//
// A Registry is an immutable value: Register never modifies the receiver, it
// returns a new Registry carrying the extra binding. This makes a Registry
// safe to share between prompts and goroutines without locking.
//
//	reg, err := convert.Default().Register("upper", func(in any, _ convert.Options) (any, error) {
//	    return strings.ToUpper(cast.ToString(in)), nil
//	})
//
//	n, err := reg.Invoke(convert.ByName("int"), "42", convert.Strict())
//
// Converters may also be passed directly, bypassing the lookup:
//
//	v, err := reg.Invoke(convert.Direct(myFunc), "input")
package convert
