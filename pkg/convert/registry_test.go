package convert_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inquire/pkg/convert"
)

func upper(in any, _ convert.Options) (any, error) {
	return strings.ToUpper(in.(string)), nil
}

func TestRegistry_Register(t *testing.T) {
	base := convert.NewRegistry(nil)
	assert.False(t, base.Has("upper"))

	withUpper, err := base.Register("upper", upper)
	require.NoError(t, err)

	assert.True(t, withUpper.Has("upper"))
	assert.False(t, base.Has("upper"), "register must not mutate the receiver")
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	first, err := convert.NewRegistry(nil).Register("upper", upper)
	require.NoError(t, err)

	_, err = first.Register("upper", func(in any, _ convert.Options) (any, error) { return "other", nil })

	var dup *convert.DuplicateConverterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "upper", dup.Name)

	// The earlier snapshot keeps working with its original binding.
	out, err := first.Invoke(convert.ByName("upper"), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := convert.NewRegistry(nil).MustRegister("upper", upper)
	assert.Panics(t, func() { reg.MustRegister("upper", upper) })
}

func TestRegistry_NewRegistryCopiesInput(t *testing.T) {
	base := map[string]convert.Func{"upper": upper}
	reg := convert.NewRegistry(base)
	delete(base, "upper")

	assert.True(t, reg.Has("upper"))
}

func TestRegistry_Invoke(t *testing.T) {
	reg := convert.NewRegistry(nil).MustRegister("upper", upper)

	t.Run("By Name", func(t *testing.T) {
		out, err := reg.Invoke(convert.ByName("upper"), "hi")
		require.NoError(t, err)
		assert.Equal(t, "HI", out)
	})

	t.Run("Direct", func(t *testing.T) {
		called := false
		direct := convert.Direct(func(in any, _ convert.Options) (any, error) {
			called = true
			return len(in.(string)), nil
		})
		out, err := reg.Invoke(direct, "four")
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 4, out)
	})

	t.Run("Unknown Name", func(t *testing.T) {
		_, err := reg.Invoke(convert.ByName("missing"), "x")
		var unknown *convert.UnknownConverterError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "missing", unknown.Name)
	})

	t.Run("Zero Ref Passes Through", func(t *testing.T) {
		out, err := reg.Invoke(convert.Ref{}, "same")
		require.NoError(t, err)
		assert.Equal(t, "same", out)
	})

	t.Run("Strict Option Reaches Converter", func(t *testing.T) {
		var seen convert.Options
		probe := convert.Direct(func(in any, opts convert.Options) (any, error) {
			seen = opts
			return in, nil
		})
		_, err := reg.Invoke(probe, "x", convert.Strict())
		require.NoError(t, err)
		assert.True(t, seen.Strict)
	})
}

func TestRegistry_Names(t *testing.T) {
	names := convert.Default().Names()
	assert.Equal(t, []string{"array", "bool", "boolean", "float", "int", "integer", "list", "range", "string"}, names)
}

func TestDefault_Conversions(t *testing.T) {
	reg := convert.Default()

	tests := []struct {
		name  string
		conv  string
		input any
		want  any
	}{
		{"Int", "int", "42", 42},
		{"Int Padded", "int", " 7 ", 7},
		{"Int Leading Zero", "int", "08", 8},
		{"Int Negative Leading Zero", "int", "-010", -10},
		{"Float", "float", "2.5", 2.5},
		{"Bool Yes", "bool", "yes", true},
		{"Bool N", "bool", "N", false},
		{"Bool True", "boolean", "true", true},
		{"String", "string", 12, "12"},
		{"List", "list", "a, b,,c", []string{"a", "b", "c"}},
		{"List Empty", "list", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Invoke(convert.ByName(tt.conv), tt.input, convert.Strict())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_StrictFailure(t *testing.T) {
	reg := convert.Default()

	_, err := reg.Invoke(convert.ByName("int"), "abc", convert.Strict())
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrConversion))

	// Without strict mode the input comes back untouched.
	out, err := reg.Invoke(convert.ByName("int"), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}
