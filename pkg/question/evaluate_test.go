package question_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/modifier"
	"github.com/aretw0/inquire/pkg/question"
	"github.com/aretw0/inquire/pkg/validation"
)

// recorder counts how often the validation and modifier stages run.
type recorder struct {
	validated int
	modified  int
}

func (r *recorder) rule() validation.Rule {
	return validation.Predicate("anything", func(string) bool {
		r.validated++
		return true
	})
}

func (r *recorder) modifier() modifier.Rule {
	return modifier.Custom(func(s string) string {
		r.modified++
		return s
	})
}

func TestEvaluate_DefaultSkipsEverything(t *testing.T) {
	defaults := []any{"Anonymous", 42, 3.5, false, true, "", []string{"a"}}

	for _, d := range defaults {
		rec := &recorder{}
		q, err := question.New("Pick",
			question.WithDefault(d),
			question.WithRequired(true),
			question.WithRange("1-10"),
			question.WithValidation(rec.rule()),
			question.WithModifiers(rec.modifier()),
		)
		require.NoError(t, err)

		ans, err := q.Evaluate(question.Absent())
		require.NoError(t, err, "default %v", d)
		assert.Equal(t, d, ans.Value)
		assert.True(t, ans.Present)
		assert.True(t, ans.Defaulted)
		assert.Zero(t, rec.validated, "validation ran for default %v", d)
		assert.Zero(t, rec.modified, "modifier ran for default %v", d)
	}
}

func TestEvaluate_DefaultNotUsedForProvidedInput(t *testing.T) {
	q, err := question.New("Name?", question.WithDefault("Anonymous"))
	require.NoError(t, err)

	ans, err := q.Evaluate(question.Provided("Piotr"))
	require.NoError(t, err)
	assert.Equal(t, "Piotr", ans.Value)
	assert.False(t, ans.Defaulted)
}

func TestEvaluate_Required(t *testing.T) {
	for _, in := range []question.Input{question.Absent(), question.Provided("")} {
		q, err := question.New("Name?", question.WithRequired(true))
		require.NoError(t, err)

		_, err = q.Evaluate(in)
		var missing *question.MissingValueError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Name?", missing.Message)
		assert.Equal(t, question.KindMissingValue, question.KindOf(err))
		assert.Equal(t, question.Configured, q.State(), "failure must not consume the question")
	}
}

func TestEvaluate_RequiredWithDefaultAndEmptyInput(t *testing.T) {
	rec := &recorder{}
	q, err := question.New("Name?",
		question.WithRequired(true),
		question.WithDefault("x"),
		question.WithValidation(rec.rule()),
	)
	require.NoError(t, err)

	// Present-but-empty input is not absent, so the default does not apply,
	// but the requirement is satisfied by the default existing.
	ans, err := q.Evaluate(question.Provided(""))
	require.NoError(t, err)
	assert.Equal(t, "", ans.Value)
	assert.Equal(t, 1, rec.validated)
}

func TestEvaluate_AbsentNotRequired(t *testing.T) {
	rec := &recorder{}
	q, err := question.New("Anything?",
		question.WithValidation(rec.rule()),
		question.WithModifiers(rec.modifier()),
	)
	require.NoError(t, err)

	ans, err := q.Evaluate(question.Absent())
	require.NoError(t, err)
	assert.False(t, ans.Present)
	assert.Nil(t, ans.Value)
	assert.Equal(t, "", ans.String())
	assert.Zero(t, rec.validated)
	assert.Zero(t, rec.modified)
}

func TestEvaluate_Range(t *testing.T) {
	tests := []struct {
		expr   string
		lo, hi int
	}{
		{"1-10", 1, 10},
		{"-5..5", -5, 5},
		{"0,100", 0, 100},
		{"7-7", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			for v := tt.lo - 3; v <= tt.hi+3; v++ {
				q, err := question.New("Number?", question.WithRange(tt.expr))
				require.NoError(t, err)

				in := question.Provided(itoa(v))
				_, err = q.Evaluate(in)
				if v >= tt.lo && v <= tt.hi {
					assert.NoError(t, err, "value %d", v)
					continue
				}
				var oor *question.OutOfRangeError
				require.ErrorAs(t, err, &oor, "value %d", v)
				assert.Equal(t, itoa(v), oor.Value)
				lo, hi := oor.Bounds()
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestEvaluate_RangeBeforeValidation(t *testing.T) {
	rec := &recorder{}
	q, err := question.New("Number?",
		question.WithRange("1-10"),
		question.WithValidation(rec.rule()),
	)
	require.NoError(t, err)

	_, err = q.Evaluate(question.Provided("11"))
	assert.Equal(t, question.KindOutOfRange, question.KindOf(err))
	assert.Zero(t, rec.validated)
}

func TestEvaluate_ValidationBeforeModification(t *testing.T) {
	// The pattern only accepts lowercase, so upcasing must come afterwards.
	q, err := question.New("Code?",
		question.WithValidation(validation.MustCompile(`[a-z]+`)),
		question.WithModifiers(modifier.Named(modifier.Up)),
	)
	require.NoError(t, err)

	ans, err := q.Evaluate(question.Provided("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", ans.Value)
}

func TestEvaluate_UnknownModifier(t *testing.T) {
	q, err := question.New("x", question.WithModifiers(modifier.Named("sparkle")))
	require.NoError(t, err)

	_, err = q.Evaluate(question.Provided("a"))
	assert.Equal(t, question.KindUnknownModifier, question.KindOf(err))
}

func TestEvaluate_States(t *testing.T) {
	q, err := question.New("")
	require.NoError(t, err)
	assert.Equal(t, question.Unset, q.State())

	_, err = q.Evaluate(question.Provided("x"))
	assert.ErrorIs(t, err, question.ErrNotConfigured)

	require.NoError(t, q.Call("Ready?"))
	assert.Equal(t, question.Configured, q.State())

	_, err = q.Evaluate(question.Provided("yes"))
	require.NoError(t, err)
	assert.Equal(t, question.Evaluated, q.State())

	_, err = q.Evaluate(question.Provided("again"))
	assert.ErrorIs(t, err, question.ErrAlreadyEvaluated)

	q.Reset()
	assert.Equal(t, question.Unset, q.State())
}

func TestScenario_DefaultName(t *testing.T) {
	q, err := question.New("")
	require.NoError(t, err)

	err = q.Call("What is your name?", func(q *question.Question) error {
		q.SetDefault("Anonymous")
		return nil
	})
	require.NoError(t, err)

	ans, err := q.Evaluate(question.Absent())
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", ans.Value)
}

func TestScenario_RangeWithConversion(t *testing.T) {
	reg := convert.Default()

	q, err := question.New("Rate 1-10", question.WithRange("1-10"), question.WithConvert(convert.ByName("int")))
	require.NoError(t, err)

	ans, err := q.Evaluate(question.Provided("5"))
	require.NoError(t, err)
	n, err := reg.Invoke(q.Convert(), ans.Value, convert.Strict())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	q.Reset()
	require.NoError(t, q.Call("Rate 1-10", func(q *question.Question) error { return q.SetRange("1-10") }))
	_, err = q.Evaluate(question.Provided("15"))
	var oor *question.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	lo, hi := oor.Bounds()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)
}

func TestScenario_DigitsThenUpcase(t *testing.T) {
	newQuestion := func() *question.Question {
		q, err := question.New("Digits?",
			question.WithValidation(validation.MustCompile(`\d+`)),
			question.WithModifiers(modifier.Named(modifier.Up)),
		)
		require.NoError(t, err)
		return q
	}

	_, err := newQuestion().Evaluate(question.Provided("abc"))
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "abc", verr.Value)

	ans, err := newQuestion().Evaluate(question.Provided("123"))
	require.NoError(t, err)
	assert.Equal(t, "123", ans.Value)
}

func itoa(v int) string {
	out, _ := convert.Default().Invoke(convert.ByName("string"), v)
	return out.(string)
}
