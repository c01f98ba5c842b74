/*
Package inquire turns raw lines of user input into validated, typed answers.

A question combines a default value, a required flag, an accepted range, a
validation rule and a modifier pipeline. Evaluation applies them in a fixed
order so that, for example, a default is returned untouched and a range is
checked before custom validation.

# Packages

  - question: the evaluation contract and configuration surface.
  - convert: the immutable converter registry and range parsing.
  - validation: pattern, predicate and validator-tag rules.
  - modifier: ordered string transformations (trim, collapse, upcase, ...).
  - prompt: asks questions over an io.Reader / io.Writer pair.
  - questionnaire: ordered question sets loaded from YAML.

# Usage

	q, err := question.New("What is your name?", question.WithDefault("Anonymous"))
	if err != nil {
		log.Fatal(err)
	}

	name, err := inquire.Ask(ctx, q)

For finer control over I/O, build a prompt.Prompt directly.
*/
package inquire
