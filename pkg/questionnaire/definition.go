// Package questionnaire loads ordered sets of questions from YAML and asks
// them through a prompt.
//
//	title: Onboarding
//	questions:
//	  - name: name
//	    message: What is your name?
//	    default: Anonymous
//	  - name: age
//	    message: How old are you?
//	    in: 1-120
//	    convert: int
//	    on_error: retry
package questionnaire

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/modifier"
	"github.com/aretw0/inquire/pkg/question"
	"github.com/aretw0/inquire/pkg/validation"
)

// Definition is the declarative form of a question.
type Definition struct {
	Name    string `mapstructure:"name"`
	Message string `mapstructure:"message"`

	Default    any  `mapstructure:"default"`
	HasDefault bool `mapstructure:"-"`

	Required bool   `mapstructure:"required"`
	Echo     *bool  `mapstructure:"echo"`
	Raw      bool   `mapstructure:"raw"`
	Mask     string `mapstructure:"mask"`
	Char     bool   `mapstructure:"char"`

	// In is a range expression such as "1-10".
	In string `mapstructure:"in"`

	// Validate is a regular expression; ValidateTag a validator tag.
	// At most one may be set.
	Validate    string `mapstructure:"validate"`
	Contains    bool   `mapstructure:"contains"`
	ValidateTag string `mapstructure:"validate_tag"`

	// Modify accepts a list of rule names or a comma separated string.
	Modify []string `mapstructure:"modify"`

	Convert string `mapstructure:"convert"`
	OnError string `mapstructure:"on_error"`
}

// Questionnaire is an ordered list of definitions.
type Questionnaire struct {
	Title     string
	Questions []Definition
}

type document struct {
	Title     string           `yaml:"title"`
	Questions []map[string]any `yaml:"questions"`
}

// Load reads a questionnaire file.
func Load(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}
	return Parse(data)
}

// Parse decodes a questionnaire document.
func Parse(data []byte) (*Questionnaire, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, errors.New("questionnaire has no questions")
	}

	qn := &Questionnaire{Title: doc.Title}
	seen := make(map[string]bool, len(doc.Questions))
	for i, raw := range doc.Questions {
		def, err := decodeDefinition(raw)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("question %d: missing name", i+1)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("question %d: duplicate name %q", i+1, def.Name)
		}
		seen[def.Name] = true
		qn.Questions = append(qn.Questions, def)
	}
	return qn, nil
}

func decodeDefinition(raw map[string]any) (Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return def, err
	}
	if err := dec.Decode(raw); err != nil {
		return def, fmt.Errorf("decode definition: %w", err)
	}
	v, ok := raw["default"]
	def.HasDefault = ok && v != nil
	return def, nil
}

// Question builds a configured question from the definition.
func (d Definition) Question(reg convert.Registry) (*question.Question, error) {
	opts := []question.Option{
		question.WithRegistry(reg),
		question.WithRequired(d.Required),
		question.WithRaw(d.Raw),
		question.WithChar(d.Char),
	}
	if d.HasDefault {
		opts = append(opts, question.WithDefault(d.Default))
	}
	if d.Echo != nil {
		opts = append(opts, question.WithEcho(*d.Echo))
	}
	if d.Mask != "" {
		if utf8.RuneCountInString(d.Mask) != 1 {
			return nil, fmt.Errorf("%s: mask must be a single character, got %q", d.Name, d.Mask)
		}
		r, _ := utf8.DecodeRuneInString(d.Mask)
		opts = append(opts, question.WithMask(r))
	}
	if d.In != "" {
		opts = append(opts, question.WithRange(d.In))
	}

	rule, err := d.rule()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	if rule != nil {
		opts = append(opts, question.WithValidation(rule))
	}

	var rules []modifier.Rule
	for _, entry := range d.Modify {
		p, err := modifier.Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		rules = append(rules, p.Rules()...)
	}
	opts = append(opts, question.WithModifiers(rules...))

	if d.Convert != "" {
		if !reg.Has(d.Convert) {
			return nil, fmt.Errorf("%s: %w", d.Name, &convert.UnknownConverterError{Name: d.Convert})
		}
		opts = append(opts, question.WithConvert(convert.ByName(d.Convert)))
	}

	switch d.OnError {
	case "":
	case "retry":
		opts = append(opts, question.WithErrorAction(question.RetryOnError))
	case "abort":
		opts = append(opts, question.WithErrorAction(question.AbortOnError))
	default:
		return nil, fmt.Errorf("%s: on_error must be retry or abort, got %q", d.Name, d.OnError)
	}

	q, err := question.New(d.Message, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	if q.State() != question.Configured {
		return nil, fmt.Errorf("%s: missing message", d.Name)
	}
	return q, nil
}

func (d Definition) rule() (validation.Rule, error) {
	switch {
	case d.Validate != "" && d.ValidateTag != "":
		return nil, errors.New("validate and validate_tag are mutually exclusive")
	case d.Validate != "":
		var opts []validation.PatternOption
		if d.Contains {
			opts = append(opts, validation.Contains())
		}
		return validation.Compile(d.Validate, opts...)
	case d.ValidateTag != "":
		return validation.Tag(d.ValidateTag)
	default:
		return nil, nil
	}
}
