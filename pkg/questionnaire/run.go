package questionnaire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/prompt"
	"github.com/aretw0/inquire/pkg/question"
)

// Answer is one named result.
type Answer struct {
	Name  string
	Value any
}

// Answers keeps results in question order.
type Answers []Answer

// Get returns the value recorded for name.
func (a Answers) Get(name string) (any, bool) {
	for _, ans := range a {
		if ans.Name == name {
			return ans.Value, true
		}
	}
	return nil, false
}

// Map returns the answers keyed by name.
func (a Answers) Map() map[string]any {
	m := make(map[string]any, len(a))
	for _, ans := range a {
		m[ans.Name] = ans.Value
	}
	return m
}

// MarshalJSON encodes the answers as an object preserving question order.
func (a Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ans := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ans.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ans.Value)
		if err != nil {
			return nil, fmt.Errorf("answer %s: %w", ans.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the answers as a mapping preserving question order.
func (a Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ans := range a {
		var val yaml.Node
		if err := val.Encode(ans.Value); err != nil {
			return nil, fmt.Errorf("answer %s: %w", ans.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ans.Name},
			&val,
		)
	}
	return node, nil
}

// Build creates one question per definition.
func (qn *Questionnaire) Build(reg convert.Registry) ([]*question.Question, error) {
	questions := make([]*question.Question, 0, len(qn.Questions))
	for _, def := range qn.Questions {
		q, err := def.Question(reg)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Run asks every question in order and stops at the first failure.
func (qn *Questionnaire) Run(ctx context.Context, p *prompt.Prompt, reg convert.Registry) (Answers, error) {
	questions, err := qn.Build(reg)
	if err != nil {
		return nil, err
	}

	answers := make(Answers, 0, len(questions))
	for i, q := range questions {
		v, err := p.Ask(ctx, q)
		if err != nil {
			return answers, fmt.Errorf("%s: %w", qn.Questions[i].Name, err)
		}
		answers = append(answers, Answer{Name: qn.Questions[i].Name, Value: v})
	}
	return answers, nil
}
