package prompt

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts answers and failures by kind.
type Metrics struct {
	answers  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the prompt collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inquire_answers_total",
				Help: "Total number of accepted answers",
			},
			[]string{"source"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inquire_failures_total",
				Help: "Total number of rejected answers",
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{m.answers, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns hooks that record into m.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnAnswer: func(_ context.Context, e *AnswerEvent) {
			source := "input"
			if e.Defaulted {
				source = "default"
			}
			m.answers.WithLabelValues(source).Inc()
		},
		OnFailure: func(_ context.Context, e *FailureEvent) {
			m.failures.WithLabelValues(e.Kind.String()).Inc()
		},
	}
}
