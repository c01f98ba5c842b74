package prompt

import (
	"context"

	"github.com/aretw0/inquire/pkg/question"
)

// AnswerEvent describes an accepted answer.
type AnswerEvent struct {
	Message   string
	Value     any
	Defaulted bool
	Attempt   int
}

// FailureEvent describes a rejected answer.
type FailureEvent struct {
	Message string
	Kind    question.Kind
	Err     error
	Attempt int
	Retry   bool
}

// Hooks are optional callbacks fired while asking.
type Hooks struct {
	OnAnswer  func(context.Context, *AnswerEvent)
	OnFailure func(context.Context, *FailureEvent)
}

// Chain fans events out to several hook sets in order.
func Chain(hooks ...Hooks) Hooks {
	return Hooks{
		OnAnswer: func(ctx context.Context, e *AnswerEvent) {
			for _, h := range hooks {
				if h.OnAnswer != nil {
					h.OnAnswer(ctx, e)
				}
			}
		},
		OnFailure: func(ctx context.Context, e *FailureEvent) {
			for _, h := range hooks {
				if h.OnFailure != nil {
					h.OnFailure(ctx, e)
				}
			}
		},
	}
}

func (h Hooks) answer(ctx context.Context, e *AnswerEvent) {
	if h.OnAnswer != nil {
		h.OnAnswer(ctx, e)
	}
}

func (h Hooks) failure(ctx context.Context, e *FailureEvent) {
	if h.OnFailure != nil {
		h.OnFailure(ctx, e)
	}
}
