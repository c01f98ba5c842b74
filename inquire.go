package inquire

import (
	"context"
	"os"

	"github.com/aretw0/inquire/pkg/prompt"
	"github.com/aretw0/inquire/pkg/question"
)

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Ask asks q on Stdin/Stdout and returns the converted answer.
func Ask(ctx context.Context, q *question.Question, opts ...prompt.Option) (any, error) {
	return prompt.New(os.Stdin, os.Stdout, opts...).Ask(ctx, q)
}
