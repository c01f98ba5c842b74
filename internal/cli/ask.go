package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/prompt"
	"github.com/aretw0/inquire/pkg/questionnaire"
)

// AskOptions mirrors the flags of the ask command.
type AskOptions struct {
	Message     string
	Default     string
	HasDefault  bool
	Required    bool
	Hidden      bool
	Mask        string
	Char        bool
	Raw         bool
	In          string
	Validate    string
	ValidateTag string
	Modify      string
	Convert     string
	Retry       bool
	MaxAttempts int
	LogLevel    string
}

// RunAsk asks a single question built from flags and prints the answer.
func RunAsk(ctx context.Context, in io.Reader, out, errOut io.Writer, opts AskOptions) error {
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	def := questionnaire.Definition{
		Name:        "answer",
		Message:     opts.Message,
		HasDefault:  opts.HasDefault,
		Required:    opts.Required,
		Raw:         opts.Raw,
		Mask:        opts.Mask,
		Char:        opts.Char,
		In:          opts.In,
		Validate:    opts.Validate,
		ValidateTag: opts.ValidateTag,
		Convert:     opts.Convert,
	}
	if opts.HasDefault {
		def.Default = opts.Default
	}
	if opts.Hidden {
		echo := false
		def.Echo = &echo
	}
	if opts.Modify != "" {
		def.Modify = []string{opts.Modify}
	}
	if opts.Retry {
		def.OnError = "retry"
	}

	q, err := def.Question(convert.Default())
	if err != nil {
		return err
	}

	p := prompt.New(in, errOut,
		prompt.WithLogger(logger),
		prompt.WithHooks(createDebugHooks(logger)),
		prompt.WithMaxAttempts(opts.MaxAttempts),
	)
	value, err := p.Ask(ctx, q)
	if err != nil {
		return handleExecutionError(ctx, errOut, err)
	}
	if value != nil {
		fmt.Fprintln(out, value)
	}
	return nil
}
