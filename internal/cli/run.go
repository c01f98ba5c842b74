package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/prompt"
	"github.com/aretw0/inquire/pkg/questionnaire"
)

// RunOptions mirrors the flags of the run command.
type RunOptions struct {
	Path        string
	Format      string
	MetricsAddr string
	MaxAttempts int
	LogLevel    string
}

// RunQuestionnaire asks every question of a YAML file and writes the answers
// to out. Prompts go to errOut so the answers can be piped.
func RunQuestionnaire(ctx context.Context, in io.Reader, out, errOut io.Writer, opts RunOptions) error {
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	encode, err := encoder(opts.Format)
	if err != nil {
		return err
	}

	qn, err := questionnaire.Load(opts.Path)
	if err != nil {
		return err
	}
	logger.Info("Questionnaire loaded", "path", opts.Path, "questions", len(qn.Questions))

	hooks := createDebugHooks(logger)
	if opts.MetricsAddr != "" {
		metricsHooks, shutdown, err := serveMetrics(opts.MetricsAddr, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		hooks = prompt.Chain(hooks, metricsHooks)
	}

	if qn.Title != "" {
		fmt.Fprintf(errOut, ">>> %s\n", qn.Title)
	}

	p := prompt.New(in, errOut,
		prompt.WithLogger(logger),
		prompt.WithHooks(hooks),
		prompt.WithMaxAttempts(opts.MaxAttempts),
	)
	answers, err := qn.Run(ctx, p, convert.Default())
	if err != nil {
		return handleExecutionError(ctx, errOut, err)
	}
	return encode(out, answers)
}

func encoder(format string) (func(io.Writer, questionnaire.Answers) error, error) {
	switch format {
	case "", "json":
		return func(w io.Writer, a questionnaire.Answers) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(a)
		}, nil
	case "yaml":
		return func(w io.Writer, a questionnaire.Answers) error {
			enc := yaml.NewEncoder(w)
			defer enc.Close()
			return enc.Encode(a)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}
