package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/inquire/internal/logging"
	"github.com/aretw0/inquire/pkg/prompt"
)

// createLogger builds the stderr logger for the given level name.
func createLogger(level string) (*slog.Logger, error) {
	if level == "" || level == "off" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

func createDebugHooks(logger *slog.Logger) prompt.Hooks {
	return prompt.Hooks{
		OnAnswer: func(ctx context.Context, e *prompt.AnswerEvent) {
			logger.Debug("Answer", "question", e.Message, "attempt", e.Attempt, "defaulted", e.Defaulted)
		},
		OnFailure: func(ctx context.Context, e *prompt.FailureEvent) {
			logger.Debug("Failure", "question", e.Message, "kind", e.Kind.String(), "retry", e.Retry, "err", e.Err)
		},
	}
}

// serveMetrics registers prompt metrics and exposes them on addr.
// It returns the prompt hooks and a shutdown function.
func serveMetrics(addr string, logger *slog.Logger) (prompt.Hooks, func(), error) {
	reg := prometheus.NewRegistry()
	m, err := prompt.NewMetrics(reg)
	if err != nil {
		return prompt.Hooks{}, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return m.Hooks(), shutdown, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, prompt.ErrInterrupted)
}

// handleExecutionError turns an interruption into an *ExitError when a
// signal or Ctrl+C caused it. Cancellation for any other reason is a clean
// exit.
func handleExecutionError(ctx context.Context, w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if !isInterrupted(err) {
		return err
	}
	fmt.Fprintln(w)

	sig := signalOf(ctx)
	if sig == nil && errors.Is(err, prompt.ErrInterrupted) {
		sig = os.Interrupt
	}
	if sig == nil {
		return nil
	}
	return &ExitError{Signal: sig}
}
