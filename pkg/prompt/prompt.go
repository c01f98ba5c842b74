// Package prompt asks questions over a line-oriented reader and writer.
//
// It is the I/O side of the question pipeline: it renders the message, reads
// a line (hidden, raw or single keystroke when the question asks for it and
// the source is a terminal), hands it to question.Evaluate, converts the
// result and decides whether to ask again from the question's error action.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/question"
)

var (
	// ErrTooManyAttempts is returned when the attempt limit is exhausted.
	ErrTooManyAttempts = errors.New("too many attempts")
	// ErrInterrupted is returned when Ctrl+C is read in raw mode.
	ErrInterrupted = errors.New("interrupted")
)

// Prompt reads answers from a reader and writes questions to a writer.
type Prompt struct {
	source      io.Reader
	reader      *bufio.Reader
	writer      io.Writer
	registry    *convert.Registry
	logger      *slog.Logger
	hooks       Hooks
	style       Style
	prefix      string
	maxAttempts int
	maxInput    int
	pending     *pendingRead
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithRegistry overrides the registry used for the read-as conversion.
// By default each question's own registry is used.
func WithRegistry(reg convert.Registry) Option {
	return func(p *Prompt) {
		p.registry = &reg
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompt) {
		p.logger = logger
	}
}

// WithHooks registers answer and failure callbacks.
func WithHooks(hooks Hooks) Option {
	return func(p *Prompt) {
		p.hooks = hooks
	}
}

// WithStyle overrides the detected output style.
func WithStyle(style Style) Option {
	return func(p *Prompt) {
		p.style = style
	}
}

// WithPrefix sets text printed before every message.
func WithPrefix(prefix string) Option {
	return func(p *Prompt) {
		p.prefix = prefix
	}
}

// WithMaxAttempts bounds how often a question is asked. Zero means no limit.
func WithMaxAttempts(n int) Option {
	return func(p *Prompt) {
		p.maxAttempts = n
	}
}

// WithMaxInputSize bounds a single answer in bytes. Zero uses
// DefaultMaxInputSize or the INQUIRE_MAX_INPUT_SIZE environment variable.
func WithMaxInputSize(n int) Option {
	return func(p *Prompt) {
		p.maxInput = n
	}
}

// New creates a Prompt. Nil reader and writer default to Stdin and Stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompt {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &Prompt{
		source: r,
		reader: bufio.NewReader(r),
		writer: w,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		style:  NewStyle(w),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask renders q, reads the answer and returns the converted value.
// A question answered with nothing and no default yields nil.
func (p *Prompt) Ask(ctx context.Context, q *question.Question) (any, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.render(q)
		in, eof, err := p.read(ctx, q)
		if err != nil {
			if errors.Is(err, ErrInputTooLarge) || errors.Is(err, ErrInvalidUTF8) {
				fmt.Fprintln(p.writer, p.style.Error(fmt.Sprintf("Error: %v. Please try again.", err)))
				if p.exhausted(attempt) {
					return nil, err
				}
				continue
			}
			return nil, err
		}

		value, defaulted, err := p.resolve(q, in)
		if err == nil {
			p.logger.Debug("answer accepted", "question", q.Message(), "attempt", attempt, "defaulted", defaulted)
			p.hooks.answer(ctx, &AnswerEvent{Message: q.Message(), Value: value, Defaulted: defaulted, Attempt: attempt})
			return value, nil
		}

		retry := !eof && p.recovery(q, err) == question.Retry
		kind := question.KindOf(err)
		p.logger.Debug("answer rejected", "question", q.Message(), "kind", kind.String(), "attempt", attempt, "retry", retry, "error", err)
		p.hooks.failure(ctx, &FailureEvent{Message: q.Message(), Kind: kind, Err: err, Attempt: attempt, Retry: retry})

		if !retry {
			return nil, err
		}
		if p.exhausted(attempt) {
			return nil, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
		fmt.Fprintln(p.writer, p.style.Error(fmt.Sprintf("Error: %v. Please try again.", err)))
	}
}

func (p *Prompt) exhausted(attempt int) bool {
	return p.maxAttempts > 0 && attempt >= p.maxAttempts
}

func (p *Prompt) recovery(q *question.Question, err error) question.Recovery {
	action := q.ErrorAction()
	if action == nil {
		return question.Abort
	}
	return action(err)
}

// resolve evaluates the input and applies the read-as conversion.
func (p *Prompt) resolve(q *question.Question, in question.Input) (any, bool, error) {
	ans, err := q.Evaluate(in)
	if err != nil {
		return nil, false, err
	}
	if !ans.Present {
		return nil, false, nil
	}
	if ans.Defaulted {
		return ans.Value, true, nil
	}

	reg := q.Registry()
	if p.registry != nil {
		reg = *p.registry
	}
	value, err := reg.Invoke(q.Convert(), ans.Value, convert.Strict())
	if err != nil {
		// The answer was evaluated but is unusable; allow another attempt.
		_ = q.Reopen()
		return nil, false, fmt.Errorf("convert answer to %s: %w", q.Convert(), err)
	}
	return value, false, nil
}

func (p *Prompt) render(q *question.Question) {
	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteString(q.Message())
	b.WriteString(" ")
	if v, ok := q.Default(); ok && !q.Char() {
		b.WriteString(p.style.Hint(fmt.Sprintf("(%v)", v)))
		b.WriteString(" ")
	}
	fmt.Fprint(p.writer, b.String())
}

// read returns the sanitized input. eof reports that the source is
// exhausted, in which case the input is Absent.
//
// A question with a mask, or a raw question on a terminal, is read key by
// key with the prompt doing the echo. Hidden questions on a terminal are
// read without echo. Everything else is read a line at a time.
func (p *Prompt) read(ctx context.Context, q *question.Question) (question.Input, bool, error) {
	fd, tty := terminalFd(p.source)
	mask, masked := q.Mask()
	keys := &keyReader{
		in:     p.reader,
		out:    p.writer,
		mask:   mask,
		masked: masked,
		echo:   q.Echo(),
		single: q.Char(),
		limit:  p.limit(),
	}

	var (
		line string
		err  error
	)
	switch {
	case tty && (q.Raw() || masked):
		var restore func()
		if restore, err = enterRaw(fd); err == nil {
			line, err = p.await(ctx, func() (string, error) {
				defer restore()
				return keys.read()
			}, restore)
		}
		fmt.Fprintln(p.writer)
	case masked:
		line, err = p.await(ctx, keys.read, nil)
		fmt.Fprintln(p.writer)
	case !q.Echo() && tty:
		line, err = p.await(ctx, func() (string, error) {
			return readHidden(fd)
		}, saveState(fd))
		fmt.Fprintln(p.writer)
	default:
		line, err = p.await(ctx, func() (string, error) {
			return readLine(p.reader, keys.limit)
		}, nil)
	}

	eof := errors.Is(err, io.EOF)
	if errors.Is(err, ErrInterrupted) || errors.Is(err, ErrInputTooLarge) || ctx.Err() != nil {
		return question.Input{}, false, err
	}
	if err != nil && !eof {
		return question.Input{}, false, fmt.Errorf("read answer: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if q.Char() && line != "" {
		r, _ := utf8.DecodeRuneInString(line)
		line = string(r)
	}
	if line == "" {
		return question.Absent(), eof, nil
	}

	clean, err := Sanitize(line, p.maxInput)
	if err != nil {
		return question.Input{}, eof, err
	}
	return question.Provided(clean), false, nil
}
