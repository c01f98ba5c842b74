package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

type readResult struct {
	line string
	err  error
}

// pendingRead is a read still running in the background. A cancelled Ask
// leaves it in place so the next read picks up its result instead of racing
// it for the same input.
type pendingRead struct {
	result  chan readResult
	cleanup func()
}

// await runs read in the background and waits for it or for ctx. cleanup,
// when set, runs on cancellation to put the terminal back into its previous
// mode while read is still blocked.
func (p *Prompt) await(ctx context.Context, read func() (string, error), cleanup func()) (string, error) {
	if p.pending != nil && cleanup != nil {
		// read will not run; undo whatever mode the caller set up for it.
		cleanup()
	}
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := read()
			ch <- readResult{line: line, err: err}
		}()
		p.pending = &pendingRead{result: ch, cleanup: cleanup}
	}

	select {
	case <-ctx.Done():
		if p.pending.cleanup != nil {
			p.pending.cleanup()
		}
		return "", ctx.Err()
	case res := <-p.pending.result:
		p.pending = nil
		// A line that arrives together with the cancellation is dropped.
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return res.line, res.err
	}
}

func (p *Prompt) limit() int {
	if p.maxInput > 0 {
		return p.maxInput
	}
	return maxInputSize()
}

// readLine reads up to and including the next newline. Lines longer than
// limit are consumed and discarded without being buffered whole.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var (
		buf  []byte
		over bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if !over {
			if len(buf)+len(chunk) > limit+len("\r\n") {
				over, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if over && (err == nil || errors.Is(err, io.EOF)) {
			return "", fmt.Errorf("%w: limit=%d", ErrInputTooLarge, limit)
		}
		return string(buf), err
	}
}

// keyReader reads an answer one key at a time and echoes it itself, so the
// terminal is expected to be in raw mode (or not a terminal at all).
type keyReader struct {
	in     *bufio.Reader
	out    io.Writer
	mask   rune
	masked bool
	echo   bool
	single bool
	limit  int
}

func (k *keyReader) read() (string, error) {
	var (
		b    strings.Builder
		over bool
	)
	for {
		r, _, err := k.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				break
			}
			return "", err
		}

		switch {
		case r == keyInterrupt:
			return "", ErrInterrupted
		case r == keyEOF:
			if b.Len() == 0 {
				return "", io.EOF
			}
		case r == '\r' || r == '\n':
			if r == '\r' && k.in.Buffered() > 0 {
				if next, _ := k.in.Peek(1); next[0] == '\n' {
					_, _ = k.in.ReadByte()
				}
			}
			if over {
				return "", fmt.Errorf("%w: limit=%d", ErrInputTooLarge, k.limit)
			}
			return b.String(), nil
		case r == keyBackspace || r == keyDelete:
			s := b.String()
			if _, size := utf8.DecodeLastRuneInString(s); size > 0 {
				b.Reset()
				b.WriteString(s[:len(s)-size])
				k.erase()
			}
		case unicode.IsControl(r):
		default:
			if b.Len()+utf8.RuneLen(r) > k.limit {
				over = true
				continue
			}
			b.WriteRune(r)
			k.show(r)
			if k.single {
				return b.String(), nil
			}
		}
	}
	if over {
		return "", fmt.Errorf("%w: limit=%d", ErrInputTooLarge, k.limit)
	}
	return b.String(), nil
}

func (k *keyReader) show(r rune) {
	switch {
	case k.masked:
		fmt.Fprint(k.out, string(k.mask))
	case k.echo:
		fmt.Fprint(k.out, string(r))
	}
}

func (k *keyReader) erase() {
	if k.masked || k.echo {
		fmt.Fprint(k.out, "\b \b")
	}
}
