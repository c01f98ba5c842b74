package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalContext is cancelled by SIGINT or SIGTERM and records which of the
// two arrived, so the command can exit with the matching status.
type SignalContext struct {
	context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext starts listening for interrupts until Stop is called.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.record(sig)
		case <-ctx.Done():
		}
	}()
	return sc
}

func (sc *SignalContext) record(sig os.Signal) {
	sc.mu.Lock()
	sc.sig = sig
	sc.mu.Unlock()
	sc.cancel()
}

// Stop releases the signal handler and cancels the context.
func (sc *SignalContext) Stop() {
	sc.cancel()
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// ExitError reports that a command was stopped by a signal.
type ExitError struct {
	Signal os.Signal
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("interrupted by %v", e.Signal)
}

// Code is the conventional shell status: 128 plus the signal number.
func (e *ExitError) Code() int {
	if e.Signal == syscall.SIGTERM {
		return 128 + int(syscall.SIGTERM)
	}
	return 128 + int(syscall.SIGINT)
}

// signalOf returns the signal recorded on ctx, if ctx is a SignalContext.
func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}
