//go:build unix

package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext_CancelledBySIGINT(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	select {
	case <-sc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGINT")
	}
	assert.Equal(t, syscall.SIGINT, sc.Signal())
}
