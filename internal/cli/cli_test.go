package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inquire/pkg/prompt"
)

func TestRunAsk_ConvertsAnswer(t *testing.T) {
	var out, errOut bytes.Buffer
	err := RunAsk(context.Background(), strings.NewReader("42\n"), &out, &errOut, AskOptions{
		Message: "Port?",
		In:      "1-100",
		Convert: "int",
	})
	require.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
	assert.Contains(t, errOut.String(), "Port?")
}

func TestRunAsk_RetriesUntilValid(t *testing.T) {
	var out, errOut bytes.Buffer
	err := RunAsk(context.Background(), strings.NewReader("abc\n5\n"), &out, &errOut, AskOptions{
		Message: "Number?",
		In:      "1-10",
		Retry:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "5\n", out.String())
	assert.Contains(t, errOut.String(), "Please try again")
}

func TestRunAsk_DefaultFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	err := RunAsk(context.Background(), strings.NewReader("\n"), &out, &errOut, AskOptions{
		Message:    "Name?",
		Default:    "guest",
		HasDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "guest\n", out.String())
}

func TestRunAsk_InterruptedIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := RunAsk(ctx, strings.NewReader("x\n"), &out, &errOut, AskOptions{Message: "Name?"})
	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunAsk_BadLogLevel(t *testing.T) {
	err := RunAsk(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, AskOptions{
		Message:  "Name?",
		LogLevel: "loud",
	})
	assert.Error(t, err)
}

func writeQuestionnaire(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "q.yaml")
	data := `title: Setup
questions:
  - name: host
    message: Host?
    default: localhost
  - name: port
    message: Port?
    in: 1-65535
    convert: int
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRunQuestionnaire_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	err := RunQuestionnaire(context.Background(), strings.NewReader("\n8080\n"), &out, &errOut, RunOptions{
		Path: writeQuestionnaire(t),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"host":"localhost","port":8080}`, out.String())
	assert.Contains(t, errOut.String(), ">>> Setup")
}

func TestRunQuestionnaire_YAML(t *testing.T) {
	var out bytes.Buffer
	err := RunQuestionnaire(context.Background(), strings.NewReader("db\n5432\n"), &out, &bytes.Buffer{}, RunOptions{
		Path:   writeQuestionnaire(t),
		Format: "yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "host: db\nport: 5432\n", out.String())
}

func TestRunQuestionnaire_UnknownFormat(t *testing.T) {
	err := RunQuestionnaire(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, RunOptions{
		Path:   writeQuestionnaire(t),
		Format: "toml",
	})
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRunQuestionnaire_MissingFile(t *testing.T) {
	err := RunQuestionnaire(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, RunOptions{
		Path: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	assert.Error(t, err)
}

func TestHandleExecutionError(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Stop()
	sc.record(syscall.SIGTERM)

	var exit *ExitError
	err := handleExecutionError(sc, &bytes.Buffer{}, context.Canceled)
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, syscall.SIGTERM, exit.Signal)
	assert.Equal(t, 143, exit.Code())

	err = handleExecutionError(context.Background(), &bytes.Buffer{}, fmt.Errorf("name: %w", prompt.ErrInterrupted))
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 130, exit.Code())

	assert.NoError(t, handleExecutionError(context.Background(), &bytes.Buffer{}, context.Canceled))

	plain := errors.New("boom")
	assert.Same(t, plain, handleExecutionError(context.Background(), &bytes.Buffer{}, plain))
}

func TestSignalContext_RecordsSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Stop()
	assert.Nil(t, sc.Signal())

	sc.record(os.Interrupt)
	<-sc.Done()
	assert.Equal(t, os.Interrupt, sc.Signal())
	assert.ErrorIs(t, sc.Err(), context.Canceled)
}
