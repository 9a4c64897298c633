package agent

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// writeStubCLI writes a shell script standing in for the gemini binary.
func writeStubCLI(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub CLI scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "gemini")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func collect(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestGeminiAdapterStreamsAndCompletes(t *testing.T) {
	cli := writeStubCLI(t, `echo "line one"
echo ""
echo "line two"
`)
	a := NewGeminiAdapter(cli)

	events, err := a.Run(context.Background(), Request{
		Prompt:       "/plan Add login: build the login page",
		Workdir:      t.TempDir(),
		ModelProfile: "gemini-3-pro",
	})
	require.NoError(t, err)

	got := collect(t, events)
	require.Len(t, got, 3)
	assert.Equal(t, TextEvent{Content: "line one"}, got[0])
	assert.Equal(t, TextEvent{Content: "line two"}, got[1])

	result, ok := got[2].(ResultEvent)
	require.True(t, ok, "last event should be a result")
	assert.Contains(t, result.Result, "line one")
	assert.Contains(t, result.Result, "line two")
	assert.Equal(t, models.Usage{}, result.Usage)
}

func TestGeminiAdapterReportsCLIError(t *testing.T) {
	cli := writeStubCLI(t, `echo "quota exceeded" >&2
exit 1
`)
	a := NewGeminiAdapter(cli)

	events, err := a.Run(context.Background(), Request{
		Prompt:       "/implement Add login",
		Workdir:      t.TempDir(),
		ModelProfile: "gemini-3-pro",
	})
	require.NoError(t, err)

	got := collect(t, events)
	require.NotEmpty(t, got)
	errEv, ok := got[len(got)-1].(ErrorEvent)
	require.True(t, ok, "last event should be an error")
	assert.Contains(t, errEv.Message, "Gemini CLI error:")
	assert.Contains(t, errEv.Message, "quota exceeded")
}

func TestGeminiAdapterCancellation(t *testing.T) {
	cli := writeStubCLI(t, `sleep 30
`)
	a := NewGeminiAdapter(cli)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := a.Run(ctx, Request{
		Prompt:       "/test-implementation Add login",
		Workdir:      t.TempDir(),
		ModelProfile: "gemini-3-flash",
	})
	require.NoError(t, err)
	cancel()

	got := collect(t, events)
	require.NotEmpty(t, got)
	errEv, ok := got[len(got)-1].(ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, "cancelled", errEv.Message)
}

func TestGeminiAdapterMasksSecrets(t *testing.T) {
	cli := writeStubCLI(t, `echo "export ANTHROPIC_API_KEY=sk-ant-REDACTED"
`)
	a := NewGeminiAdapter(cli)

	events, err := a.Run(context.Background(), Request{
		Prompt:       "/review Add login",
		Workdir:      t.TempDir(),
		ModelProfile: "gemini-3-pro",
	})
	require.NoError(t, err)

	got := collect(t, events)
	require.NotEmpty(t, got)
	text, ok := got[0].(TextEvent)
	require.True(t, ok)
	assert.NotContains(t, text.Content, "sk-ant-REDACTED")
}

func TestCLIModel(t *testing.T) {
	assert.Equal(t, "gemini-3-pro-preview", CLIModel("gemini-3-pro"))
	assert.Equal(t, "gemini-3-flash-preview", CLIModel("gemini-3-flash"))
	assert.Equal(t, "gemini-3-pro-preview", CLIModel("gemini-2-unknown"))
}

func TestBuildCLIPromptIncludesBrief(t *testing.T) {
	p := buildCLIPrompt("/tmp/wt", "/plan Add login: build the login page")
	assert.Contains(t, p, "Current working directory: /tmp/wt")
	assert.Contains(t, p, "specs/")
	assert.Contains(t, p, "/plan Add login: build the login page")

	unknown := buildCLIPrompt("/tmp/wt", "just a question")
	assert.Contains(t, unknown, "just a question")
	assert.NotContains(t, unknown, "specs/")
}
