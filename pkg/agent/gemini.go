package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/codeready-toolchain/cardsmith/pkg/masking"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// stderrTailLimit bounds how much captured stderr goes into the error
// event.
const stderrTailLimit = 4 * 1024

// geminiModelMap translates model profiles to CLI model names.
var geminiModelMap = map[string]string{
	"gemini-3-pro":   "gemini-3-pro-preview",
	"gemini-3-flash": "gemini-3-flash-preview",
}

const geminiDefaultCLIModel = "gemini-3-pro-preview"

// GeminiAdapter is the secondary back-end: one CLI subprocess per
// stage run, auto-approved, streaming stdout lines as text events.
// The CLI executes its own tools, so no ToolUseEvents are produced
// and usage stays zero.
type GeminiAdapter struct {
	cliPath string
}

// NewGeminiAdapter builds the CLI adapter. cliPath defaults to
// "gemini" on PATH.
func NewGeminiAdapter(cliPath string) *GeminiAdapter {
	if cliPath == "" {
		cliPath = "gemini"
	}
	return &GeminiAdapter{cliPath: cliPath}
}

// CLIModel maps a model profile to the CLI model name.
func CLIModel(profile string) string {
	if m, ok := geminiModelMap[profile]; ok {
		return m
	}
	return geminiDefaultCLIModel
}

// Run launches the CLI and streams its output.
func (a *GeminiAdapter) Run(ctx context.Context, req Request) (<-chan Event, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if req.Workdir == "" {
		return nil, fmt.Errorf("workdir is required")
	}

	prompt := buildCLIPrompt(req.Workdir, req.Prompt)
	cmd := exec.CommandContext(ctx, a.cliPath,
		"-y",
		"-p", prompt,
		"--model", CLIModel(req.ModelProfile),
	)
	cmd.Dir = req.Workdir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", a.cliPath, err)
	}

	events := make(chan Event, 32)
	go func() {
		defer close(events)

		var result strings.Builder
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			masked := masking.MaskSecrets(line)
			result.WriteString(masked)
			result.WriteString("\n")
			events <- TextEvent{Content: masked}
		}

		err := cmd.Wait()
		if ctx.Err() != nil {
			events <- ErrorEvent{Message: "cancelled"}
			return
		}
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				events <- ErrorEvent{Message: "Gemini CLI error: " + tail(masking.MaskSecrets(stderr.String()), stderrTailLimit)}
			} else {
				events <- ErrorEvent{Message: err.Error()}
			}
			return
		}
		events <- ResultEvent{Result: result.String(), Usage: models.Usage{}}
	}()
	return events, nil
}

func tail(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
