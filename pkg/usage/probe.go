package usage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout bounds the external probe; a wedged probe must not stall
// the orchestrator tick.
const probeTimeout = 10 * time.Second

// probeOutput is the stdout contract of USAGE_PROBE_COMMAND.
type probeOutput struct {
	SessionUsedPercent float64 `json:"sessionUsedPercent"`
	DailyUsedPercent   float64 `json:"dailyUsedPercent"`
}

// runProbe executes the probe command through the shell and parses its
// stdout.
func runProbe(ctx context.Context, command string) (*probeOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("usage probe timed out after %s", probeTimeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("usage probe failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("usage probe failed: %w", err)
	}

	var parsed probeOutput
	if err := json.Unmarshal(bytes.TrimSpace(out), &parsed); err != nil {
		return nil, fmt.Errorf("parse usage probe output: %w", err)
	}
	return &parsed, nil
}
