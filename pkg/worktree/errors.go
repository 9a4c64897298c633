package worktree

import (
	"errors"
	"fmt"
)

// ErrWorktreeLimit is returned by Create when the configured number of
// concurrent agent worktrees is already in use.
var ErrWorktreeLimit = errors.New("worktree limit reached")

// VCSError reports a failed git command with its combined output, so callers
// see what git actually said instead of a bare exit status.
type VCSError struct {
	// Verb is the git subcommand that failed (worktree, branch, diff, ...).
	Verb string
	// Output is the command's combined stdout+stderr, trimmed.
	Output string
	// Err is the underlying exec error.
	Err error
}

func (e *VCSError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: %v", e.Verb, e.Err)
	}
	return fmt.Sprintf("git %s: %v: %s", e.Verb, e.Err, e.Output)
}

func (e *VCSError) Unwrap() error {
	return e.Err
}
