// Package worktree isolates each card's agent run in its own git worktree
// under <repo>/.worktrees, so parallel cards never step on each other's
// checkouts. When the project root is not a git repository the manager
// degrades gracefully: agents share the root directly and no branches are
// created.
package worktree

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// branchPrefix marks a branch (and its worktree) as agent-managed. Only
// prefixed worktrees count against the limit or are ever cleaned up.
const branchPrefix = "agent/"

// Workspace locates a card's isolated checkout. Branch is empty in degraded
// (non-git) mode, where Path is the project root.
type Workspace struct {
	Path   string
	Branch string
	Base   string
}

// Worktree is one agent-managed checkout parsed from `git worktree list`.
type Worktree struct {
	Path   string
	Branch string
}

// Manager creates and disposes per-card git worktrees. All git invocations
// are serialized through a single mutex: git locks the repository for
// mutating commands, and interleaving worktree add/remove from concurrent
// cards produces spurious "index.lock exists" failures.
type Manager struct {
	repoPath      string
	worktreesDir  string
	maxConcurrent int

	mu sync.Mutex
}

// NewManager creates a worktree manager rooted at cfg.RepoPath.
func NewManager(cfg *config.WorktreeConfig) *Manager {
	return &Manager{
		repoPath:      cfg.RepoPath,
		worktreesDir:  filepath.Join(cfg.RepoPath, ".worktrees"),
		maxConcurrent: cfg.MaxConcurrent,
	}
}

// RepoPath returns the project root the manager operates on.
func (m *Manager) RepoPath() string {
	return m.repoPath
}

// MaxConcurrent returns the configured worktree budget.
func (m *Manager) MaxConcurrent() int {
	return m.maxConcurrent
}

// IsGitRepo reports whether the project root is a git repository.
func (m *Manager) IsGitRepo() bool {
	_, err := os.Stat(filepath.Join(m.repoPath, ".git"))
	return err == nil
}

// run executes a git command in the repository root.
func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	return m.runIn(ctx, m.repoPath, args...)
}

// runIn executes a git command in dir, holding the manager mutex so at most
// one git command touches the repository at a time.
func (m *Manager) runIn(ctx context.Context, dir string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		verb := "git"
		if len(args) > 0 {
			verb = args[0]
		}
		return output, &VCSError{Verb: verb, Output: output, Err: err}
	}
	return output, nil
}

// RecoverState aborts any merge or rebase left half-finished by a previous
// process (crash mid-agent-run). Idempotent; meant to run once at startup
// before any worktree operation.
func (m *Manager) RecoverState(ctx context.Context) error {
	if !m.IsGitRepo() {
		return nil
	}

	gitDir := filepath.Join(m.repoPath, ".git")

	if _, err := os.Stat(filepath.Join(gitDir, "MERGE_HEAD")); err == nil {
		if _, err := m.run(ctx, "merge", "--abort"); err != nil {
			return fmt.Errorf("failed to abort in-progress merge: %w", err)
		}
		slog.Info("Aborted in-progress merge during state recovery")
	}

	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(gitDir, dir)); err == nil {
			if _, err := m.run(ctx, "rebase", "--abort"); err != nil {
				return fmt.Errorf("failed to abort in-progress rebase: %w", err)
			}
			slog.Info("Aborted in-progress rebase during state recovery")
			break
		}
	}

	return nil
}

// DefaultBranch detects the repository's main branch: remote HEAD, then
// init.defaultBranch, then an existing main/master branch, then "main".
func (m *Manager) DefaultBranch(ctx context.Context) string {
	if out, err := m.run(ctx, "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil && out != "" {
		return strings.TrimPrefix(out, "refs/remotes/origin/")
	}

	if out, err := m.run(ctx, "config", "init.defaultBranch"); err == nil && out != "" {
		return out
	}

	for _, name := range []string{"main", "master"} {
		if m.branchExists(ctx, name) {
			return name
		}
	}

	return "main"
}

func (m *Manager) branchExists(ctx context.Context, name string) bool {
	_, err := m.run(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// shortID derives the directory/branch fragment from a card id.
func shortID(cardID string) string {
	if len(cardID) > 8 {
		return cardID[:8]
	}
	return cardID
}

func (m *Manager) branchName(cardID string) string {
	return fmt.Sprintf("%s%s-%d", branchPrefix, shortID(cardID), time.Now().Unix())
}

func (m *Manager) worktreePath(cardID string) string {
	return filepath.Join(m.worktreesDir, "card-"+shortID(cardID))
}

// Create makes an isolated worktree for a card on a fresh agent branch cut
// from baseBranch (auto-detected when empty). A stale worktree at the target
// path and leftover agent branches for the same card are removed first. If
// worktree creation fails after the branch was cut, the branch is deleted
// before returning, so a failed Create never leaves partial state.
//
// In degraded (non-git) mode the returned workspace points at the project
// root with an empty branch.
func (m *Manager) Create(ctx context.Context, cardID, baseBranch string) (*Workspace, error) {
	if !m.IsGitRepo() {
		slog.Warn("Project is not a git repository; card will run in the project root without isolation",
			"card_id", cardID)
		return &Workspace{Path: m.repoPath}, nil
	}

	active, err := m.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) >= m.maxConcurrent {
		return nil, fmt.Errorf("%w: %d of %d agent worktrees in use", ErrWorktreeLimit, len(active), m.maxConcurrent)
	}

	if err := os.MkdirAll(m.worktreesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create worktrees directory: %w", err)
	}

	base := baseBranch
	if base == "" {
		base = m.DefaultBranch(ctx)
	}

	branch := m.branchName(cardID)
	path := m.worktreePath(cardID)

	// A stale worktree at the target path blocks `worktree add`.
	if _, err := os.Stat(path); err == nil {
		if _, err := m.run(ctx, "worktree", "remove", path, "--force"); err != nil {
			slog.Warn("Failed to remove stale worktree", "path", path, "error", err)
		}
	}
	// So does a dangling branch left by an earlier run of the same card.
	m.deleteStaleBranches(ctx, shortID(cardID))

	if _, err := m.run(ctx, "worktree", "add", path, "-b", branch, base); err != nil {
		// worktree add can cut the branch and then fail at checkout.
		if m.branchExists(ctx, branch) {
			if _, delErr := m.run(ctx, "branch", "-D", branch); delErr != nil {
				slog.Warn("Failed to delete branch after worktree creation failure",
					"branch", branch, "error", delErr)
			}
		}
		return nil, err
	}

	slog.Info("Created worktree", "card_id", cardID, "path", path, "branch", branch, "base", base)
	return &Workspace{Path: path, Branch: branch, Base: base}, nil
}

// deleteStaleBranches removes leftover agent branches carrying the card's
// short id. Branch names embed a creation timestamp, so a retried card never
// reuses the previous run's branch name.
func (m *Manager) deleteStaleBranches(ctx context.Context, short string) {
	out, err := m.run(ctx, "branch", "--list", branchPrefix+short+"-*", "--format=%(refname:short)")
	if err != nil || out == "" {
		return
	}
	for _, branch := range strings.Split(out, "\n") {
		branch = strings.TrimSpace(branch)
		if branch == "" {
			continue
		}
		if _, err := m.run(ctx, "branch", "-D", branch); err != nil {
			slog.Warn("Failed to delete stale branch", "branch", branch, "error", err)
		}
	}
}

// ListActive returns the agent-managed worktrees currently registered.
func (m *Manager) ListActive(ctx context.Context) ([]Worktree, error) {
	out, err := m.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktrees(out), nil
}

// parseWorktrees extracts agent-prefixed entries from porcelain output.
// Entries are blocks of "worktree <path>" / "branch refs/heads/<name>" lines;
// detached or unprefixed checkouts (including the main worktree) are skipped.
func parseWorktrees(out string) []Worktree {
	var (
		result  []Worktree
		current Worktree
	)
	flush := func() {
		if current.Path != "" && strings.HasPrefix(current.Branch, branchPrefix) {
			result = append(result, current)
		}
		current = Worktree{}
	}
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		}
	}
	flush()
	return result
}

// Count returns how many agent worktrees exist, for dispatch back-pressure.
func (m *Manager) Count(ctx context.Context) (int, error) {
	if !m.IsGitRepo() {
		return 0, nil
	}
	active, err := m.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

// Cleanup removes a card's worktree and, when deleteBranch is set, its
// branch. Branch deletion failures are logged, not fatal: the worktree is
// the resource that counts against the limit.
func (m *Manager) Cleanup(ctx context.Context, path, branch string, deleteBranch bool) error {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := m.run(ctx, "worktree", "remove", path, "--force"); err != nil {
				return err
			}
		}
	}

	if deleteBranch && branch != "" {
		if _, err := m.run(ctx, "branch", "-D", branch); err != nil {
			slog.Warn("Failed to delete branch", "branch", branch, "error", err)
		}
	}

	return nil
}

// CleanupOrphans removes agent worktrees whose embedded short id matches no
// live card, returning the branches it removed. Card ids are matched by
// prefix because the branch only carries the first 8 characters.
func (m *Manager) CleanupOrphans(ctx context.Context, activeCardIDs []string) ([]string, error) {
	if !m.IsGitRepo() {
		return nil, nil
	}

	worktrees, err := m.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, wt := range worktrees {
		short := shortIDFromBranch(wt.Branch)
		if short == "" {
			continue
		}

		live := false
		for _, id := range activeCardIDs {
			if strings.HasPrefix(id, short) {
				live = true
				break
			}
		}
		if live {
			continue
		}

		if _, err := m.run(ctx, "worktree", "remove", wt.Path, "--force"); err != nil {
			slog.Warn("Failed to remove orphan worktree", "path", wt.Path, "error", err)
			continue
		}
		if _, err := m.run(ctx, "branch", "-D", wt.Branch); err != nil {
			slog.Warn("Failed to delete orphan branch", "branch", wt.Branch, "error", err)
		}

		slog.Info("Removed orphan worktree", "path", wt.Path, "branch", wt.Branch)
		removed = append(removed, wt.Branch)
	}

	return removed, nil
}

// shortIDFromBranch extracts the card short id from agent/<short>-<timestamp>.
func shortIDFromBranch(branch string) string {
	rest := strings.TrimPrefix(branch, branchPrefix)
	if rest == branch {
		return ""
	}
	if i := strings.IndexByte(rest, '-'); i > 0 {
		return rest[:i]
	}
	return rest
}

// DiffStats summarises the changes a card's branch carries over its base,
// from `git diff --shortstat <base>...HEAD` inside the worktree.
func (m *Manager) DiffStats(ctx context.Context, worktreePath, baseBranch string) (*models.DiffStats, error) {
	out, err := m.runIn(ctx, worktreePath, "diff", "--shortstat", baseBranch+"...HEAD")
	if err != nil {
		return nil, err
	}
	return parseShortstat(out), nil
}

// parseShortstat reads git's "N files changed, N insertions(+), N deletions(-)"
// summary. Absent segments (e.g. a pure deletion) stay zero; an empty diff
// yields all-zero stats.
func parseShortstat(out string) *models.DiffStats {
	stats := &models.DiffStats{}
	for _, part := range strings.Split(strings.TrimSpace(out), ",") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(fields[1], "file"):
			stats.FilesChanged = n
		case strings.HasPrefix(fields[1], "insertion"):
			stats.Insertions = n
		case strings.HasPrefix(fields[1], "deletion"):
			stats.Deletions = n
		}
	}
	return stats
}
