package worktree

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

// mustGit runs a git command in dir and fails the test on error.
func mustGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// setupTestRepo creates a git repository on branch main with one commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	mustGit(t, dir, "init", "-b", "main")
	mustGit(t, dir, "config", "user.email", "test@example.com")
	mustGit(t, dir, "config", "user.name", "Test User")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("initial\n"), 0o644))
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "initial commit")

	return dir
}

func newTestManager(t *testing.T, repoPath string, maxConcurrent int) *Manager {
	t.Helper()
	return NewManager(&config.WorktreeConfig{
		RepoPath:      repoPath,
		MaxConcurrent: maxConcurrent,
	})
}

func TestManager_IsGitRepo(t *testing.T) {
	t.Run("git repository", func(t *testing.T) {
		m := newTestManager(t, setupTestRepo(t), 10)
		assert.True(t, m.IsGitRepo())
	})

	t.Run("plain directory", func(t *testing.T) {
		m := newTestManager(t, t.TempDir(), 10)
		assert.False(t, m.IsGitRepo())
	})
}

func TestManager_Create(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	cardID := "0d9b7c37-4f21-4e6a-9f3c-1a2b3c4d5e6f"
	ws, err := m.Create(ctx, cardID, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(repo, ".worktrees", "card-0d9b7c37"), ws.Path)
	assert.True(t, strings.HasPrefix(ws.Branch, "agent/0d9b7c37-"), "branch %q", ws.Branch)
	assert.Equal(t, "main", ws.Base)

	// The worktree is a real checkout of the base branch
	assert.DirExists(t, ws.Path)
	assert.FileExists(t, filepath.Join(ws.Path, "initial.txt"))

	active, err := m.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, ws.Branch, active[0].Branch)

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestManager_Create_ExplicitBase(t *testing.T) {
	repo := setupTestRepo(t)
	mustGit(t, repo, "branch", "develop")

	m := newTestManager(t, repo, 10)
	ws, err := m.Create(context.Background(), "card-base-test", "develop")
	require.NoError(t, err)
	assert.Equal(t, "develop", ws.Base)
}

func TestManager_Create_DegradedMode(t *testing.T) {
	dir := t.TempDir()
	m := newTestManager(t, dir, 10)

	ws, err := m.Create(context.Background(), "some-card-id", "")
	require.NoError(t, err)
	assert.Equal(t, dir, ws.Path)
	assert.Empty(t, ws.Branch)
	assert.Empty(t, ws.Base)

	count, err := m.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestManager_Create_Limit(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 1)
	ctx := context.Background()

	_, err := m.Create(ctx, "11111111-aaaa", "")
	require.NoError(t, err)

	_, err = m.Create(ctx, "22222222-bbbb", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWorktreeLimit), "got %v", err)

	// Only agent worktrees count: the main checkout never does
	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestManager_Create_ReplacesStale(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	cardID := "abcd1234-5678-90ef"
	first, err := m.Create(ctx, cardID, "")
	require.NoError(t, err)

	// Re-creating for the same card replaces the stale worktree and branch
	second, err := m.Create(ctx, cardID, "")
	require.NoError(t, err)
	assert.Equal(t, first.Path, second.Path)

	active, err := m.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.Branch, active[0].Branch)
}

func TestManager_Cleanup(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	ws, err := m.Create(ctx, "cleanup-card-1", "")
	require.NoError(t, err)

	require.NoError(t, m.Cleanup(ctx, ws.Path, ws.Branch, true))

	assert.NoDirExists(t, ws.Path)
	assert.False(t, m.branchExists(ctx, ws.Branch))

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Cleaning an already-removed worktree is a no-op
	require.NoError(t, m.Cleanup(ctx, ws.Path, ws.Branch, true))
}

func TestManager_Cleanup_KeepBranch(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	ws, err := m.Create(ctx, "keep-branch-1", "")
	require.NoError(t, err)

	require.NoError(t, m.Cleanup(ctx, ws.Path, ws.Branch, false))
	assert.True(t, m.branchExists(ctx, ws.Branch), "branch should survive when deleteBranch is false")
}

func TestManager_CleanupOrphans(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	liveCard := "11111111-live-card"
	deadCard := "22222222-dead-card"

	liveWS, err := m.Create(ctx, liveCard, "")
	require.NoError(t, err)
	deadWS, err := m.Create(ctx, deadCard, "")
	require.NoError(t, err)

	removed, err := m.CleanupOrphans(ctx, []string{liveCard})
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, deadWS.Branch, removed[0])

	active, err := m.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, liveWS.Branch, active[0].Branch)

	// Second pass finds nothing to remove
	removed, err = m.CleanupOrphans(ctx, []string{liveCard})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestManager_DefaultBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("existing main branch", func(t *testing.T) {
		repo := setupTestRepo(t)
		// Blank out init.defaultBranch so the probe falls through to the
		// branch-existence checks regardless of global git config.
		mustGit(t, repo, "config", "init.defaultBranch", "")

		m := newTestManager(t, repo, 10)
		assert.Equal(t, "main", m.DefaultBranch(ctx))
	})

	t.Run("init.defaultBranch config", func(t *testing.T) {
		repo := setupTestRepo(t)
		mustGit(t, repo, "config", "init.defaultBranch", "develop")

		m := newTestManager(t, repo, 10)
		assert.Equal(t, "develop", m.DefaultBranch(ctx))
	})

	t.Run("remote HEAD wins over config", func(t *testing.T) {
		repo := setupTestRepo(t)
		mustGit(t, repo, "config", "init.defaultBranch", "develop")
		mustGit(t, repo, "symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/trunk")

		m := newTestManager(t, repo, 10)
		assert.Equal(t, "trunk", m.DefaultBranch(ctx))
	})
}

func TestManager_RecoverState(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	// Build a real conflicted merge so MERGE_HEAD exists
	require.NoError(t, os.WriteFile(filepath.Join(repo, "conflict.txt"), []byte("base\n"), 0o644))
	mustGit(t, repo, "add", ".")
	mustGit(t, repo, "commit", "-m", "add conflict file")

	mustGit(t, repo, "checkout", "-b", "feature")
	require.NoError(t, os.WriteFile(filepath.Join(repo, "conflict.txt"), []byte("feature\n"), 0o644))
	mustGit(t, repo, "commit", "-am", "feature change")

	mustGit(t, repo, "checkout", "main")
	require.NoError(t, os.WriteFile(filepath.Join(repo, "conflict.txt"), []byte("main\n"), 0o644))
	mustGit(t, repo, "commit", "-am", "main change")

	merge := exec.Command("git", "merge", "feature")
	merge.Dir = repo
	require.Error(t, merge.Run(), "merge should conflict")
	require.FileExists(t, filepath.Join(repo, ".git", "MERGE_HEAD"))

	require.NoError(t, m.RecoverState(ctx))
	assert.NoFileExists(t, filepath.Join(repo, ".git", "MERGE_HEAD"))

	// Idempotent on a clean repository
	require.NoError(t, m.RecoverState(ctx))

	t.Run("non-git directory", func(t *testing.T) {
		m := newTestManager(t, t.TempDir(), 10)
		require.NoError(t, m.RecoverState(ctx))
	})
}

func TestManager_DiffStats(t *testing.T) {
	repo := setupTestRepo(t)
	m := newTestManager(t, repo, 10)
	ctx := context.Background()

	ws, err := m.Create(ctx, "diff-stats-card", "")
	require.NoError(t, err)

	t.Run("no commits yet", func(t *testing.T) {
		stats, err := m.DiffStats(ctx, ws.Path, ws.Base)
		require.NoError(t, err)
		assert.Zero(t, stats.FilesChanged)
		assert.Zero(t, stats.Insertions)
		assert.Zero(t, stats.Deletions)
	})

	t.Run("after a commit in the worktree", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(ws.Path, "new.txt"), []byte("a\nb\nc\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(ws.Path, "initial.txt"), []byte("changed\n"), 0o644))
		mustGit(t, ws.Path, "add", "-A")
		mustGit(t, ws.Path, "commit", "-m", "worktree change")

		stats, err := m.DiffStats(ctx, ws.Path, ws.Base)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.FilesChanged)
		assert.Equal(t, 4, stats.Insertions)
		assert.Equal(t, 1, stats.Deletions)
	})
}

func TestParseWorktrees(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []Worktree
	}{
		{
			name: "main checkout only",
			out:  "worktree /repo\nHEAD abc123\nbranch refs/heads/main\n",
			want: nil,
		},
		{
			name: "agent worktrees filtered from the rest",
			out: "worktree /repo\nHEAD abc\nbranch refs/heads/main\n\n" +
				"worktree /repo/.worktrees/card-11111111\nHEAD def\nbranch refs/heads/agent/11111111-1700000000\n\n" +
				"worktree /repo/other\nHEAD 123\nbranch refs/heads/feature/x\n",
			want: []Worktree{
				{Path: "/repo/.worktrees/card-11111111", Branch: "agent/11111111-1700000000"},
			},
		},
		{
			name: "detached worktree skipped",
			out: "worktree /repo\nHEAD abc\nbranch refs/heads/main\n\n" +
				"worktree /repo/.worktrees/card-22222222\nHEAD def\ndetached\n",
			want: nil,
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseWorktrees(tt.out))
		})
	}
}

func TestParseShortstat(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want [3]int // files, insertions, deletions
	}{
		{"full line", " 3 files changed, 10 insertions(+), 2 deletions(-)", [3]int{3, 10, 2}},
		{"single file", " 1 file changed, 1 insertion(+)", [3]int{1, 1, 0}},
		{"deletions only", " 2 files changed, 5 deletions(-)", [3]int{2, 0, 5}},
		{"empty diff", "", [3]int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := parseShortstat(tt.out)
			assert.Equal(t, tt.want[0], stats.FilesChanged)
			assert.Equal(t, tt.want[1], stats.Insertions)
			assert.Equal(t, tt.want[2], stats.Deletions)
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0d9b7c37", shortID("0d9b7c37-4f21-4e6a-9f3c-1a2b3c4d5e6f"))
	assert.Equal(t, "short", shortID("short"))
	assert.Equal(t, "12345678", shortID("12345678"))
}

func TestShortIDFromBranch(t *testing.T) {
	assert.Equal(t, "0d9b7c37", shortIDFromBranch("agent/0d9b7c37-1700000000"))
	assert.Equal(t, "abc", shortIDFromBranch("agent/abc"))
	assert.Empty(t, shortIDFromBranch("feature/x"))
	assert.Empty(t, shortIDFromBranch("main"))
}

func TestVCSError(t *testing.T) {
	underlying := errors.New("exit status 128")

	t.Run("with output", func(t *testing.T) {
		err := &VCSError{Verb: "worktree", Output: "fatal: not a git repository", Err: underlying}
		assert.Equal(t, "git worktree: exit status 128: fatal: not a git repository", err.Error())
		assert.True(t, errors.Is(err, underlying))
	})

	t.Run("without output", func(t *testing.T) {
		err := &VCSError{Verb: "branch", Err: underlying}
		assert.Equal(t, "git branch: exit status 128", err.Error())
	})

	t.Run("surfaces from a real failed command", func(t *testing.T) {
		m := newTestManager(t, t.TempDir(), 10)
		_, err := m.run(context.Background(), "worktree", "list", "--porcelain")
		require.Error(t, err)

		var vcsErr *VCSError
		require.True(t, errors.As(err, &vcsErr))
		assert.Equal(t, "worktree", vcsErr.Verb)
		assert.NotEmpty(t, vcsErr.Output)
	})
}
