package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolExecutorWriteReadEdit(t *testing.T) {
	dir := t.TempDir()
	ex := newToolExecutor(dir)
	ctx := context.Background()

	out, err := ex.Execute(ctx, ToolWriteFile, map[string]interface{}{
		"path":    "specs/feature.md",
		"content": "# Feature\n\nplan here\n",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "specs/feature.md")

	out, err = ex.Execute(ctx, ToolReadFile, map[string]interface{}{"path": "specs/feature.md"})
	require.NoError(t, err)
	assert.Contains(t, out, "plan here")

	_, err = ex.Execute(ctx, ToolEditFile, map[string]interface{}{
		"path":     "specs/feature.md",
		"old_text": "plan here",
		"new_text": "revised plan",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "specs", "feature.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "revised plan")
}

func TestToolExecutorEditMissingText(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	ex := newToolExecutor(dir)

	_, err := ex.Execute(context.Background(), ToolEditFile, map[string]interface{}{
		"path":     "a.txt",
		"old_text": "absent",
		"new_text": "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old_text not found")
}

func TestToolExecutorListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("readme"), 0o644))

	ex := newToolExecutor(dir)
	out, err := ex.Execute(context.Background(), ToolListFiles, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, filepath.Join("src", "main.go"))
	assert.NotContains(t, out, "HEAD")
}

func TestToolExecutorRejectsEscapes(t *testing.T) {
	ex := newToolExecutor(t.TempDir())
	ctx := context.Background()

	_, err := ex.Execute(ctx, ToolReadFile, map[string]interface{}{"path": "../outside.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the working directory")

	_, err = ex.Execute(ctx, ToolWriteFile, map[string]interface{}{"path": "/etc/passwd", "content": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be relative")
}

func TestToolExecutorBash(t *testing.T) {
	ex := newToolExecutor(t.TempDir())

	out, err := ex.Execute(context.Background(), ToolBash, map[string]interface{}{"command": "echo tool-ok"})
	require.NoError(t, err)
	assert.Contains(t, out, "tool-ok")

	_, err = ex.Execute(context.Background(), ToolBash, map[string]interface{}{"command": "exit 3"})
	require.Error(t, err)
}

func TestToolExecutorUnknownTool(t *testing.T) {
	ex := newToolExecutor(t.TempDir())
	_, err := ex.Execute(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestToolParamsFiltering(t *testing.T) {
	all := toolParams(nil)
	assert.Len(t, all, len(toolDefs))

	subset := toolParams([]string{ToolReadFile, ToolBash})
	assert.Len(t, subset, 2)
}
