package agent

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
)

// Tool names exposed to the primary back-end.
const (
	ToolReadFile  = "read_file"
	ToolWriteFile = "write_file"
	ToolEditFile  = "edit_file"
	ToolListFiles = "list_files"
	ToolBash      = "bash"
)

const (
	// toolOutputLimit truncates tool results before they re-enter the
	// model context.
	toolOutputLimit = 16 * 1024

	// bashTimeout bounds one bash invocation inside a stage.
	bashTimeout = 5 * time.Minute
)

type toolDef struct {
	name        string
	description string
	schema      map[string]interface{}
}

var toolDefs = []toolDef{
	{
		name:        ToolReadFile,
		description: "Read a file relative to the working directory and return its contents.",
		schema: objectSchema(map[string]interface{}{
			"path": stringProp("Relative path of the file to read"),
		}, "path"),
	},
	{
		name:        ToolWriteFile,
		description: "Create or overwrite a file relative to the working directory.",
		schema: objectSchema(map[string]interface{}{
			"path":    stringProp("Relative path of the file to write"),
			"content": stringProp("Full file contents"),
		}, "path", "content"),
	},
	{
		name:        ToolEditFile,
		description: "Replace the first occurrence of old_text with new_text in a file.",
		schema: objectSchema(map[string]interface{}{
			"path":     stringProp("Relative path of the file to edit"),
			"old_text": stringProp("Exact text to replace"),
			"new_text": stringProp("Replacement text"),
		}, "path", "old_text", "new_text"),
	},
	{
		name:        ToolListFiles,
		description: "List files under a directory relative to the working directory.",
		schema: objectSchema(map[string]interface{}{
			"path": stringProp("Relative directory to list; defaults to the working directory root"),
		}),
	},
	{
		name:        ToolBash,
		description: "Run a shell command in the working directory and return combined output.",
		schema: objectSchema(map[string]interface{}{
			"command": stringProp("Shell command to run"),
		}, "command"),
	},
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{"properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

// toolParams builds the API tool list, filtered to allowed names.
// Empty allowed means every tool.
func toolParams(allowed []string) []sdk.ToolUnionParam {
	allowedSet := map[string]bool{}
	for _, name := range allowed {
		allowedSet[name] = true
	}
	var out []sdk.ToolUnionParam
	for _, def := range toolDefs {
		if len(allowedSet) > 0 && !allowedSet[def.name] {
			continue
		}
		u := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: def.schema}, def.name)
		u.OfTool.Description = sdk.String(def.description)
		out = append(out, u)
	}
	return out
}

// toolExecutor runs tool invocations confined to one worktree.
type toolExecutor struct {
	workdir string
}

func newToolExecutor(workdir string) *toolExecutor {
	return &toolExecutor{workdir: workdir}
}

// Execute dispatches one tool call. The string result goes back to the
// model as the tool_result block; err marks the result as an error.
func (t *toolExecutor) Execute(ctx context.Context, name string, input map[string]interface{}) (string, error) {
	switch name {
	case ToolReadFile:
		return t.readFile(stringArg(input, "path"))
	case ToolWriteFile:
		return t.writeFile(stringArg(input, "path"), stringArg(input, "content"))
	case ToolEditFile:
		return t.editFile(stringArg(input, "path"), stringArg(input, "old_text"), stringArg(input, "new_text"))
	case ToolListFiles:
		return t.listFiles(stringArg(input, "path"))
	case ToolBash:
		return t.bash(ctx, stringArg(input, "command"))
	}
	return "", fmt.Errorf("unknown tool %q", name)
}

// resolve joins a relative path against the worktree and rejects any
// path that escapes it.
func (t *toolExecutor) resolve(rel string) (string, error) {
	if rel == "" {
		return t.workdir, nil
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative to the working directory", rel)
	}
	abs := filepath.Clean(filepath.Join(t.workdir, rel))
	root := filepath.Clean(t.workdir)
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the working directory", rel)
	}
	return abs, nil
}

func (t *toolExecutor) readFile(rel string) (string, error) {
	abs, err := t.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}
	return truncate(string(data), toolOutputLimit), nil
}

func (t *toolExecutor) writeFile(rel, content string) (string, error) {
	abs, err := t.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %d bytes to %s", len(content), rel), nil
}

func (t *toolExecutor) editFile(rel, oldText, newText string) (string, error) {
	abs, err := t.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}
	content := string(data)
	if !strings.Contains(content, oldText) {
		return "", fmt.Errorf("old_text not found in %s", rel)
	}
	content = strings.Replace(content, oldText, newText, 1)
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("edited %s", rel), nil
}

func (t *toolExecutor) listFiles(rel string) (string, error) {
	abs, err := t.resolve(rel)
	if err != nil {
		return "", err
	}
	var names []string
	err = filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		relPath, err := filepath.Rel(t.workdir, path)
		if err != nil {
			return err
		}
		names = append(names, relPath)
		return nil
	})
	if err != nil {
		return "", err
	}
	sort.Strings(names)
	return truncate(strings.Join(names, "\n"), toolOutputLimit), nil
}

func (t *toolExecutor) bash(ctx context.Context, command string) (string, error) {
	if command == "" {
		return "", fmt.Errorf("bash requires a command")
	}
	ctx, cancel := context.WithTimeout(ctx, bashTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = t.workdir
	out, err := cmd.CombinedOutput()
	result := truncate(string(out), toolOutputLimit)
	if err != nil {
		if result == "" {
			return "", err
		}
		return "", fmt.Errorf("%s: %w", result, err)
	}
	return result, nil
}

func stringArg(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... (output truncated)"
}
