// Package agent runs coding-agent stages against LLM back-ends.
//
// Two back-ends exist: a streaming Anthropic adapter with local tool
// execution (the primary), and a Gemini CLI subprocess adapter (the
// secondary). A Router picks one from the model profile prefix. Both
// emit the same ordered Event stream so the workflow engine never
// cares which back-end ran a stage.
package agent

import (
	"context"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// EventType discriminates the Event variants.
type EventType string

const (
	EventTypeText    EventType = "text"
	EventTypeToolUse EventType = "tool_use"
	EventTypeResult  EventType = "result"
	EventTypeError   EventType = "error"
)

// Event is one item of an agent run's ordered stream. It is a sealed
// interface: the only implementations are TextEvent, ToolUseEvent,
// ResultEvent and ErrorEvent. Consumers type-switch on the variant.
type Event interface {
	// eventType is unexported so only this package can implement Event.
	eventType() EventType
}

// TextEvent carries a fragment of the model's prose output.
type TextEvent struct {
	Content string
}

// ToolUseEvent reports one tool invocation the model made.
type ToolUseEvent struct {
	Name  string
	Input map[string]interface{}
}

// ResultEvent terminates a successful run with the final text and the
// run's aggregate usage.
type ResultEvent struct {
	Result string
	Usage  models.Usage
}

// ErrorEvent terminates a failed run.
type ErrorEvent struct {
	Message string
}

func (TextEvent) eventType() EventType    { return EventTypeText }
func (ToolUseEvent) eventType() EventType { return EventTypeToolUse }
func (ResultEvent) eventType() EventType  { return EventTypeResult }
func (ErrorEvent) eventType() EventType   { return EventTypeError }

// Request describes one stage run handed to an adapter.
type Request struct {
	// Prompt is the full stage prompt, slash command included.
	Prompt string

	// Workdir is the card's worktree; tools and subprocesses are
	// confined to it.
	Workdir string

	// ModelProfile is the card's model selection, e.g. "opus-4.5" or
	// "gemini-3-pro". The Router resolves it to a back-end.
	ModelProfile string

	// AllowedTools restricts the primary back-end's tool surface.
	// Empty means all tools.
	AllowedTools []string
}

// Adapter runs one stage and streams its events. The returned channel
// is closed after a terminal ResultEvent or ErrorEvent. Cancelling ctx
// aborts the run; the adapter still terminates the stream.
type Adapter interface {
	Run(ctx context.Context, req Request) (<-chan Event, error)
}
