package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// maxCompletionTokens caps one streamed completion turn.
const maxCompletionTokens = 8192

// MessagesClient is the subset of the Anthropic SDK used by the
// adapter. *sdk.MessageService satisfies it; tests pass a fake.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// NewMessagesClient builds the real SDK-backed messages client.
func NewMessagesClient(apiKey string) MessagesClient {
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return &ac.Messages
}

// ClaudeAdapter is the primary back-end: a streamed agentic loop over
// the Anthropic Messages API with local tool execution between turns.
type ClaudeAdapter struct {
	msg      MessagesClient
	maxTurns int
}

// NewClaudeAdapter builds the primary adapter. maxTurns bounds the
// tool-use loop of one stage run.
func NewClaudeAdapter(msg MessagesClient, maxTurns int) *ClaudeAdapter {
	if maxTurns <= 0 {
		maxTurns = 50
	}
	return &ClaudeAdapter{msg: msg, maxTurns: maxTurns}
}

// ResolveModelID maps a model profile to the API model identifier,
// e.g. "opus-4.5" -> "claude-opus-4-5".
func ResolveModelID(profile string) string {
	return "claude-" + strings.ReplaceAll(profile, ".", "-")
}

// Run starts the agentic loop and streams its events. The channel is
// closed after the terminal event.
func (a *ClaudeAdapter) Run(ctx context.Context, req Request) (<-chan Event, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if req.Workdir == "" {
		return nil, fmt.Errorf("workdir is required")
	}
	events := make(chan Event, 32)
	go func() {
		defer close(events)
		a.loop(ctx, req, events)
	}()
	return events, nil
}

// toolCall is one accumulated tool_use block from a streamed turn.
type toolCall struct {
	id        string
	name      string
	fragments []string
	input     map[string]interface{}
}

func (tc *toolCall) decode() {
	raw := strings.Join(tc.fragments, "")
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), &tc.input); err != nil {
		tc.input = map[string]interface{}{}
	}
}

func (a *ClaudeAdapter) loop(ctx context.Context, req Request, events chan<- Event) {
	executor := newToolExecutor(req.Workdir)
	modelID := ResolveModelID(req.ModelProfile)
	messages := []sdk.MessageParam{
		sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
	}
	apiTools := toolParams(req.AllowedTools)

	var total models.Usage

	for turn := 0; turn < a.maxTurns; turn++ {
		text, calls, stopReason, usage, err := a.streamTurn(ctx, modelID, messages, apiTools, events)
		total.InputTokens += usage.InputTokens
		total.OutputTokens += usage.OutputTokens
		total.TotalTokens = total.InputTokens + total.OutputTokens
		total.CostUSD += costUSD(req.ModelProfile, usage)
		if err != nil {
			// Cancellation is part of the event contract, not an API error.
			if ctx.Err() != nil {
				events <- ErrorEvent{Message: "cancelled"}
				return
			}
			events <- ErrorEvent{Message: err.Error()}
			return
		}

		// Echo the assistant turn back into the conversation before
		// appending tool results.
		var blocks []sdk.ContentBlockParamUnion
		if text != "" {
			blocks = append(blocks, sdk.NewTextBlock(text))
		}
		for _, tc := range calls {
			blocks = append(blocks, sdk.NewToolUseBlock(tc.id, tc.input, tc.name))
		}
		if len(blocks) > 0 {
			messages = append(messages, sdk.NewAssistantMessage(blocks...))
		}

		if len(calls) == 0 || stopReason != "tool_use" {
			events <- ResultEvent{Result: text, Usage: total}
			return
		}

		var results []sdk.ContentBlockParamUnion
		for _, tc := range calls {
			out, execErr := executor.Execute(ctx, tc.name, tc.input)
			if execErr != nil {
				results = append(results, sdk.NewToolResultBlock(tc.id, execErr.Error(), true))
				continue
			}
			results = append(results, sdk.NewToolResultBlock(tc.id, out, false))
		}
		messages = append(messages, sdk.NewUserMessage(results...))
	}

	events <- ErrorEvent{Message: fmt.Sprintf("agent exceeded %d turns without finishing", a.maxTurns)}
}

// streamTurn runs one completion and accumulates its text, tool calls
// and usage. Tool calls are emitted as ToolUseEvents once their input
// JSON is complete.
func (a *ClaudeAdapter) streamTurn(
	ctx context.Context,
	modelID string,
	messages []sdk.MessageParam,
	apiTools []sdk.ToolUnionParam,
	events chan<- Event,
) (string, []*toolCall, string, models.Usage, error) {
	stream := a.msg.NewStreaming(ctx, sdk.MessageNewParams{
		MaxTokens: maxCompletionTokens,
		Messages:  messages,
		Model:     sdk.Model(modelID),
		Tools:     apiTools,
	})
	defer stream.Close()

	var (
		text       strings.Builder
		open       = map[int]*toolCall{}
		calls      []*toolCall
		stopReason string
		usage      models.Usage
	)

	for stream.Next() {
		switch ev := stream.Current().AsAny().(type) {
		case sdk.MessageStartEvent:
			usage.InputTokens += int(ev.Message.Usage.InputTokens)
		case sdk.ContentBlockStartEvent:
			if tu, ok := ev.ContentBlock.AsAny().(sdk.ToolUseBlock); ok {
				open[int(ev.Index)] = &toolCall{id: tu.ID, name: tu.Name}
			}
		case sdk.ContentBlockDeltaEvent:
			switch delta := ev.Delta.AsAny().(type) {
			case sdk.TextDelta:
				if delta.Text != "" {
					text.WriteString(delta.Text)
					events <- TextEvent{Content: delta.Text}
				}
			case sdk.InputJSONDelta:
				if tc := open[int(ev.Index)]; tc != nil && delta.PartialJSON != "" {
					tc.fragments = append(tc.fragments, delta.PartialJSON)
				}
			}
		case sdk.ContentBlockStopEvent:
			if tc := open[int(ev.Index)]; tc != nil {
				delete(open, int(ev.Index))
				tc.decode()
				calls = append(calls, tc)
				events <- ToolUseEvent{Name: tc.name, Input: tc.input}
			}
		case sdk.MessageDeltaEvent:
			stopReason = string(ev.Delta.StopReason)
			usage.OutputTokens += int(ev.Usage.OutputTokens)
		}
	}
	if err := stream.Err(); err != nil {
		return "", nil, "", usage, err
	}
	if err := ctx.Err(); err != nil {
		return "", nil, "", usage, err
	}
	usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	return text.String(), calls, stopReason, usage, nil
}

// Per-million-token prices by profile family.
var profilePricing = map[string][2]float64{
	"opus":   {5.00, 25.00},
	"sonnet": {3.00, 15.00},
	"haiku":  {1.00, 5.00},
}

func costUSD(profile string, u models.Usage) float64 {
	family := profile
	if i := strings.Index(profile, "-"); i > 0 {
		family = profile[:i]
	}
	p, ok := profilePricing[family]
	if !ok {
		return 0
	}
	return float64(u.InputTokens)/1e6*p[0] + float64(u.OutputTokens)/1e6*p[1]
}
