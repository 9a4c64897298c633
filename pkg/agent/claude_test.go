package agent

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// emptyDecoder yields no SSE events, simulating a stream torn down
// before producing anything.
type emptyDecoder struct{}

func (*emptyDecoder) Event() ssestream.Event { return ssestream.Event{} }
func (*emptyDecoder) Next() bool             { return false }
func (*emptyDecoder) Close() error           { return nil }
func (*emptyDecoder) Err() error             { return nil }

type stubMessagesClient struct{}

func (stubMessagesClient) New(_ context.Context, _ sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	return nil, errors.New("not implemented")
}

func (stubMessagesClient) NewStreaming(_ context.Context, _ sdk.MessageNewParams, _ ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion] {
	return ssestream.NewStream[sdk.MessageStreamEventUnion](&emptyDecoder{}, nil)
}

func TestResolveModelID(t *testing.T) {
	assert.Equal(t, "claude-opus-4-5", ResolveModelID("opus-4.5"))
	assert.Equal(t, "claude-sonnet-4-5", ResolveModelID("sonnet-4.5"))
	assert.Equal(t, "claude-haiku-4-5", ResolveModelID("haiku-4.5"))
}

func TestCostUSD(t *testing.T) {
	u := models.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	assert.InDelta(t, 30.0, costUSD("opus-4.5", u), 1e-9)
	assert.InDelta(t, 18.0, costUSD("sonnet-4.5", u), 1e-9)
	assert.InDelta(t, 6.0, costUSD("haiku-4.5", u), 1e-9)
	assert.Zero(t, costUSD("gemini-3-pro", u))
}

func TestRunCancelledContextEmitsCancelled(t *testing.T) {
	a := NewClaudeAdapter(stubMessagesClient{}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events, err := a.Run(ctx, Request{Prompt: "/plan auth: add login", Workdir: t.TempDir()})
	require.NoError(t, err)

	var last Event
	for ev := range events {
		last = ev
	}
	errEv, ok := last.(ErrorEvent)
	require.True(t, ok, "expected terminal ErrorEvent, got %T", last)
	assert.Equal(t, "cancelled", errEv.Message)
}

func TestToolCallDecode(t *testing.T) {
	tc := &toolCall{fragments: []string{`{"path":"sp`, `ecs/a.md","content":"x"}`}}
	tc.decode()
	assert.Equal(t, "specs/a.md", tc.input["path"])
	assert.Equal(t, "x", tc.input["content"])

	empty := &toolCall{}
	empty.decode()
	assert.NotNil(t, empty.input)
	assert.Empty(t, empty.input)

	bad := &toolCall{fragments: []string{"{not json"}}
	bad.decode()
	assert.NotNil(t, bad.input)
}
