package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// decomposeMaxTokens caps the decomposition completion.
const decomposeMaxTokens = 4096

// DecomposedCard is one card of a goal decomposition. Order is the
// 1-based position; Dependencies reference earlier orders.
type DecomposedCard struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
	Dependencies []int  `json:"dependencies"`
}

// Decomposer breaks a goal description into ordered cards.
type Decomposer interface {
	Decompose(ctx context.Context, goalDescription string, maxCards int) ([]DecomposedCard, error)
}

// ClaudeDecomposer decomposes goals with a single non-streaming
// completion that must answer strict JSON.
type ClaudeDecomposer struct {
	msg     agent.MessagesClient
	profile string
}

// NewClaudeDecomposer builds the decomposer. profile defaults to the
// default model profile.
func NewClaudeDecomposer(msg agent.MessagesClient, profile string) *ClaudeDecomposer {
	if profile == "" {
		profile = models.DefaultModelProfile
	}
	return &ClaudeDecomposer{msg: msg, profile: profile}
}

// Decompose asks the model for the card breakdown and validates it.
func (d *ClaudeDecomposer) Decompose(ctx context.Context, goalDescription string, maxCards int) ([]DecomposedCard, error) {
	if strings.TrimSpace(goalDescription) == "" {
		return nil, fmt.Errorf("goal description is empty")
	}

	msg, err := d.msg.New(ctx, sdk.MessageNewParams{
		MaxTokens: decomposeMaxTokens,
		Model:     sdk.Model(agent.ResolveModelID(d.profile)),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(decomposePrompt(goalDescription, maxCards))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decomposition request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(sdk.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}

	cards, err := ParseDecomposition(text.String())
	if err != nil {
		return nil, err
	}
	if len(cards) > maxCards {
		return nil, fmt.Errorf("decomposition produced %d cards, limit is %d", len(cards), maxCards)
	}
	return cards, nil
}

func decomposePrompt(goalDescription string, maxCards int) string {
	return fmt.Sprintf(`Break the following development goal into at most %d small, independently implementable cards.

Goal: %s

Answer with a JSON array only, no prose. Each element:
  {"title": "...", "description": "...", "order": <1-based position>, "dependencies": [<orders this card depends on>]}

Rules:
- orders are 1..N with no gaps
- dependencies may only reference earlier orders
- titles are short imperative phrases, descriptions say what done looks like`,
		maxCards, goalDescription)
}

// ParseDecomposition parses and validates the model's JSON answer.
// A markdown code fence around the array is tolerated.
func ParseDecomposition(raw string) ([]DecomposedCard, error) {
	cleaned := stripFences(raw)

	var cards []DecomposedCard
	if err := json.Unmarshal([]byte(cleaned), &cards); err != nil {
		return nil, fmt.Errorf("decomposition is not valid JSON: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("decomposition produced no cards")
	}

	seen := map[int]bool{}
	for _, c := range cards {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("card with order %d has no title", c.Order)
		}
		if c.Order < 1 || c.Order > len(cards) {
			return nil, fmt.Errorf("card %q has order %d outside 1..%d", c.Title, c.Order, len(cards))
		}
		if seen[c.Order] {
			return nil, fmt.Errorf("duplicate order %d", c.Order)
		}
		seen[c.Order] = true
	}
	for _, c := range cards {
		for _, dep := range c.Dependencies {
			if dep < 1 || dep >= c.Order {
				return nil, fmt.Errorf("card %q depends on order %d, which is not an earlier card", c.Title, dep)
			}
		}
	}
	return cards, nil
}

// stripFences removes a surrounding markdown code fence, if present,
// then trims to the outermost JSON array.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if start := strings.Index(s, "["); start >= 0 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}
