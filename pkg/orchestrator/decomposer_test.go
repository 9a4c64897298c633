package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecomposition(t *testing.T) {
	raw := `[
		{"title": "Set up schema", "description": "Tables and migrations", "order": 1, "dependencies": []},
		{"title": "Build API", "description": "CRUD endpoints", "order": 2, "dependencies": [1]},
		{"title": "Wire frontend", "description": "Hook the UI up", "order": 3, "dependencies": [1, 2]}
	]`
	cards, err := ParseDecomposition(raw)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "Set up schema", cards[0].Title)
	assert.Equal(t, []int{1, 2}, cards[2].Dependencies)
}

func TestParseDecompositionStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"title\": \"Only card\", \"description\": \"d\", \"order\": 1, \"dependencies\": []}]\n```"
	cards, err := ParseDecomposition(raw)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Only card", cards[0].Title)
}

func TestParseDecompositionTrimsSurroundingProse(t *testing.T) {
	raw := `Here is the breakdown you asked for:
[{"title": "Card", "description": "d", "order": 1, "dependencies": []}]
Let me know if you want changes.`
	cards, err := ParseDecomposition(raw)
	require.NoError(t, err)
	require.Len(t, cards, 1)
}

func TestParseDecompositionValidation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name:    "not json",
			raw:     "I cannot do that",
			wantErr: "not valid JSON",
		},
		{
			name:    "empty array",
			raw:     "[]",
			wantErr: "no cards",
		},
		{
			name:    "missing title",
			raw:     `[{"title": "  ", "order": 1}]`,
			wantErr: "no title",
		},
		{
			name:    "order out of range",
			raw:     `[{"title": "a", "order": 5}]`,
			wantErr: "outside 1..1",
		},
		{
			name:    "duplicate order",
			raw:     `[{"title": "a", "order": 1}, {"title": "b", "order": 1}]`,
			wantErr: "duplicate order",
		},
		{
			name:    "forward dependency",
			raw:     `[{"title": "a", "order": 1, "dependencies": [2]}, {"title": "b", "order": 2}]`,
			wantErr: "not an earlier card",
		},
		{
			name:    "self dependency",
			raw:     `[{"title": "a", "order": 1, "dependencies": [1]}]`,
			wantErr: "not an earlier card",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecomposition(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
