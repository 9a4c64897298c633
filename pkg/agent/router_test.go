package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// stubAdapter records whether it ran and terminates immediately.
type stubAdapter struct {
	ran bool
}

func (s *stubAdapter) Run(ctx context.Context, req Request) (<-chan Event, error) {
	s.ran = true
	ch := make(chan Event, 1)
	ch <- ResultEvent{Result: "ok", Usage: models.Usage{}}
	close(ch)
	return ch, nil
}

func TestRouterDispatch(t *testing.T) {
	tests := []struct {
		name          string
		profile       string
		wantSecondary bool
	}{
		{name: "opus goes primary", profile: "opus-4.5"},
		{name: "sonnet goes primary", profile: "sonnet-4.5"},
		{name: "haiku goes primary", profile: "haiku-4.5"},
		{name: "gemini pro goes secondary", profile: "gemini-3-pro", wantSecondary: true},
		{name: "gemini flash goes secondary", profile: "gemini-3-flash", wantSecondary: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubAdapter{}
			secondary := &stubAdapter{}
			r := NewRouter(primary, secondary)

			_, err := r.Run(context.Background(), Request{
				Prompt:       "/plan x",
				Workdir:      t.TempDir(),
				ModelProfile: tt.profile,
			})
			require.NoError(t, err)
			assert.Equal(t, !tt.wantSecondary, primary.ran)
			assert.Equal(t, tt.wantSecondary, secondary.ran)
		})
	}
}

func TestRouterUnknownProfile(t *testing.T) {
	r := NewRouter(&stubAdapter{}, &stubAdapter{})
	_, err := r.Run(context.Background(), Request{ModelProfile: "gpt-5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model profile")
}

func TestRouterUnconfiguredBackend(t *testing.T) {
	r := NewRouter(nil, nil)

	_, err := r.Run(context.Background(), Request{ModelProfile: "opus-4.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")

	_, err = r.Run(context.Background(), Request{ModelProfile: "gemini-3-pro"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
