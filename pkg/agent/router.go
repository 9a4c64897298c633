package agent

import (
	"context"
	"fmt"
	"strings"
)

// Router dispatches a stage run to the back-end that owns the model
// profile. Anthropic profiles (opus-*, sonnet-*, haiku-*) go to the
// primary adapter; gemini-* profiles go to the secondary.
type Router struct {
	primary   Adapter
	secondary Adapter
}

// NewRouter builds a router over the two back-ends. Either adapter may
// be nil when its back-end is not configured; routing to a nil adapter
// fails at Run time.
func NewRouter(primary, secondary Adapter) *Router {
	return &Router{primary: primary, secondary: secondary}
}

// Run resolves the request's model profile and delegates.
func (r *Router) Run(ctx context.Context, req Request) (<-chan Event, error) {
	adapter, err := r.resolve(req.ModelProfile)
	if err != nil {
		return nil, err
	}
	return adapter.Run(ctx, req)
}

func (r *Router) resolve(profile string) (Adapter, error) {
	switch {
	case strings.HasPrefix(profile, "opus-"),
		strings.HasPrefix(profile, "sonnet-"),
		strings.HasPrefix(profile, "haiku-"):
		if r.primary == nil {
			return nil, fmt.Errorf("model profile %q requires the Anthropic back-end, which is not configured", profile)
		}
		return r.primary, nil
	case strings.HasPrefix(profile, "gemini-"):
		if r.secondary == nil {
			return nil, fmt.Errorf("model profile %q requires the Gemini back-end, which is not configured", profile)
		}
		return r.secondary, nil
	}
	return nil, fmt.Errorf("unknown model profile %q", profile)
}
