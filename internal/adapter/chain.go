package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Chain tries providers in priority order: the first available one that
// succeeds wins. Later providers only run when earlier ones are unavailable
// or fail, so a configured cloud provider shields a flaky local one and vice
// versa.
type Chain struct {
	providers []Summarizer
}

func NewChain(providers ...Summarizer) *Chain {
	return &Chain{providers: providers}
}

// Providers returns the chain members in priority order.
func (c *Chain) Providers() []Summarizer {
	return c.providers
}

// Available reports whether any provider is available.
func (c *Chain) Available() bool {
	for _, p := range c.providers {
		if p.Available() {
			return true
		}
	}
	return false
}

// Summarize returns the first successful summary along with the name of the
// provider that produced it. When every provider fails the errors are joined.
func (c *Chain) Summarize(ctx context.Context, text, instructions string) (summary, provider string, err error) {
	var errs []error
	for _, p := range c.providers {
		if !p.Available() {
			continue
		}
		result, perr := p.Summarize(ctx, text, instructions)
		if perr == nil {
			return result, p.Name(), nil
		}
		slog.Warn("provider failed", "provider", p.Name(), "error", perr)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), perr))
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return "", "", errors.New("no summarization providers available")
	}
	return "", "", errors.Join(errs...)
}
