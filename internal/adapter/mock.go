package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const mockMaxWords = 30

// MockAdapter returns simulated summaries with a configurable delay.
// Used for development and testing without a real LLM backend.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Summarize(ctx context.Context, text, instructions string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	// Simple mock: the first words of the input, whitespace collapsed.
	words := strings.Fields(text)
	if len(words) > mockMaxWords {
		words = words[:mockMaxWords]
		return strings.Join(words, " ") + " ...", nil
	}
	return strings.Join(words, " "), nil
}

func (m *MockAdapter) Available() bool { return true }
