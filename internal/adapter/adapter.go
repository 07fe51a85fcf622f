package adapter

import "context"

// Summarizer abstracts an LLM backend that produces summaries.
type Summarizer interface {
	// Name returns a human-readable name for this provider.
	Name() string

	// Summarize sends the user text with mode/length instructions and
	// returns the generated summary.
	Summarize(ctx context.Context, text, instructions string) (string, error)

	// Available reports whether this provider is ready to serve requests.
	Available() bool
}
