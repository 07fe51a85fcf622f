package adapter

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMockAdapterSummarize(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses whitespace", "hello   world\n\tagain", "hello world again"},
		{"trims whitespace", "  hello world  ", "hello world"},
		{"short text kept whole", "one two three", "one two three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Summarize(context.Background(), tt.input, "instructions")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockAdapterTruncatesLongInput(t *testing.T) {
	m := &MockAdapter{}

	input := strings.Repeat("word ", mockMaxWords*2)
	got, err := m.Summarize(context.Background(), input, "instructions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, " ...") {
		t.Errorf("expected truncation suffix, got %q", got)
	}
	if words := strings.Fields(got); len(words) != mockMaxWords+1 {
		t.Errorf("word count: got %d, want %d", len(words), mockMaxWords+1)
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Summarize(ctx, "hello", "instructions")
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
}
