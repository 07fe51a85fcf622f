package adapter

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiAdapter calls the Gemini API through the official Go SDK.
type GeminiAdapter struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini provider. apiKey must be non-empty.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiAdapter{client: client, model: model}, nil
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model)
}

func (g *GeminiAdapter) Summarize(ctx context.Context, text, instructions string) (string, error) {
	// Low temperature keeps summaries focused and consistent.
	temp := float32(0.3)
	topP := float32(0.8)
	topK := float32(40)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instructions}},
		},
		Temperature:     &temp,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: 1024,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if result == nil {
		return "", fmt.Errorf("gemini: nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return summary, nil
}

func (g *GeminiAdapter) Available() bool {
	return g.client != nil
}
