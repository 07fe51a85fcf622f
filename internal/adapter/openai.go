package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const openAIMaxOutputTokens int64 = 1024

// OpenAIAdapter calls the OpenAI Responses API.
type OpenAIAdapter struct {
	client openai.Client
	apiKey string
	model  string
}

// NewOpenAI builds an OpenAI provider. apiKey must be non-empty.
func NewOpenAI(apiKey, model string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key required")
	}
	return &OpenAIAdapter{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.model)
}

func (o *OpenAIAdapter) Summarize(ctx context.Context, text, instructions string) (string, error) {
	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(o.model),
		MaxOutputTokens: openai.Int(openAIMaxOutputTokens),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: do request: %w", err)
	}

	if resp.Status == "incomplete" {
		return "", fmt.Errorf("openai: response incomplete (reason = %s)", resp.IncompleteDetails.Reason)
	}

	summary := strings.TrimSpace(resp.OutputText())
	if summary == "" {
		return "", fmt.Errorf("openai: output text missing (status = %s)", resp.Status)
	}
	return summary, nil
}

func (o *OpenAIAdapter) Available() bool {
	return o.apiKey != ""
}
