// Package client talks to a brevify server and carries the page-controller
// state: selected mode, selected length tier, the in-flight guard, and the
// last summary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

// APIError is a failure the service reported (non-success HTTP status). Its
// message is the service's error text when present, otherwise a generic
// fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

const genericServiceError = "Failed to generate summary. Please try again."

// Client issues summarize requests against a brevify server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type summarizeRequest struct {
	Text   string `json:"text"`
	Mode   string `json:"mode"`
	Length string `json:"length"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error"`
}

// Summarize posts exactly one request and returns the summary. Transport
// failures come back wrapped with the underlying cause; service-reported
// failures come back as *APIError. Any 2xx status counts as success.
func (c *Client) Summarize(ctx context.Context, text string, mode summarize.Mode, length summarize.Length) (string, error) {
	body, err := json.Marshal(summarizeRequest{
		Text:   text,
		Mode:   string(mode),
		Length: string(length),
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/summarize", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not connect to the summarization service: %w", err)
	}
	defer resp.Body.Close()

	var sr summarizeResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&sr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := genericServiceError
		if decodeErr == nil && sr.Error != "" {
			msg = sr.Error
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}
	return sr.Summary, nil
}
