package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SAFAL-TIWARI/brevify/internal/adapter"
	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

type recordingProvider struct {
	calls        int
	text         string
	instructions string
	summary      string
	err          error
}

func (r *recordingProvider) Name() string { return "recording" }
func (r *recordingProvider) Summarize(ctx context.Context, text, instructions string) (string, error) {
	r.calls++
	r.text = text
	r.instructions = instructions
	if r.err != nil {
		return "", r.err
	}
	return r.summary, nil
}
func (r *recordingProvider) Available() bool { return true }

func validText() string {
	return strings.Repeat("the quick brown fox ", 5) // 100 chars
}

func postSummarize(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestSummarizeSuccess(t *testing.T) {
	p := &recordingProvider{summary: "**Short** version."}
	h := Summarize(adapter.NewChain(p))

	w := postSummarize(t, h, summarizeRequest{Text: "  " + validText() + "  ", Mode: "bullets", Length: "short"})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp summarizeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Summary != "**Short** version." {
		t.Errorf("summary: got %q", resp.Summary)
	}
	if resp.Mode != "bullets" || resp.Length != "short" {
		t.Errorf("echo: got mode=%q length=%q", resp.Mode, resp.Length)
	}

	if p.calls != 1 {
		t.Fatalf("provider calls: got %d, want 1", p.calls)
	}
	if p.text != strings.TrimSpace(validText()) {
		t.Errorf("provider received untrimmed text: %q", p.text)
	}
	if !strings.Contains(p.instructions, "bullet-point list") {
		t.Errorf("instructions should reflect the bullets mode, got %q", p.instructions)
	}
	if !strings.Contains(p.instructions, "2-3 sentences") {
		t.Errorf("instructions should reflect the short tier, got %q", p.instructions)
	}
}

func TestSummarizeDefaultsModeAndLength(t *testing.T) {
	p := &recordingProvider{summary: "ok"}
	h := Summarize(adapter.NewChain(p))

	w := postSummarize(t, h, summarizeRequest{Text: validText()})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", w.Code, w.Body.String())
	}
	var resp summarizeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mode != string(summarize.DefaultMode) {
		t.Errorf("default mode: got %q, want %q", resp.Mode, summarize.DefaultMode)
	}
	if resp.Length != string(summarize.DefaultLength) {
		t.Errorf("default length: got %q, want %q", resp.Length, summarize.DefaultLength)
	}
}

func TestSummarizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    summarizeRequest
		wantMsg string
	}{
		{"empty text", summarizeRequest{Text: ""}, "Text field is required"},
		{"whitespace text", summarizeRequest{Text: "   \n "}, "Text field is required"},
		{"too short", summarizeRequest{Text: "too short to summarize"}, "Text must be at least 50 characters long"},
		{"bad mode", summarizeRequest{Text: validText(), Mode: "haiku"}, "Invalid mode specified"},
		{"bad length", summarizeRequest{Text: validText(), Length: "huge"}, "Invalid length specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingProvider{summary: "never"}
			h := Summarize(adapter.NewChain(p))

			w := postSummarize(t, h, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
			}
			if got := decodeError(t, w); got != tt.wantMsg {
				t.Errorf("error: got %q, want %q", got, tt.wantMsg)
			}
			if p.calls != 0 {
				t.Errorf("no provider call expected, got %d", p.calls)
			}
		})
	}
}

func TestSummarizeInvalidJSON(t *testing.T) {
	p := &recordingProvider{}
	w := postSummarize(t, Summarize(adapter.NewChain(p)), "{not json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := decodeError(t, w); got != "invalid JSON body" {
		t.Errorf("error: got %q", got)
	}
	if p.calls != 0 {
		t.Errorf("no provider call expected, got %d", p.calls)
	}
}

func TestSummarizeMethodNotAllowed(t *testing.T) {
	h := Summarize(adapter.NewChain(&recordingProvider{}))
	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestSummarizeProviderFailure(t *testing.T) {
	p := &recordingProvider{err: errors.New("model melted")}
	w := postSummarize(t, Summarize(adapter.NewChain(p)), summarizeRequest{Text: validText()})

	if w.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadGateway)
	}
	got := decodeError(t, w)
	if !strings.Contains(got, "An error occurred while generating the summary") {
		t.Errorf("error prefix missing: %q", got)
	}
	if !strings.Contains(got, "model melted") {
		t.Errorf("error cause missing: %q", got)
	}
}

func TestHealth(t *testing.T) {
	chain := adapter.NewChain(&adapter.MockAdapter{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Health(chain, "test")(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp healthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Service != "brevify" || resp.Version != "test" {
		t.Errorf("header fields: %+v", resp)
	}
	mock, ok := resp.Providers["Mock"]
	if !ok {
		t.Fatal("providers: missing Mock")
	}
	if !mock.Available {
		t.Error("mock provider: got unavailable, want available")
	}
}

func TestHealthUnavailableReason(t *testing.T) {
	chain := adapter.NewChain(&adapter.GeminiAdapter{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Health(chain, "test")(w, req)

	var resp healthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for name, status := range resp.Providers {
		if status.Available {
			t.Errorf("%s: got available, want unavailable", name)
		}
		if status.Reason != "no API key" {
			t.Errorf("%s reason: got %q, want %q", name, status.Reason, "no API key")
		}
	}
}

func TestModes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/modes", nil)
	w := httptest.NewRecorder()

	Modes()(w, req)

	var resp modesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Modes) != 5 {
		t.Errorf("modes count: got %d, want 5", len(resp.Modes))
	}
	if len(resp.Lengths) != 3 {
		t.Errorf("lengths count: got %d, want 3", len(resp.Lengths))
	}
	if resp.DefaultMode != summarize.ModeParagraph {
		t.Errorf("default mode: got %q", resp.DefaultMode)
	}
	if resp.DefaultLength != summarize.LengthMedium {
		t.Errorf("default length: got %q", resp.DefaultLength)
	}
}
