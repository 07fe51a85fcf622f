package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SAFAL-TIWARI/brevify/internal/adapter"
	"github.com/SAFAL-TIWARI/brevify/internal/metrics"
	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

type summarizeRequest struct {
	Text   string `json:"text"`
	Mode   string `json:"mode"`
	Length string `json:"length"`
}

type summarizeResponse struct {
	Summary   string `json:"summary"`
	Mode      string `json:"mode"`
	Length    string `json:"length"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Summarize handles POST /summarize: validate, build instructions, run the
// provider chain, return the summary.
func Summarize(chain *adapter.Chain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		text, err := summarize.ValidateText(req.Text)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Mode and length default rather than error when omitted.
		mode := summarize.DefaultMode
		if strings.TrimSpace(req.Mode) != "" {
			if mode, err = summarize.ParseMode(req.Mode); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		length := summarize.DefaultLength
		if strings.TrimSpace(req.Length) != "" {
			if length, err = summarize.ParseLength(req.Length); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		metrics.InputChars.Observe(float64(utf8.RuneCountInString(text)))

		instructions := summarize.Instructions(mode, length)

		start := time.Now()
		summary, provider, err := chain.Summarize(r.Context(), text, instructions)
		elapsed := time.Since(start)

		if err != nil {
			writeError(w, http.StatusBadGateway, fmt.Sprintf("An error occurred while generating the summary: %v", err))
			return
		}

		metrics.SummarizeDuration.WithLabelValues(provider).Observe(elapsed.Seconds())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summarizeResponse{
			Summary:   summary,
			Mode:      string(mode),
			Length:    string(length),
			ElapsedMs: elapsed.Milliseconds(),
		})
	}
}
