package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

type modesResponse struct {
	Modes         []summarize.Mode   `json:"modes"`
	Lengths       []summarize.Length `json:"lengths"`
	DefaultMode   summarize.Mode     `json:"default_mode"`
	DefaultLength summarize.Length   `json:"default_length"`
}

// Modes exposes the valid mode and length identifiers via GET /modes.
func Modes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(modesResponse{
			Modes:         summarize.Modes,
			Lengths:       summarize.Lengths,
			DefaultMode:   summarize.DefaultMode,
			DefaultLength: summarize.DefaultLength,
		})
	}
}
