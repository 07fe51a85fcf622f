package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SAFAL-TIWARI/brevify/internal/adapter"
	"github.com/SAFAL-TIWARI/brevify/internal/metrics"
)

type providerStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status    string                    `json:"status"`
	Service   string                    `json:"service"`
	Version   string                    `json:"version"`
	Providers map[string]providerStatus `json:"providers"`
}

// Health reports overall status plus per-provider availability.
func Health(chain *adapter.Chain, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providers := chain.Providers()
		statuses := make(map[string]providerStatus, len(providers))
		for _, p := range providers {
			s := providerStatus{Available: p.Available()}
			if !s.Available {
				s.Reason = unavailableReason(p)
			}
			statuses[p.Name()] = s

			v := 0.0
			if s.Available {
				v = 1.0
			}
			metrics.ProviderAvailable.WithLabelValues(p.Name()).Set(v)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:    "ok",
			Service:   "brevify",
			Version:   version,
			Providers: statuses,
		})
	}
}

func unavailableReason(p adapter.Summarizer) string {
	switch p.(type) {
	case *adapter.GeminiAdapter:
		return "no API key"
	case *adapter.OpenAIAdapter:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	default:
		return "unavailable"
	}
}
