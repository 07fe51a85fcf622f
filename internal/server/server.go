package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SAFAL-TIWARI/brevify/internal/adapter"
	"github.com/SAFAL-TIWARI/brevify/internal/handler"
	"github.com/SAFAL-TIWARI/brevify/internal/middleware"
	"github.com/SAFAL-TIWARI/brevify/web"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(chain *adapter.Chain, version string, rl *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/summarize", handler.Summarize(chain))
	mux.HandleFunc("/health", handler.Health(chain, version))
	mux.HandleFunc("/modes", handler.Modes())
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.FileServerFS(web.Assets))

	return middleware.Chain(mux, rl)
}
