package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAFAL-TIWARI/brevify/internal/adapter"
	"github.com/SAFAL-TIWARI/brevify/internal/config"
	"github.com/SAFAL-TIWARI/brevify/internal/middleware"
	"github.com/SAFAL-TIWARI/brevify/internal/server"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock provider instead of real LLM backends")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	chain, err := buildChain(cfg, *useMock)
	if err != nil {
		log.Fatalf("providers: %v", err)
	}

	rl := middleware.NewRateLimiter(cfg.RateLimit, time.Duration(cfg.RateLimitWindow)*time.Second)
	handler := server.SetupMux(chain, version, rl)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("brevify listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

// buildChain assembles providers in priority order: Gemini, then OpenAI,
// then Ollama. With -mock (or nothing configured and -mock set) only the
// mock provider runs.
func buildChain(cfg config.Config, useMock bool) (*adapter.Chain, error) {
	if useMock {
		log.Println("mode: mock provider enabled")
		return adapter.NewChain(&adapter.MockAdapter{Delay: 500 * time.Millisecond}), nil
	}

	var providers []adapter.Summarizer

	if cfg.GeminiAPIKey != "" {
		gemini, err := adapter.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, gemini)
		log.Printf("mode: gemini enabled (model: %s)", cfg.GeminiModel)
	}

	if cfg.OpenAIAPIKey != "" {
		openai, err := adapter.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, openai)
		log.Printf("mode: openai enabled (model: %s)", cfg.OpenAIModel)
	}

	if cfg.OllamaURL != "" {
		providers = append(providers, &adapter.OllamaAdapter{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaModel,
			Client:  &http.Client{Timeout: 60 * time.Second},
		})
		log.Printf("mode: ollama at %s (model: %s)", cfg.OllamaURL, cfg.OllamaModel)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers configured: set GEMINI_API_KEY, OPENAI_API_KEY, or an ollama_url (or run with -mock)")
	}
	return adapter.NewChain(providers...), nil
}
