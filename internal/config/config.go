// Package config loads service configuration: defaults, then an optional
// YAML file, then environment variables (highest precedence). A .env file in
// the working directory is picked up before the environment is read.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port int `yaml:"port" env:"BREVIFY_PORT"`

	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model" env:"BREVIFY_GEMINI_MODEL"`

	OpenAIAPIKey string `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"openai_model" env:"BREVIFY_OPENAI_MODEL"`

	OllamaURL   string `yaml:"ollama_url" env:"BREVIFY_OLLAMA_URL"`
	OllamaModel string `yaml:"ollama_model" env:"BREVIFY_OLLAMA_MODEL"`

	RateLimit       int `yaml:"rate_limit" env:"BREVIFY_RATE_LIMIT"`
	RateLimitWindow int `yaml:"rate_limit_window_seconds" env:"BREVIFY_RATE_LIMIT_WINDOW_SECONDS"`
}

func defaults() Config {
	return Config{
		Port:            8090,
		GeminiModel:     "gemini-2.0-flash-lite",
		OpenAIModel:     "gpt-4o-mini",
		OllamaModel:     "qwen2.5:1.5b",
		RateLimit:       10,
		RateLimitWindow: 60,
	}
}

// Load builds the configuration. An empty path skips the YAML layer.
func Load(path string) (Config, error) {
	// Missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}
