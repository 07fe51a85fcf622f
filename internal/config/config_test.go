package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BREVIFY_PORT", "GEMINI_API_KEY", "BREVIFY_GEMINI_MODEL",
		"OPENAI_API_KEY", "BREVIFY_OPENAI_MODEL",
		"BREVIFY_OLLAMA_URL", "BREVIFY_OLLAMA_MODEL",
		"BREVIFY_RATE_LIMIT", "BREVIFY_RATE_LIMIT_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}

	if cfg.Port != 8090 {
		t.Errorf("default port: got %d, want 8090", cfg.Port)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("default gemini_api_key: got %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-lite" {
		t.Errorf("default gemini_model: got %q", cfg.GeminiModel)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("default openai_model: got %q", cfg.OpenAIModel)
	}
	if cfg.OllamaURL != "" {
		t.Errorf("default ollama_url: got %q, want empty", cfg.OllamaURL)
	}
	if cfg.OllamaModel != "qwen2.5:1.5b" {
		t.Errorf("default ollama_model: got %q", cfg.OllamaModel)
	}
	if cfg.RateLimit != 10 || cfg.RateLimitWindow != 60 {
		t.Errorf("default rate limit: got %d/%ds", cfg.RateLimit, cfg.RateLimitWindow)
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	content := `port: 9999
gemini_api_key: "test-gemini-key"
gemini_model: "gemini-2.5-flash"
openai_api_key: "sk-test"
openai_model: "gpt-4o"
ollama_url: "http://jetson.local:11434"
ollama_model: "llama3"
rate_limit: 5
rate_limit_window_seconds: 30
`
	if err := os.WriteFile(yamlPath, []byte(content), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"port", cfg.Port, 9999},
		{"gemini_api_key", cfg.GeminiAPIKey, "test-gemini-key"},
		{"gemini_model", cfg.GeminiModel, "gemini-2.5-flash"},
		{"openai_api_key", cfg.OpenAIAPIKey, "sk-test"},
		{"openai_model", cfg.OpenAIModel, "gpt-4o"},
		{"ollama_url", cfg.OllamaURL, "http://jetson.local:11434"},
		{"ollama_model", cfg.OllamaModel, "llama3"},
		{"rate_limit", cfg.RateLimit, 5},
		{"rate_limit_window_seconds", cfg.RateLimitWindow, 30},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("port: 9999\ngemini_api_key: \"from-yaml\"\n"), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	t.Setenv("BREVIFY_PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("port: got %d, want 7070 (env should win)", cfg.Port)
	}
	if cfg.GeminiAPIKey != "from-env" {
		t.Errorf("gemini_api_key: got %q, want %q", cfg.GeminiAPIKey, "from-env")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
