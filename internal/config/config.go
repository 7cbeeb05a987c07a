package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	GinMode       string
	LLMProvider   string // "copilot" (default) or "openai"
	CopilotModel  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GitHubToken   string
	WebhookSecret string

	ReviewQueueSize int
	ReviewWorkers   int
	// ReviewVerbosity: 0 quiet, 1 per-hunk progress, 2 adds diff previews
	ReviewVerbosity int

	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          envOr("PORT", "8080"),
		GinMode:       envOr("GIN_MODE", "debug"),
		LLMProvider:   envOr("LLM_PROVIDER", "copilot"),
		CopilotModel:  envOr("COPILOT_MODEL", "gpt-5-mini"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),

		ReviewQueueSize: envIntOr("REVIEW_QUEUE_SIZE", 100),
		ReviewWorkers:   envIntOr("REVIEW_WORKERS", 1),
		ReviewVerbosity: envIntOr("REVIEW_VERBOSITY", 1),

		ShutdownTimeout: 10 * time.Second,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOr reads a non-negative integer; anything else keeps the fallback.
func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
