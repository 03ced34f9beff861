package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects everything read from the environment at startup.
type Config struct {
	Port            string
	FrontendURL     string
	AnthropicAPIKey string
	ClaudeModel     string
	ClaudeMaxTokens int
	ClaudeTimeout   time.Duration
	WebDir          string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8000"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:8000"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-latest"),
		ClaudeMaxTokens: getEnvInt("CLAUDE_MAX_TOKENS", 200),
		ClaudeTimeout:   time.Duration(getEnvInt("CLAUDE_TIMEOUT_SECONDS", 10)) * time.Second,
		WebDir:          getEnv("WEB_DIR", "web"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
