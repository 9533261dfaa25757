// Package config provides environment-driven configuration for the
// server: oracle provider selection, dedup window, timeouts, and auth
// settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for tunables that are knobs, not policy.
const (
	// DefaultDedupWindow is the recency window for the duplicate guard.
	// A heuristic against double-submits, deliberately configurable.
	DefaultDedupWindow = 60 * time.Second
	// DefaultOracleTimeout bounds a single completion call.
	DefaultOracleTimeout = 120 * time.Second
)

// Config holds the server's runtime configuration.
type Config struct {
	Port          int
	DatabaseURL   string
	LLMProvider   string // "gemini" (default) or "openai"
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	DedupWindow   time.Duration
	OracleTimeout time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults
// and validating required fields.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          8080,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LLMProvider:   os.Getenv("LLM_PROVIDER"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		DedupWindow:   DefaultDedupWindow,
		OracleTimeout: DefaultOracleTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if windowStr := os.Getenv("DEDUP_WINDOW_SECONDS"); windowStr != "" {
		seconds, err := strconv.Atoi(windowStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DEDUP_WINDOW_SECONDS: %v", err)
		}
		cfg.DedupWindow = time.Duration(seconds) * time.Second
	}

	if timeoutStr := os.Getenv("ORACLE_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ORACLE_TIMEOUT_SECONDS: %v", err)
		}
		cfg.OracleTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DedupWindow < 0 {
		return fmt.Errorf("dedup window must be non-negative")
	}
	if c.OracleTimeout <= 0 {
		return fmt.Errorf("oracle timeout must be positive")
	}

	switch c.LLMProvider {
	case "", "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAIAPIKey == "" && c.OpenAIBaseURL == "" {
			return fmt.Errorf("OPENAI_API_KEY or OPENAI_BASE_URL is required for the openai provider")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}

	return nil
}
