package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cyclone1070/tokenscan/internal/utils"
)

// DefaultURL is the page tokenscan scans when TOKENSCAN_URL is unset.
const DefaultURL = "https://mbsdsc2023-cid.github.io/sample-site/2023/09/26/markdown-sample.html"

// Config holds all configuration for the scanner and its HTTP front end.
type Config struct {
	URL             string
	RequestTimeout  time.Duration
	UserAgent       string
	RandomUserAgent bool
	LogLevel        slog.Level
	LogFormat       string
	Addr            string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present; variables already set win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		URL:       getEnv("TOKENSCAN_URL", DefaultURL),
		UserAgent: os.Getenv("TOKENSCAN_USER_AGENT"),
		LogFormat: getEnv("TOKENSCAN_LOG_FORMAT", "text"),
		Addr:      getEnv("TOKENSCAN_ADDR", "127.0.0.1:8080"),
	}

	timeout, err := time.ParseDuration(getEnv("TOKENSCAN_REQUEST_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("TOKENSCAN_REQUEST_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("TOKENSCAN_REQUEST_TIMEOUT must not be negative")
	}
	cfg.RequestTimeout = timeout

	randomUserAgent, err := strconv.ParseBool(getEnv("TOKENSCAN_RANDOM_USER_AGENT", "false"))
	if err != nil {
		return nil, fmt.Errorf("TOKENSCAN_RANDOM_USER_AGENT must be a boolean: %w", err)
	}
	cfg.RandomUserAgent = randomUserAgent

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("TOKENSCAN_LOG_LEVEL", "warn"))); err != nil {
		return nil, fmt.Errorf("TOKENSCAN_LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("TOKENSCAN_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// CollectorOptions returns the request settings for utils.ConfiguredCollector.
func (c *Config) CollectorOptions() utils.CollectorOptions {
	return utils.CollectorOptions{
		RequestTimeout:  c.RequestTimeout,
		UserAgent:       c.UserAgent,
		RandomUserAgent: c.RandomUserAgent,
	}
}

// NewLogger builds the stderr logger. Stdout carries scan output only.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
	}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
