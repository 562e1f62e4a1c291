// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/tagsync/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// WebhookSecret is the shared secret webhook signatures are verified
	// against. Required. Never logged.
	WebhookSecret string

	// OrderStoreURL is the base URL of the Order Store API. Required.
	OrderStoreURL string

	// OrderStoreToken is the bearer token for Order Store requests.
	// Optional; empty means the store accepts unauthenticated calls.
	OrderStoreToken string

	// EditWindow is how long after creation an order.updated event may
	// still trigger reconciliation. Defaults to 300 seconds.
	// Set EDIT_WINDOW_SECONDS to override.
	EditWindow time.Duration

	// TagFormat selects the canonical delivery date tag rendering.
	// Defaults to DD-MM-YYYY; YYYY-MM-DD is the other accepted value.
	TagFormat domain.TagFormat

	// MaxBodyBytes caps inbound webhook payload sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// describing the first value that fails to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		OrderStoreToken: os.Getenv("ORDER_STORE_TOKEN"),
	}

	var missing []string

	cfg.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	if cfg.WebhookSecret == "" {
		missing = append(missing, "WEBHOOK_SECRET")
	}

	cfg.OrderStoreURL = os.Getenv("ORDER_STORE_URL")
	if cfg.OrderStoreURL == "" {
		missing = append(missing, "ORDER_STORE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	windowSeconds := getEnv("EDIT_WINDOW_SECONDS", "300")
	seconds, err := strconv.Atoi(windowSeconds)
	if err != nil || seconds < 0 {
		return Config{}, fmt.Errorf("invalid EDIT_WINDOW_SECONDS %q: want a non-negative integer", windowSeconds)
	}
	cfg.EditWindow = time.Duration(seconds) * time.Second

	cfg.TagFormat, err = domain.ParseTagFormat(getEnv("TAG_FORMAT", string(domain.FormatDayFirst)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAG_FORMAT: %w", err)
	}

	maxBody := getEnv("MAX_BODY_BYTES", "1048576")
	cfg.MaxBodyBytes, err = strconv.ParseInt(maxBody, 10, 64)
	if err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES %q: want a positive integer", maxBody)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
