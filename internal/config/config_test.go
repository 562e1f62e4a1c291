package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/tagsync/internal/config"
	"github.com/pkordes/tagsync/internal/domain"
)

// setRequired sets the two required variables so individual tests only vary
// what they care about.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("WEBHOOK_SECRET", "sekrit")
	t.Setenv("ORDER_STORE_URL", "https://orders.internal")
}

// TestLoad_defaults verifies that optional env vars fall back to their
// defaults when only the required variables are provided.
func TestLoad_defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ORDER_STORE_TOKEN", "")
	t.Setenv("EDIT_WINDOW_SECONDS", "")
	t.Setenv("TAG_FORMAT", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "sekrit", cfg.WebhookSecret)
	require.Equal(t, "https://orders.internal", cfg.OrderStoreURL)
	require.Equal(t, "", cfg.OrderStoreToken)
	require.Equal(t, 300*time.Second, cfg.EditWindow)
	require.Equal(t, domain.FormatDayFirst, cfg.TagFormat)
	require.Equal(t, int64(1048576), cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ORDER_STORE_TOKEN", "tok_123")
	t.Setenv("EDIT_WINDOW_SECONDS", "60")
	t.Setenv("TAG_FORMAT", "YYYY-MM-DD")
	t.Setenv("MAX_BODY_BYTES", "65536")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "tok_123", cfg.OrderStoreToken)
	require.Equal(t, 60*time.Second, cfg.EditWindow)
	require.Equal(t, domain.FormatYearFirst, cfg.TagFormat)
	require.Equal(t, int64(65536), cfg.MaxBodyBytes)
}

// TestLoad_missingRequired verifies that an error is returned when required
// variables are unset, and that the message names every missing one.
func TestLoad_missingRequired(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "")
	t.Setenv("ORDER_STORE_URL", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "WEBHOOK_SECRET")
	require.ErrorContains(t, err, "ORDER_STORE_URL")
}

func TestLoad_invalidEditWindow(t *testing.T) {
	setRequired(t)
	t.Setenv("EDIT_WINDOW_SECONDS", "five minutes")

	_, err := config.Load()

	require.ErrorContains(t, err, "EDIT_WINDOW_SECONDS")
}

func TestLoad_negativeEditWindow(t *testing.T) {
	setRequired(t)
	t.Setenv("EDIT_WINDOW_SECONDS", "-10")

	_, err := config.Load()

	require.ErrorContains(t, err, "EDIT_WINDOW_SECONDS")
}

func TestLoad_invalidTagFormat(t *testing.T) {
	setRequired(t)
	t.Setenv("TAG_FORMAT", "MM/DD/YYYY")

	_, err := config.Load()

	require.ErrorContains(t, err, "TAG_FORMAT")
}

func TestLoad_invalidMaxBodyBytes(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_BODY_BYTES", "0")

	_, err := config.Load()

	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}
