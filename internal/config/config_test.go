// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"WP_BASE_URL", "WP_REVALIDATE_SECONDS",
	"HC_BASE_URL", "HC_REVALIDATE_SECONDS", "HC_USER_AGENT",
	"UPSTREAM_TIMEOUT_SECONDS",
	"NEXT_PUBLIC_SITE_URL", "SITE_NAME",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"RATE_LIMIT_PER_MINUTE", "TRUSTED_PROXIES",
}

// clearEnv sets every variable Load reads to "", which envOrDefault treats
// the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, defaultWPBaseURL, cfg.WPBaseURL)
	assert.Equal(t, defaultHCBaseURL, cfg.HCBaseURL)
	assert.Equal(t, DefaultRevalidate, cfg.WPRevalidate)
	assert.Equal(t, DefaultRevalidate, cfg.HCRevalidate)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.UpstreamTimeout)
	assert.Equal(t, defaultSiteURL, cfg.SiteURL)
	assert.Equal(t, "Zlendo", cfg.SiteName)
	assert.Equal(t, defaultHCUserAgent, cfg.HCUserAgent)
	assert.Equal(t, "", cfg.ValkeyHost)
	assert.Equal(t, "6379", cfg.ValkeyPort)
	assert.False(t, cfg.UsesValkey())
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Empty(t, cfg.TrustedProxies)
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	overrides := map[string]string{
		"APP_HOST":                 "127.0.0.1",
		"APP_PORT":                 "9090",
		"APP_ENV":                  "testing",
		"LOG_LEVEL":                "debug",
		"WP_BASE_URL":              "https://blog.example.com/wp-json/wp/v2/",
		"WP_REVALIDATE_SECONDS":    "60",
		"HC_BASE_URL":              "https://help.example.com/wp-json/wp/v2",
		"HC_REVALIDATE_SECONDS":    "0",
		"HC_USER_AGENT":            "test-agent",
		"UPSTREAM_TIMEOUT_SECONDS": "3",
		"NEXT_PUBLIC_SITE_URL":     "https://example.com/",
		"SITE_NAME":                "Example",
		"VALKEY_HOST":              "cache.example.com",
		"VALKEY_PORT":              "6380",
		"VALKEY_PASSWORD":          "cachepass",
		"RATE_LIMIT_PER_MINUTE":    "30",
		"TRUSTED_PROXIES":          "10.0.0.0/8, 127.0.0.1,::1",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "testing", cfg.Env)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "https://blog.example.com/wp-json/wp/v2", cfg.WPBaseURL, "trailing slash trimmed")
	assert.Equal(t, 60*time.Second, cfg.WPRevalidate)
	assert.Equal(t, "https://help.example.com/wp-json/wp/v2", cfg.HCBaseURL)
	assert.Equal(t, time.Duration(0), cfg.HCRevalidate)
	assert.Equal(t, "test-agent", cfg.HCUserAgent)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, "Example", cfg.SiteName)
	assert.Equal(t, "cache.example.com", cfg.ValkeyHost)
	assert.Equal(t, "6380", cfg.ValkeyPort)
	assert.Equal(t, "cachepass", cfg.ValkeyPassword)
	assert.True(t, cfg.UsesValkey())
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("127.0.0.1/32"),
		netip.MustParsePrefix("::1/128"),
	}, cfg.TrustedProxies)
}

func TestLoad_InvalidSeconds(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "not a number", key: "WP_REVALIDATE_SECONDS", val: "soon"},
		{name: "negative", key: "HC_REVALIDATE_SECONDS", val: "-5"},
		{name: "float", key: "UPSTREAM_TIMEOUT_SECONDS", val: "1.5"},
		{name: "negative rate limit", key: "RATE_LIMIT_PER_MINUTE", val: "-1"},
		{name: "bad proxy ip", key: "TRUSTED_PROXIES", val: "10.0.0.1, proxy.internal"},
		{name: "bad proxy cidr", key: "TRUSTED_PROXIES", val: "10.0.0.0/40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_ProductionRequiresHTTPS(t *testing.T) {
	t.Run("rejects http site url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("NEXT_PUBLIC_SITE_URL", "http://zlendorealty.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NEXT_PUBLIC_SITE_URL")
	})

	t.Run("accepts default https site url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.IsDev())
	})
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.expected, cfg.Addr())
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), "LOG_LEVEL=%q", in)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	})

	t.Run("loads values without overriding set variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "SITE_NAME=FromFile\nZLENDO_DOTENV_MARKER=loaded\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		t.Setenv("SITE_NAME", "FromEnv")
		t.Setenv("ZLENDO_DOTENV_MARKER", "")
		require.NoError(t, os.Unsetenv("ZLENDO_DOTENV_MARKER"))

		require.NoError(t, LoadDotEnv(path))

		assert.Equal(t, "FromEnv", os.Getenv("SITE_NAME"))
		assert.Equal(t, "loaded", os.Getenv("ZLENDO_DOTENV_MARKER"))
	})
}
