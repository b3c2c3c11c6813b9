// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultRevalidate is the upstream revalidation window used when
	// WP_REVALIDATE_SECONDS / HC_REVALIDATE_SECONDS are unset.
	DefaultRevalidate = 3600 * time.Second

	// DefaultUpstreamTimeout bounds a single WordPress request.
	DefaultUpstreamTimeout = 15 * time.Second

	defaultWPBaseURL   = "https://zlendorealty.com/blog/wp-json/wp/v2"
	defaultHCBaseURL   = "https://help.zlendorealty.com/wp-json/wp/v2"
	defaultSiteURL     = "https://zlendorealty.com"
	defaultSiteName    = "Zlendo"
	defaultHCUserAgent = "Mozilla/5.0 (compatible; ZlendoContentBot/1.0; +https://zlendorealty.com)"

	// DefaultRateLimit is the per-client request budget for /api per minute.
	DefaultRateLimit = 120
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string

	// Blog WordPress REST API
	WPBaseURL    string
	WPRevalidate time.Duration

	// Help-center (BetterDocs) WordPress REST API
	HCBaseURL    string
	HCRevalidate time.Duration
	HCUserAgent  string

	UpstreamTimeout time.Duration

	// Public site, used for canonical URLs and the help-center Referer.
	SiteURL  string
	SiteName string

	// Valkey (Redis-compatible cache). Empty host selects the in-memory store.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// API requests per client per minute. 0 disables the limiter.
	RateLimit int

	// Reverse proxies whose X-Forwarded-For / X-Real-IP headers are
	// believed. Empty means clients are identified by the socket address.
	TrustedProxies []netip.Prefix
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already present in the environment. Missing
// files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		slog.Debug("dotenv loaded", "file", f)
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		WPBaseURL: strings.TrimRight(envOrDefault("WP_BASE_URL", defaultWPBaseURL), "/"),
		HCBaseURL: strings.TrimRight(envOrDefault("HC_BASE_URL", defaultHCBaseURL), "/"),

		HCUserAgent: envOrDefault("HC_USER_AGENT", defaultHCUserAgent),

		SiteURL:  strings.TrimRight(envOrDefault("NEXT_PUBLIC_SITE_URL", defaultSiteURL), "/"),
		SiteName: envOrDefault("SITE_NAME", defaultSiteName),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	var err error
	if cfg.WPRevalidate, err = envSeconds("WP_REVALIDATE_SECONDS", DefaultRevalidate); err != nil {
		return nil, err
	}
	if cfg.HCRevalidate, err = envSeconds("HC_REVALIDATE_SECONDS", DefaultRevalidate); err != nil {
		return nil, err
	}
	if cfg.UpstreamTimeout, err = envSeconds("UPSTREAM_TIMEOUT_SECONDS", DefaultUpstreamTimeout); err != nil {
		return nil, err
	}

	if cfg.RateLimit, err = envCount("RATE_LIMIT_PER_MINUTE", DefaultRateLimit); err != nil {
		return nil, err
	}
	if cfg.TrustedProxies, err = envPrefixes("TRUSTED_PROXIES"); err != nil {
		return nil, err
	}

	if cfg.Env == "production" && !strings.HasPrefix(cfg.SiteURL, "https://") {
		return nil, fmt.Errorf("NEXT_PUBLIC_SITE_URL must be an https URL in production")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesValkey reports whether the upstream cache should be backed by Valkey.
func (c *Config) UsesValkey() bool {
	return c.ValkeyHost != ""
}

// SlogLevel maps LOG_LEVEL onto a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envSeconds reads a non-negative integer number of seconds.
func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	n, err := envCount(key, int(fallback/time.Second))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

// envCount reads a non-negative integer.
func envCount(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", key, n)
	}
	return n, nil
}

// envPrefixes reads a comma-separated list of IPs and CIDR ranges. A bare IP
// is a single-address prefix.
func envPrefixes(key string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(os.Getenv(key), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid CIDR %q: %w", key, part, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid IP %q: %w", key, part, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
