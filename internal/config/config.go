// Package config provides centralized configuration for the E2E harness.
// It loads settings from environment variables (with an optional .env
// overlay), validates them, and provides sensible localhost defaults so
// the suite runs against a locally started stack with zero setup.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL      = "http://localhost:4200"
	defaultAPIURL       = "http://localhost:8080"
	defaultAuthStateDir = ".auth-states"

	// Pinned axe-core build injected into pages for accessibility scans.
	defaultAxeScriptURL = "https://cdn.jsdelivr.net/npm/axe-core@4.8.4/axe.min.js"
)

// Config holds all harness configuration.
type Config struct {
	// BaseURL is the frontend origin under test.
	BaseURL string
	// APIURL is the REST gateway origin.
	APIURL string

	// CI tightens behavior: health-check failures abort instead of
	// skipping, and the browser always runs headless.
	CI bool
	// Headless controls browser visibility; set HEADLESS=false to debug.
	Headless bool

	// AuthStateDir holds the per-role storage-state JSON files.
	AuthStateDir string
	// AxeScriptURL is the axe-core script injected for a11y scans.
	AxeScriptURL string

	// ActionTimeout bounds individual locator actions.
	ActionTimeout time.Duration
	// NavigationTimeout bounds page navigations.
	NavigationTimeout time.Duration
	// HTTPTimeout bounds gateway API calls.
	HTTPTimeout time.Duration
}

// ValidationError collects every configuration issue found in one pass.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over .env entries.
func Load() (*Config, error) {
	// Best effort; a missing .env is the normal case in CI.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:           strings.TrimRight(getEnvOrDefault("BASE_URL", defaultBaseURL), "/"),
		APIURL:            strings.TrimRight(getEnvOrDefault("API_URL", defaultAPIURL), "/"),
		CI:                parseBoolOrDefault("CI", false),
		Headless:          parseBoolOrDefault("HEADLESS", true),
		AuthStateDir:      getEnvOrDefault("E2E_AUTH_STATE_DIR", defaultAuthStateDir),
		AxeScriptURL:      getEnvOrDefault("AXE_SCRIPT_URL", defaultAxeScriptURL),
		ActionTimeout:     parseDurationOrDefault("E2E_ACTION_TIMEOUT", 5*time.Second),
		NavigationTimeout: parseDurationOrDefault("E2E_NAVIGATION_TIMEOUT", 10*time.Second),
		HTTPTimeout:       parseDurationOrDefault("E2E_HTTP_TIMEOUT", 15*time.Second),
	}

	if cfg.CI {
		cfg.Headless = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads configuration or panics. For TestMain, where there is
// no *testing.T to fail on yet.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the configuration, accumulating every issue.
func (c *Config) Validate() error {
	var errs []string

	for _, origin := range []struct {
		name  string
		value string
	}{
		{"BASE_URL", c.BaseURL},
		{"API_URL", c.APIURL},
	} {
		u, err := url.Parse(origin.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s must be an absolute http(s) origin, got %q", origin.name, origin.value))
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Sprintf("%s scheme must be http or https, got %q", origin.name, u.Scheme))
		}
	}

	if c.AuthStateDir == "" {
		errs = append(errs, "E2E_AUTH_STATE_DIR must not be empty")
	}
	if c.AxeScriptURL == "" {
		errs = append(errs, "AXE_SCRIPT_URL must not be empty")
	}
	if c.ActionTimeout <= 0 {
		errs = append(errs, "E2E_ACTION_TIMEOUT must be positive")
	}
	if c.NavigationTimeout <= 0 {
		errs = append(errs, "E2E_NAVIGATION_TIMEOUT must be positive")
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, "E2E_HTTP_TIMEOUT must be positive")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ActionTimeoutMS returns the action timeout as Playwright milliseconds.
func (c *Config) ActionTimeoutMS() float64 {
	return float64(c.ActionTimeout.Milliseconds())
}

// NavigationTimeoutMS returns the navigation timeout as Playwright milliseconds.
func (c *Config) NavigationTimeoutMS() float64 {
	return float64(c.NavigationTimeout.Milliseconds())
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
