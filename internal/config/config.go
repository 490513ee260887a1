// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds the graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// ContentfulSpaceID is the default space the content gateway connects to.
	ContentfulSpaceID string
	// ContentfulDeliveryToken is the default Content Delivery API token.
	ContentfulDeliveryToken string
	// ContentfulPreviewToken is the default Content Preview API token.
	// When empty the delivery token is reused for the preview host.
	ContentfulPreviewToken string
	// ContentfulEnvironment is the space environment entries are read from.
	ContentfulEnvironment string
	// ContentfulTimeout is the per-request timeout for the remote content API.
	ContentfulTimeout time.Duration
	// ContentfulDeliveryBaseURL overrides scheme and host of the delivery API.
	ContentfulDeliveryBaseURL string
	// ContentfulPreviewBaseURL overrides scheme and host of the preview API.
	ContentfulPreviewBaseURL string

	// LandingPageSlug is the slug of the landingPage entry rendered at "/".
	LandingPageSlug string

	// SettingsCookieSecure marks the settings cookie as HTTPS-only.
	SettingsCookieSecure bool

	// RateLimitSettingsEnabled indicates whether settings submissions are rate limited per IP.
	RateLimitSettingsEnabled bool
	// RateLimitSettingsRequestsPerSec is the number of submissions allowed per second per IP.
	RateLimitSettingsRequestsPerSec float64
	// RateLimitSettingsBurst is the burst size for settings submissions.
	RateLimitSettingsBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 3000),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Content API
		ContentfulSpaceID:       env.GetString("CONTENTFUL_SPACE_ID", ""),
		ContentfulDeliveryToken: env.GetString("CONTENTFUL_DELIVERY_TOKEN", ""),
		ContentfulPreviewToken:  env.GetString("CONTENTFUL_PREVIEW_TOKEN", ""),
		ContentfulEnvironment:   env.GetString("CONTENTFUL_ENVIRONMENT", "master"),
		ContentfulTimeout:       env.GetDuration("CONTENTFUL_TIMEOUT_SECONDS", 10, time.Second),

		ContentfulDeliveryBaseURL: env.GetString("CONTENTFUL_DELIVERY_BASE_URL", ""),
		ContentfulPreviewBaseURL:  env.GetString("CONTENTFUL_PREVIEW_BASE_URL", ""),

		// Pages
		LandingPageSlug: env.GetString("LANDING_PAGE_SLUG", "contentful-university"),

		// Settings cookie
		SettingsCookieSecure: env.GetBool("SETTINGS_COOKIE_SECURE", false),

		// Rate Limiting (settings submissions hit the remote API twice)
		RateLimitSettingsEnabled:        env.GetBool("RATE_LIMIT_SETTINGS_ENABLED", true),
		RateLimitSettingsRequestsPerSec: env.GetFloat64("RATE_LIMIT_SETTINGS_REQUESTS_PER_SEC", 1.0),
		RateLimitSettingsBurst:          env.GetInt("RATE_LIMIT_SETTINGS_BURST", 5),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "courses"),
		MetricsPort:      env.GetInt("METRICS_PORT", 3001),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
