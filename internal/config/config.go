package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // "debug", "info", "warn", "error"

	// Server
	ServerAddr string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" when empty

	// Analysis limits
	MaxTextBytes        int // Largest accepted text field, in bytes
	MaxSummarySentences int // Upper bound for max_sentences

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string // Shared limiter storage; in-memory when empty

	// Background jobs
	StorageCheckInterval time.Duration

	// Metrics
	MetricsEnabled bool

	// OIDC bearer auth for the analysis API, disabled when OIDCIssuer is empty
	OIDCIssuer           string
	OIDCClientID         string
	OIDCUserInfoFallback bool

	// Per-route overrides from the YAML file
	RouteLimits map[string]RouteLimit
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		MaxTextBytes:        getEnvInt("MAX_TEXT_BYTES", 64*1024),
		MaxSummarySentences: getEnvInt("MAX_SUMMARY_SENTENCES", 50),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),

		StorageCheckInterval: getEnvDuration("STORAGE_CHECK_INTERVAL", 30*time.Second),

		MetricsEnabled: getEnv("METRICS_ENABLED", "") != "",

		OIDCIssuer:           getEnv("OIDC_ISSUER", ""),
		OIDCClientID:         getEnv("OIDC_CLIENT_ID", ""),
		OIDCUserInfoFallback: getEnv("OIDC_USERINFO_FALLBACK", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxTextBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_TEXT_BYTES must be positive, got %d", c.MaxTextBytes))
	}
	if c.MaxSummarySentences <= 0 {
		errs = append(errs, fmt.Errorf("MAX_SUMMARY_SENTENCES must be positive, got %d", c.MaxSummarySentences))
	}
	if c.RateLimitMax <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow))
	}
	if c.StorageCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("STORAGE_CHECK_INTERVAL must be positive, got %s", c.StorageCheckInterval))
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		errs = append(errs, errors.New("TLS_ENABLED requires TLS_CERT_FILE and TLS_KEY_FILE"))
	}
	if c.OIDCIssuer != "" && c.OIDCClientID == "" {
		errs = append(errs, errors.New("OIDC_ISSUER requires OIDC_CLIENT_ID"))
	}
	for route, rl := range c.RouteLimits {
		if rl.Max <= 0 {
			errs = append(errs, fmt.Errorf("rate limit for %s must be positive, got %d", route, rl.Max))
		}
	}
	return errors.Join(errs...)
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// AuthEnabled reports whether analysis routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// LimitFor returns the request budget for a route, falling back to the
// global rate limit.
func (c *Config) LimitFor(route string) RouteLimit {
	if rl, ok := c.RouteLimits[route]; ok {
		if rl.Window <= 0 {
			rl.Window = c.RateLimitWindow
		}
		return rl
	}
	return RouteLimit{Max: c.RateLimitMax, Window: c.RateLimitWindow}
}
