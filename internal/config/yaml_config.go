package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Settings that are awkward as env vars, such as per-route limits, live here.
type YAMLConfig struct {
	Limits     LimitsConfig               `yaml:"limits"`
	RateLimits map[string]RateLimitConfig `yaml:"rate_limits"` // Route path -> limit
}

// LimitsConfig overrides the analysis limits. Zero values are ignored.
type LimitsConfig struct {
	MaxTextBytes        int `yaml:"max_text_bytes"`
	MaxSummarySentences int `yaml:"max_summary_sentences"`
}

// RateLimitConfig defines a per-route request budget.
type RateLimitConfig struct {
	Max    int    `yaml:"max"`
	Window string `yaml:"window,omitempty"` // Go duration, e.g. "30s"
}

// RouteLimit is a resolved per-route request budget.
type RouteLimit struct {
	Max    int
	Window time.Duration
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Apply merges the YAML settings into c.
func (y *YAMLConfig) Apply(c *Config) error {
	if y == nil {
		return nil
	}

	if y.Limits.MaxTextBytes > 0 {
		c.MaxTextBytes = y.Limits.MaxTextBytes
	}
	if y.Limits.MaxSummarySentences > 0 {
		c.MaxSummarySentences = y.Limits.MaxSummarySentences
	}

	if len(y.RateLimits) == 0 {
		return nil
	}
	if c.RouteLimits == nil {
		c.RouteLimits = make(map[string]RouteLimit, len(y.RateLimits))
	}
	for route, rl := range y.RateLimits {
		var window time.Duration
		if rl.Window != "" {
			d, err := time.ParseDuration(rl.Window)
			if err != nil {
				return fmt.Errorf("invalid window for %s: %w", route, err)
			}
			window = d
		}
		c.RouteLimits[route] = RouteLimit{Max: rl.Max, Window: window}
	}

	return nil
}
