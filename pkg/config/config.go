// Package config loads math-mcp server configuration from an optional YAML
// file with MATH_MCP_* environment variable overrides. Precedence, lowest to
// highest: built-in defaults, config file, environment, command-line flags
// (applied by the caller).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mathmcp/mathmcp/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	// HTTPAddr is the listen address for the HTTP transport. Empty means
	// stdio transport only.
	HTTPAddr string `yaml:"http_addr"`

	// RateLimit is the maximum HTTP requests per second across all clients.
	// Zero disables rate limiting.
	RateLimit int `yaml:"rate_limit"`

	// RateBurst is the token bucket burst for the rate limiter.
	RateBurst int `yaml:"rate_burst"`

	// MaxExpressionLen bounds the length of expressions accepted by the
	// calculate tool, in bytes.
	MaxExpressionLen int `yaml:"max_expression_len"`

	// MaxStatsInput bounds the sample size accepted by the stats tool.
	MaxStatsInput int `yaml:"max_stats_input"`

	// Metrics enables the Prometheus /metrics endpoint on the HTTP
	// transport.
	Metrics bool `yaml:"metrics"`
}

// Default returns a Config populated with the canonical defaults.
func Default() *Config {
	return &Config{
		RateLimit:        defaults.RateLimitPerSecond,
		RateBurst:        defaults.RateLimitBurst,
		MaxExpressionLen: defaults.MaxExpressionLen,
		MaxStatsInput:    defaults.MaxStatsInput,
		Metrics:          true,
	}
}

// Load reads configuration from path (optional; empty path skips the file),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from MATH_MCP_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("MATH_MCP_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{"MATH_MCP_RATE_LIMIT", &c.RateLimit},
		{"MATH_MCP_RATE_BURST", &c.RateBurst},
		{"MATH_MCP_MAX_EXPRESSION_LEN", &c.MaxExpressionLen},
		{"MATH_MCP_MAX_STATS_INPUT", &c.MaxStatsInput},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, e.name, v)
		}
		*e.dst = n
	}
	if v := os.Getenv("MATH_MCP_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: MATH_MCP_METRICS=%q is not a boolean", ErrInvalidConfig, v)
		}
		c.Metrics = b
	}
	return nil
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must be >= 0 (got %d)", ErrInvalidConfig, c.RateLimit)
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("%w: rate_burst must be >= 0 (got %d)", ErrInvalidConfig, c.RateBurst)
	}
	if c.RateLimit > 0 && c.RateBurst == 0 {
		c.RateBurst = c.RateLimit
	}
	if c.MaxExpressionLen <= 0 {
		return fmt.Errorf("%w: max_expression_len must be > 0 (got %d)", ErrInvalidConfig, c.MaxExpressionLen)
	}
	if c.MaxStatsInput <= 0 {
		return fmt.Errorf("%w: max_stats_input must be > 0 (got %d)", ErrInvalidConfig, c.MaxStatsInput)
	}
	return nil
}
