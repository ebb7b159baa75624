package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathmcp/mathmcp/pkg/defaults"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.HTTPAddr)
	assert.Equal(t, defaults.RateLimitPerSecond, cfg.RateLimit)
	assert.Equal(t, defaults.MaxExpressionLen, cfg.MaxExpressionLen)
	assert.True(t, cfg.Metrics)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("http_addr: \":9090\"\nrate_limit: 10\nrate_burst: 20\nmetrics: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.False(t, cfg.Metrics)
	// Unset fields keep defaults.
	assert.Equal(t, defaults.MaxExpressionLen, cfg.MaxExpressionLen)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate_limit: [not an int\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MATH_MCP_HTTP_ADDR", ":7070")
	t.Setenv("MATH_MCP_RATE_LIMIT", "5")
	t.Setenv("MATH_MCP_METRICS", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.False(t, cfg.Metrics)
}

func TestEnvBadInteger(t *testing.T) {
	t.Setenv("MATH_MCP_RATE_LIMIT", "lots")
	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidateBounds(t *testing.T) {
	cfg := Default()
	cfg.MaxExpressionLen = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RateLimit = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RateLimit = 10
	cfg.RateBurst = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.RateBurst)
}
