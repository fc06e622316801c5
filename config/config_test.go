package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  token: file-token
  base_url: http://localhost:8080/
  timeout: 5s
  max_retries: 1
batch:
  size: 300
filter:
  presets:
    confident: "confidence >= 0.8"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.API.Token)
	assert.Equal(t, "http://localhost:8080/", cfg.API.BaseURL)
	assert.Equal(t, "v3", cfg.API.Version)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.MaxRetries)
	assert.True(t, cfg.API.RetryIfThrottled)
	assert.Equal(t, 300, cfg.Batch.Size)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
	assert.Equal(t, "confidence >= 0.8", cfg.Filter.Presets["confident"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MONKEYLEARN_API_TOKEN", "env-token")
	t.Setenv("MONKEYLEARN_BATCH_SIZE", "150")
	t.Setenv("MONKEYLEARN_API_RETRY_IF_THROTTLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, 150, cfg.Batch.Size)
	assert.False(t, cfg.API.RetryIfThrottled)
	assert.Equal(t, "https://api.monkeylearn.com/", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  token: file-token\n")
	t.Setenv("MONKEYLEARN_API_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
}

func TestLoadWithTokenOverride(t *testing.T) {
	path := writeConfig(t, "api:\n  token: file-token\n")

	cfg, err := Load(path, WithToken("flag-token"))
	require.NoError(t, err)
	assert.Equal(t, "flag-token", cfg.API.Token)

	cfg, err = Load(path, WithToken(""))
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.API.Token)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{
				Token:      "valid-token",
				BaseURL:    "https://api.monkeylearn.com/",
				Timeout:    30 * time.Second,
				MaxRetries: 2,
			},
			Batch:   BatchConfig{Size: 200, Concurrency: 2},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.API.Token = "" }, wantErr: "api.token"},
		{name: "placeholder token", mutate: func(c *Config) { c.API.Token = "your-api-token-here" }, wantErr: "api.token"},
		{name: "missing base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: "api.base_url"},
		{name: "too many retries", mutate: func(c *Config) { c.API.MaxRetries = 3 }, wantErr: "api.max_retries"},
		{name: "negative retries", mutate: func(c *Config) { c.API.MaxRetries = -1 }, wantErr: "api.max_retries"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, wantErr: "api.timeout"},
		{name: "batch below minimum", mutate: func(c *Config) { c.Batch.Size = 50 }, wantErr: "batch.size"},
		{name: "batch above maximum", mutate: func(c *Config) { c.Batch.Size = 501 }, wantErr: "batch.size"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Batch.Concurrency = 0 }, wantErr: "batch.concurrency"},
		{name: "invalid level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid logging level"},
		{name: "invalid format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "invalid logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &Config{
		API:   APIConfig{BaseURL: "http://localhost/", Version: "v3", Timeout: time.Second, MaxRetries: 1},
		Batch: BatchConfig{Size: 100},
	}
	assert.Len(t, cfg.API.ClientOptions(), 4)
	assert.Len(t, cfg.CallOptions(), 2)
}
