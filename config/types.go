package config

import (
	"time"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds MonkeyLearn API connection details
type APIConfig struct {
	Token            string        `mapstructure:"token"`
	BaseURL          string        `mapstructure:"base_url"`
	Version          string        `mapstructure:"version"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRetries       int           `mapstructure:"max_retries"`
	RetryIfThrottled bool          `mapstructure:"retry_if_throttled"`
}

// BatchConfig controls batched operations
type BatchConfig struct {
	Size        int `mapstructure:"size"`
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig contains named result filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ClientOptions converts the API section into client options.
func (c APIConfig) ClientOptions() []api.Option {
	return []api.Option{
		api.WithBaseURL(c.BaseURL),
		api.WithAPIVersion(c.Version),
		api.WithTimeout(c.Timeout),
		api.WithMaxRetries(c.MaxRetries),
	}
}

// CallOptions returns the per-call options implied by the configuration.
func (c *Config) CallOptions() []monkeylearn.CallOption {
	return []monkeylearn.CallOption{
		monkeylearn.WithThrottleRetry(c.API.RetryIfThrottled),
		monkeylearn.WithBatchSize(c.Batch.Size),
	}
}
