package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

// EnvPrefix is prepended to every environment variable, e.g. MONKEYLEARN_API_TOKEN.
const EnvPrefix = "MONKEYLEARN"

// Override changes a value after the file and environment have been read.
type Override func(v *viper.Viper)

// WithToken overrides api.token when token is not empty.
func WithToken(token string) Override {
	return func(v *viper.Viper) {
		if token != "" {
			v.Set("api.token", token)
		}
	}
}

// Load loads the configuration from defaults, an optional file and the
// environment. Without an explicit path a missing file is not an error.
func Load(configPath string, overrides ...Override) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".monkeylearn"))
		}

		// Check /etc
		v.AddConfigPath("/etc/monkeylearn/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for _, o := range overrides {
		o(v)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults; token has an empty default so the environment binds it
	v.SetDefault("api.token", "")
	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.version", api.DefaultAPIVersion)
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.max_retries", api.MaxRetries)
	v.SetDefault("api.retry_if_throttled", true)

	// Batch defaults
	v.SetDefault("batch.size", monkeylearn.DefaultBatchSize)
	v.SetDefault("batch.concurrency", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.Token == "" || cfg.API.Token == "your-api-token-here" {
		return fmt.Errorf("api.token must be set to a valid API token")
	}

	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.MaxRetries < 0 || cfg.API.MaxRetries > api.MaxRetries {
		return fmt.Errorf("api.max_retries must be between 0 and %d, got %d", api.MaxRetries, cfg.API.MaxRetries)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}

	if err := monkeylearn.ValidateBatchSize(cfg.Batch.Size); err != nil {
		return fmt.Errorf("batch.size: %w", err)
	}

	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
