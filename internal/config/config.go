// Package config loads runtime configuration from the environment and an
// optional config file, backed by viper. Environment variables use the
// ATELIER_ prefix (ATELIER_API_BASE_URL, ATELIER_API_TOKEN, ...).
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gemfold/atelier/pkg/errors"
)

// Defaults applied when neither the environment nor a config file sets a
// value.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultCatalogPath = "catalog"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "auto"
)

// Config holds the runtime configuration for the CLI and API client.
type Config struct {
	APIBaseURL  string        `mapstructure:"api_base_url"`
	APIToken    string        `mapstructure:"api_token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CatalogPath string        `mapstructure:"catalog_path"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
}

// Load reads configuration from the environment and, when configFile is
// non-empty, the given file. Explicit file settings win over defaults;
// environment variables win over both.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)

	v.SetEnvPrefix("ATELIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so env-only keys need an
	// explicit binding.
	for _, key := range []string{"api_base_url", "api_token", "timeout", "catalog_path", "log_level", "log_format"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.NewConfigError("config", "failed to bind "+key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file", "failed to read "+configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("config", "failed to decode configuration", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &cfg, nil
}
