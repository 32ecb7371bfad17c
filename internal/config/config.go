// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file, environment, nor flags set a value.
const (
	DefaultPort         = 8080
	DefaultDataFile     = "Data/small_CV_DB.csv"
	DefaultMaxLogLength = 200
)

// Config represents the runtime configuration, resolved from defaults, an
// optional hiring-wizard.yaml, HW_-prefixed environment variables, and CLI flags.
type Config struct {
	Port     int    `mapstructure:"port"`
	DataFile string `mapstructure:"data-file"`

	Gemini GeminiConfig `mapstructure:"gemini"`

	Debug        bool `mapstructure:"debug"`
	JSONLog      bool `mapstructure:"json"`
	MaxLogLength int  `mapstructure:"max-log-length"`
}

// GeminiConfig holds the gateway credentials and per-tier model overrides.
// Empty model fields keep the built-in tier mapping.
type GeminiConfig struct {
	APIKey        string `mapstructure:"api-key"`
	LiteModel     string `mapstructure:"lite-model"`
	StandardModel string `mapstructure:"standard-model"`
	AdvancedModel string `mapstructure:"advanced-model"`
}

// SetDefaults registers the default values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("data-file", DefaultDataFile)
	v.SetDefault("max-log-length", DefaultMaxLogLength)
}

// Load unmarshals the resolved configuration from the given viper instance.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.DataFile == "" {
		return fmt.Errorf("config error: 'data-file' must not be empty")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("config error: gemini api key is required (set HW_GEMINI_API_KEY or gemini.api-key)")
	}
	if c.MaxLogLength < 0 {
		return fmt.Errorf("config error: 'max-log-length' must be non-negative")
	}
	return nil
}
