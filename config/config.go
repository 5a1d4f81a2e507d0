package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SWAPISORT_SWAPI_URL
const EnvPrefix = "SWAPISORT"

// Load loads the configuration. A missing config file is fine unless
// configPath names it explicitly.
func Load(configPath string) (*Config, error) {
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
			v.AddConfigPath(filepath.Join(home, ".swapisort"))
		}

		// Check /etc
		v.AddConfigPath("/etc/swapisort/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
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
	// SWAPI defaults
	v.SetDefault("swapi.url", "https://swapi.dev/api")
	v.SetDefault("swapi.timeout", "30s")
	v.SetDefault("swapi.user_agent", "swapisort")

	// Cache defaults
	v.SetDefault("cache.file", "characters.json")

	// Output defaults
	v.SetDefault("output.format", "text")

	// Filter defaults
	v.SetDefault("filter.default_expression", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Update defaults
	v.SetDefault("update.repository", "s0up4200/swapisort")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.SWAPI.URL == "" {
		return fmt.Errorf("swapi.url is required")
	}
	if !strings.HasPrefix(cfg.SWAPI.URL, "http://") && !strings.HasPrefix(cfg.SWAPI.URL, "https://") {
		return fmt.Errorf("swapi.url must be an http(s) URL: %s", cfg.SWAPI.URL)
	}

	if cfg.SWAPI.Timeout < 0 {
		return fmt.Errorf("swapi.timeout must not be negative")
	}

	if cfg.Cache.File == "" {
		return fmt.Errorf("cache.file is required")
	}

	// Validate output format
	validOutputs := map[string]bool{
		"text": true,
		"tree": true,
		"json": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	for name, preset := range cfg.Filter.Presets {
		if strings.TrimSpace(preset.Expression) == "" {
			return fmt.Errorf("filter preset '%s' has no expression", name)
		}
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
