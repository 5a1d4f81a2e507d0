package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	SWAPI   SWAPIConfig   `mapstructure:"swapi"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// SWAPIConfig holds API connection details
type SWAPIConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CacheConfig points at the character cache file
type CacheConfig struct {
	File string `mapstructure:"file"`
}

// OutputConfig controls how categories are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]PresetFilter `mapstructure:"presets"`
}

// PresetFilter is a named filter expression
type PresetFilter struct {
	Description string `mapstructure:"description"`
	Expression  string `mapstructure:"expression"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig names the GitHub repository releases are published to
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
