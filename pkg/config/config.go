/*
Package config manages TOML config for keyfan.
*/
package config

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seokit/keyfan/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	HTTP   HTTPConfig   `toml:"http"`
	Expand ExpandConfig `toml:"expand"`
	CLI    CliConfig    `toml:"cli"`
}

// HTTPConfig has upstream suggest request options.
type HTTPConfig struct {
	Endpoint  string `toml:"endpoint"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// ExpandConfig holds expansion options.
type ExpandConfig struct {
	Workers       int    `toml:"workers"`
	DefaultRegion string `toml:"default_region"`
	CacheEntries  int    `toml:"cache_entries"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowTiming   bool `toml:"show_timing"`
}

// Timeout returns the HTTP timeout as a duration.
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutMS) * time.Millisecond
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Endpoint:  "https://suggestqueries.google.com/complete/search",
			TimeoutMS: 4000,
		},
		Expand: ExpandConfig{
			Workers:       8,
			DefaultRegion: "IN",
			CacheEntries:  512,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			ShowTiming:   true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, layering the file's values over the
// built-in defaults so partial configs stay usable.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config to a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
