/*
Package config manages the TOML config for levtrie.

	[matcher]
	max_cost = 1
	sort = "distance"
	limit = 0

	[dict]
	path = "words.txt"

	[server]
	max_input = 64

Missing keys keep their defaults. InitConfig writes a default file when none exists.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/levtrie/pkg/suggest"
	"github.com/charmbracelet/log"
)

// ErrInvalid is returned by Validate for values the matcher would reject.
var ErrInvalid = errors.New("invalid config")

// Config holds the entire config structure
type Config struct {
	Matcher MatcherConfig `toml:"matcher"`
	Dict    DictConfig    `toml:"dict"`
	Server  ServerConfig  `toml:"server"`
}

// MatcherConfig has the per-step defaults.
type MatcherConfig struct {
	MaxCost int    `toml:"max_cost"`
	Sort    string `toml:"sort"`
	Limit   int    `toml:"limit"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxInput int `toml:"max_input"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Matcher: MatcherConfig{
			MaxCost: 1,
			Sort:    suggest.SortDistance.String(),
			Limit:   0,
		},
		Dict: DictConfig{
			Path: "words.txt",
		},
		Server: ServerConfig{
			MaxInput: 64,
		},
	}
}

// SortKey parses the configured sort key.
func (c *Config) SortKey() (suggest.SortKey, error) {
	return suggest.ParseSortKey(c.Matcher.Sort)
}

// Validate checks the values the matcher and server depend on.
func (c *Config) Validate() error {
	if c.Matcher.MaxCost < 0 {
		return fmt.Errorf("%w: matcher.max_cost %d is negative", ErrInvalid, c.Matcher.MaxCost)
	}
	if _, err := c.SortKey(); err != nil {
		return fmt.Errorf("%w: matcher.sort: %w", ErrInvalid, err)
	}
	if c.Matcher.Limit < 0 {
		return fmt.Errorf("%w: matcher.limit %d is negative", ErrInvalid, c.Matcher.Limit)
	}
	if c.Server.MaxInput < 1 {
		return fmt.Errorf("%w: server.max_input must be at least 1", ErrInvalid)
	}
	return nil
}

// LoadConfig loads from a TOML file on top of the defaults
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		return LoadConfig(configPath)
	}

	config := DefaultConfig()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return config, nil
	}
	if err := SaveConfig(config, configPath); err != nil {
		log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
		return config, nil
	}
	log.Debugf("Created default config file at: %s", configPath)
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", configPath, err)
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(config)
}
