package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrAnalyticsLimitInvalid = errors.New("analytics limit must be positive")
)

// Default values applied when a field is left empty in the config file.
const (
	DefaultBrewBinary     = "brew"
	DefaultAnalyticsURL   = "https://formulae.brew.sh/api/analytics/install/30d.json"
	DefaultAnalyticsLimit = 10
)

// Config represents the application configuration
type Config struct {
	Brew      BrewConfig      `yaml:"brew"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// BrewConfig holds settings for the Homebrew CLI invocation
type BrewConfig struct {
	// Binary is the brew executable name or path
	Binary string `yaml:"binary"`
	// GreedyUpgrade passes --greedy to brew upgrade so auto-updating
	// casks are included in the batch upgrade
	GreedyUpgrade bool `yaml:"greedy_upgrade"`
}

// AnalyticsConfig holds settings for the advisory popular-packages feed
type AnalyticsConfig struct {
	URL   string `yaml:"url"`
	Limit int    `yaml:"limit"`
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/brewdeck/config.yaml (XDG standard - priority)
// 2. ~/.brewdeck/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "brewdeck", "config.yaml"),
		filepath.Join(home, ".brewdeck", "config.yaml"),
	}, nil
}

// FindConfigPath returns the first existing config file path, or the
// default (XDG) path if no config file exists yet.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// Defaults returns a configuration populated with default values.
func Defaults() *Config {
	return &Config{
		Brew: BrewConfig{
			Binary:        DefaultBrewBinary,
			GreedyUpgrade: true,
		},
		Analytics: AnalyticsConfig{
			URL:   DefaultAnalyticsURL,
			Limit: DefaultAnalyticsLimit,
		},
	}
}

// Load reads configuration from the first available config file.
// Priority: ~/.config/brewdeck/config.yaml > ~/.brewdeck/config.yaml
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path. A missing file
// is not an error: defaults are written there and returned.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Defaults()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if cfg.Analytics.Limit <= 0 {
		return nil, ErrAnalyticsLimitInvalid
	}

	return cfg, nil
}

// fillDefaults restores defaults for fields explicitly emptied in the file.
func (c *Config) fillDefaults() {
	if c.Brew.Binary == "" {
		c.Brew.Binary = DefaultBrewBinary
	}
	if c.Analytics.URL == "" {
		c.Analytics.URL = DefaultAnalyticsURL
	}
	if c.Analytics.Limit == 0 {
		c.Analytics.Limit = DefaultAnalyticsLimit
	}
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
