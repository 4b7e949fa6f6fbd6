package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/notely/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDataDir   = "NOTELY_DATA_DIR"
	EnvLocale    = "NOTELY_LOCALE"
	EnvThemeFile = "NOTELY_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DataDir     string             `yaml:"data_dir"`
	Locale      string             `yaml:"locale"`
	LogLevel    string             `yaml:"log_level"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from NOTELY_THEME_FILE over the config
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme, true)
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		applyEnv(cfg)
		loadThemeFile(cfg)
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when it is missing
func LoadFile(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		config = *Default()
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	applyEnv(&config)
	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "notely", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "notely", "config.yaml"), nil
}

// defaultDataDir returns ~/.notely, or a relative .notely when home is unknown
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".notely"
	}
	return filepath.Join(homeDir, ".notely")
}

func applyEnv(c *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if locale := os.Getenv(EnvLocale); locale != "" {
		c.Locale = locale
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
