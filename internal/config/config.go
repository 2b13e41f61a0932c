package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/swimlane/internal/config/colors"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"gopkg.in/yaml.v3"
)

const (
	// appName names the config and log directories
	appName = "swimlane"

	// DefaultRowUnits is the layout height of one terminal row, in the
	// units slot extents and the activation offset are measured in
	DefaultRowUnits = 25.0

	// DefaultLogLevel is used when log_level is unset
	DefaultLogLevel = "debug"
)

// Config represents the application configuration
type Config struct {
	Board       BoardConfig        `yaml:"board"`
	LogLevel    string             `yaml:"log_level"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// BoardConfig tunes drag positioning and the starting board
type BoardConfig struct {
	// ActivationOffset is added to a slot's top edge to form its activation line
	ActivationOffset float64 `yaml:"activation_offset"`

	// RowUnits converts terminal rows to layout units
	RowUnits float64 `yaml:"row_units"`

	// SeedFile replaces the built-in starting board when set
	SeedFile string `yaml:"seed_file"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from SWIMLANE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("SWIMLANE_THEME_FILE")
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
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if seed := os.Getenv("SWIMLANE_SEED_FILE"); seed != "" {
		config.Board.SeedFile = seed
	}
	loadThemeFile(config)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		applyEnv(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		applyEnv(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.ActivationOffset <= 0 {
		c.Board.ActivationOffset = slots.ActivationOffset
	}
	if c.Board.RowUnits <= 0 {
		c.Board.RowUnits = DefaultRowUnits
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
