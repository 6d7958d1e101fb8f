package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/homework/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "homework"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultOutputFile is where collected tasks are written
	DefaultOutputFile = "data.json"
	// DefaultTheme is the board theme used when none is configured
	DefaultTheme = "dracula"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	// OutputFile is the JSON file written at the end of a session.
	// Relative paths are resolved against the working directory.
	OutputFile string `toml:"output_file"`
	// Color enables styled console prompts
	Color bool `toml:"color"`
	// Theme is the bubbletint theme id used by the board
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the out-of-the-box behavior:
// tasks go to data.json in the working directory, prompts are colored.
func DefaultConfig() Config {
	return Config{
		OutputFile: DefaultOutputFile,
		Color:      true,
		Theme:      DefaultTheme,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file at path. Keys missing from the file keep
// their default values. The result is validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file
// does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	return Load(path)
}

// Save writes cfg to path as TOML, replacing any existing file.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	name := strings.TrimSpace(c.OutputFile)
	if name == "" {
		return fmt.Errorf("%w: output_file must not be empty", ErrInvalidConfig)
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		return fmt.Errorf("%w: output_file %q names a directory", ErrInvalidConfig, c.OutputFile)
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("%w: theme must not be empty", ErrInvalidConfig)
	}
	return nil
}
