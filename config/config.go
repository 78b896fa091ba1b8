// Package config loads layoutcycle settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "layoutcycle"
	configFileName = "config.yaml"
)

// Config holds user settings. Layout selection is never stored here.
type Config struct {
	Theme     string // Theme name, empty for the default theme
	DebugLog  string // Path to the debug log, empty to discard
	Mouse     bool   // Enable mouse reporting so buttons can be clicked
	AltScreen bool   // Run in the alternate screen buffer
	ShowHelp  bool   // Start with the full help expanded
}

// DefaultConfig returns the default settings
func DefaultConfig() *Config {
	return &Config{
		Mouse:     true,
		AltScreen: true,
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// DefaultPath returns the config file location used when none is given
func DefaultPath() string {
	return filepath.Join(getConfigDir(), appDirName, configFileName)
}

// LoadConfig reads the config at path, or DefaultPath when path is empty.
// A missing file is not an error. On any other failure the defaults are
// returned together with the error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes
func Parse(data []byte) (*Config, error) {
	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(yamlData), nil
}

func parseConfig(data map[string]any) *Config {
	cfg := DefaultConfig()

	if theme, ok := data["theme"].(string); ok {
		cfg.Theme = strings.TrimSpace(theme)
	}
	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}
	if mouse, ok := data["mouse"].(bool); ok {
		cfg.Mouse = mouse
	}
	if altScreen, ok := data["alt_screen"].(bool); ok {
		cfg.AltScreen = altScreen
	}
	if showHelp, ok := data["show_help"].(bool); ok {
		cfg.ShowHelp = showHelp
	}

	return cfg
}

// MouseEnabled reports whether mouse reporting should be turned on. Click
// zones are measured from the top of the screen, which only matches the
// terminal's coordinates in the alternate screen buffer.
func (c *Config) MouseEnabled() bool {
	return c.Mouse && c.AltScreen
}

// ExpandPath expands a leading ~ and environment variables
func ExpandPath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}
