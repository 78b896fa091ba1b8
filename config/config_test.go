package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotNil(t, cfg)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen)
	assert.False(t, cfg.ShowHelp)
	assert.Empty(t, cfg.Theme)
	assert.Empty(t, cfg.DebugLog)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty uses defaults",
			data: map[string]any{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "theme is trimmed",
			data: map[string]any{"theme": "  Nord "},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Nord", cfg.Theme)
			},
		},
		{
			name: "booleans override defaults",
			data: map[string]any{"mouse": false, "alt_screen": false, "show_help": true},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Mouse)
				assert.False(t, cfg.AltScreen)
				assert.True(t, cfg.ShowHelp)
			},
		},
		{
			name: "wrong types are ignored",
			data: map[string]any{"mouse": "no", "theme": 3},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Mouse)
				assert.Empty(t, cfg.Theme)
			},
		},
		{
			name: "blank debug log ignored",
			data: map[string]any{"debug_log": "   "},
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.DebugLog)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, parseConfig(tt.data))
		})
	}
}

func TestMouseEnabled(t *testing.T) {
	tests := []struct {
		name      string
		mouse     bool
		altScreen bool
		want      bool
	}{
		{name: "mouse in alt screen", mouse: true, altScreen: true, want: true},
		{name: "mouse inline", mouse: true, altScreen: false, want: false},
		{name: "no mouse in alt screen", mouse: false, altScreen: true, want: false},
		{name: "neither", mouse: false, altScreen: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mouse: tt.mouse, AltScreen: tt.altScreen}
			assert.Equal(t, tt.want, cfg.MouseEnabled())
		})
	}
}

func TestMouseEnabledFromFile(t *testing.T) {
	cfg, err := Parse([]byte("alt_screen: false\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Mouse)
	assert.False(t, cfg.MouseEnabled())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme: Dracula\nmouse: false\ndebug_log: /tmp/layoutcycle.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Dracula", cfg.Theme)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, "/tmp/layoutcycle.log", cfg.DebugLog)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o600))

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "layoutcycle", "config.yaml"), DefaultPath())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/logs/debug.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "debug.log"), got)

	t.Setenv("LAYOUTCYCLE_TEST_DIR", "/var/tmp")
	got, err = ExpandPath("$LAYOUTCYCLE_TEST_DIR/debug.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/debug.log", got)
}
