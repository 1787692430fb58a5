package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iw2rmb/markpad/buffer"
)

// Config is the top-level markpad configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Editor        EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Preview       PreviewConfig `mapstructure:"preview" yaml:"preview"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// EditorConfig controls the editing pane.
type EditorConfig struct {
	IndentWidth    int    `mapstructure:"indent_width" yaml:"indent_width"`
	LineNumbers    bool   `mapstructure:"line_numbers" yaml:"line_numbers"`
	ExactOutdent   bool   `mapstructure:"exact_outdent" yaml:"exact_outdent"`
	Highlight      bool   `mapstructure:"highlight" yaml:"highlight"`
	HighlightStyle string `mapstructure:"highlight_style" yaml:"highlight_style"`
}

// PreviewConfig controls the rendered markdown pane.
type PreviewConfig struct {
	Style    string `mapstructure:"style" yaml:"style"`
	WordWrap int    `mapstructure:"word_wrap" yaml:"word_wrap"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Editor: EditorConfig{
			IndentWidth:    buffer.DefaultIndentWidth,
			LineNumbers:    true,
			ExactOutdent:   false,
			Highlight:      true,
			HighlightStyle: "monokai",
		},
		Preview: PreviewConfig{
			Style:    "dark",
			WordWrap: 80,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/markpad/config.yaml, falling
// back to the platform user config directory.
func DefaultConfigPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
	}
	return filepath.Join(dir, "markpad", "config.yaml"), nil
}

// Normalize coerces values that have a safe canonical form.
func (c *Config) Normalize() {
	c.Editor.IndentWidth = buffer.NormalizeWidth(c.Editor.IndentWidth)
}

// Validate rejects values that cannot be normalized.
func (c Config) Validate() error {
	if c.Preview.WordWrap < 0 {
		return fmt.Errorf("preview.word_wrap must not be negative, got %d", c.Preview.WordWrap)
	}
	if c.Preview.Style == "" {
		return fmt.Errorf("preview.style is required")
	}
	return nil
}
