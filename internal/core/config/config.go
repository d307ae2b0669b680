// Package config handles configuration loading and validation for guide.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/guide/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	// Guide is the path to a guide YAML file. Empty uses the built-in guide.
	Guide string `yaml:"guide"`
	// AssetsDir overrides the directory image paths are resolved against.
	// Empty means the guide file's directory.
	AssetsDir string    `yaml:"assets_dir"`
	TUI       TUIConfig `yaml:"tui"`
}

// TUIConfig holds viewer presentation settings.
type TUIConfig struct {
	Theme            string        `yaml:"theme"`
	Images           *bool         `yaml:"images"`     // nil = enabled
	Animations       *bool         `yaml:"animations"` // nil = enabled
	TransitionFrames int           `yaml:"transition_frames"`
	FrameInterval    time.Duration `yaml:"frame_interval"`
}

// ImagesEnabled reports whether image previews should be rendered.
func (t TUIConfig) ImagesEnabled() bool {
	return t.Images == nil || *t.Images
}

// AnimationsEnabled reports whether page transitions should be animated.
func (t TUIConfig) AnimationsEnabled() bool {
	return t.Animations == nil || *t.Animations
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:            styles.DefaultTheme,
			TransitionFrames: 8,
			FrameInterval:    16 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Relative paths in the config file are relative to the file itself.
			cfg.resolvePaths(filepath.Dir(configPath))
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.TransitionFrames == 0 {
		c.TUI.TransitionFrames = defaults.TUI.TransitionFrames
	}
	if c.TUI.FrameInterval == 0 {
		c.TUI.FrameInterval = defaults.TUI.FrameInterval
	}
}

func (c *Config) resolvePaths(dir string) {
	if c.Guide != "" && !filepath.IsAbs(c.Guide) {
		c.Guide = filepath.Join(dir, c.Guide)
	}
	if c.AssetsDir != "" && !filepath.IsAbs(c.AssetsDir) {
		c.AssetsDir = filepath.Join(dir, c.AssetsDir)
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme (available: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	if c.TUI.TransitionFrames < 1 {
		return fmt.Errorf("tui.transition_frames must be at least 1")
	}

	if c.TUI.FrameInterval < time.Millisecond {
		return fmt.Errorf("tui.frame_interval must be at least 1ms")
	}

	return nil
}
