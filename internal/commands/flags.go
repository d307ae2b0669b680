package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/guide/internal/core/config"
	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/core/imgpreview"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	GuidePath  string

	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "guide", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/guide/guide.log
// On Linux: $XDG_STATE_HOME/guide/guide.log (defaults to ~/.local/state/guide/guide.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "guide", "guide.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "guide", "guide.log")
	}

	return filepath.Join(home, ".local", "state", "guide", "guide.log")
}

// GuideFile returns the guide file to open. The --guide flag wins over the
// config file; an empty result means the built-in guide.
func (f *Flags) GuideFile() string {
	if f.GuidePath != "" {
		return f.GuidePath
	}
	if f.Config != nil {
		return f.Config.Guide
	}
	return ""
}

// LoadGuide loads the selected guide and returns it with the file it came
// from. Guides are loaded per command so that `validate` can report on a
// broken guide instead of failing in the Before hook.
func (f *Flags) LoadGuide() (*guide.Guide, string, error) {
	path := f.GuideFile()
	if path == "" {
		return guide.Default(), "", nil
	}

	g, err := guide.Load(path)
	if err != nil {
		return nil, path, err
	}
	return g, path, nil
}

// ImageRenderer returns the image renderer for g, honoring the configured
// assets directory and the tui.images switch.
func (f *Flags) ImageRenderer(g *guide.Guide) *imgpreview.Renderer {
	dir := g.AssetsDir
	enabled := true
	if f.Config != nil {
		if f.Config.AssetsDir != "" {
			dir = f.Config.AssetsDir
		}
		enabled = f.Config.TUI.ImagesEnabled()
	}
	return imgpreview.New(dir, enabled)
}

// GlobalFlags returns the flags registered on the root command.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("GUIDE_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file",
			Sources:     cli.EnvVars("GUIDE_LOG_FILE"),
			Value:       DefaultLogFile(),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("GUIDE_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "guide",
			Aliases:     []string{"g"},
			Usage:       "path to a guide file (defaults to the config value, then the built-in guide)",
			Sources:     cli.EnvVars("GUIDE_FILE"),
			Destination: &flags.GuidePath,
		},
	}
}
