package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Guide)
	assert.Equal(t, "alpine", cfg.TUI.Theme)
	assert.Equal(t, 8, cfg.TUI.TransitionFrames)
	assert.Equal(t, 16*time.Millisecond, cfg.TUI.FrameInterval)
	assert.True(t, cfg.TUI.ImagesEnabled())
	assert.True(t, cfg.TUI.AnimationsEnabled())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TUI.Theme, cfg.TUI.Theme)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
guide: guides/alps.yaml
assets_dir: /srv/images
tui:
  theme: parchment
  images: false
  animations: false
  transition_frames: 4
  frame_interval: 40ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "guides", "alps.yaml"), cfg.Guide)
	assert.Equal(t, "/srv/images", cfg.AssetsDir)
	assert.Equal(t, "parchment", cfg.TUI.Theme)
	assert.False(t, cfg.TUI.ImagesEnabled())
	assert.False(t, cfg.TUI.AnimationsEnabled())
	assert.Equal(t, 4, cfg.TUI.TransitionFrames)
	assert.Equal(t, 40*time.Millisecond, cfg.TUI.FrameInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown theme",
			content: "tui:\n  theme: neon\n",
			wantErr: "not a known theme",
		},
		{
			name:    "negative frames",
			content: "tui:\n  transition_frames: -1\n",
			wantErr: "transition_frames",
		},
		{
			name:    "bad yaml",
			content: "tui: [",
			wantErr: "parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
