package imgpreview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 200, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, img))
}

func TestRenderer_Resolve(t *testing.T) {
	r := New("/srv/guide", true)

	assert.Equal(t, filepath.Join("/srv/guide", "paris.jpg"), r.Resolve("/paris.jpg"))
	assert.Equal(t, filepath.Join("/srv/guide", "img", "kyoto.jpg"), r.Resolve("img/kyoto.jpg"))
	assert.Equal(t, "https://example.com/a.png", r.Resolve("https://example.com/a.png"))
}

func TestRenderer_Render_Image(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "square.png", 8, 8)

	r := New(dir, true)
	out := r.Render("/square.png", "square", 4, 2)

	assert.Contains(t, out, halfBlock)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2, "8px tall image fit into 2 rows uses 4 pixel rows")
	for _, line := range lines {
		assert.Equal(t, 4, ansi.StringWidth(line))
	}
}

func TestRenderer_Render_Cached(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 4)

	r := New(dir, true)
	first := r.Render("/a.png", "a", 4, 2)

	require.NoError(t, os.Remove(filepath.Join(dir, "a.png")))
	assert.Equal(t, first, r.Render("/a.png", "a", 4, 2), "second render is served from cache")
}

func TestRenderer_Render_MissingFileFallsBack(t *testing.T) {
	r := New(t.TempDir(), true)

	out := ansi.Strip(r.Render("/paris.jpg", "region", 30, 6))

	assert.Contains(t, out, "region")
	assert.Contains(t, out, "/paris.jpg")
	assert.NotContains(t, out, halfBlock)
}

func TestRenderer_Render_Disabled(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 4)

	out := New(dir, false).Render("/a.png", "skier", 20, 5)

	assert.NotContains(t, out, halfBlock)
	assert.Contains(t, ansi.Strip(out), "skier")
}

func TestRenderer_Render_ZeroSize(t *testing.T) {
	assert.Empty(t, New("", true).Render("/a.png", "a", 0, 3))
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a jpeg"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestPlaceholder_Size(t *testing.T) {
	out := Placeholder("subchapter", "/map.jpg", 24, 5)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 24, ansi.StringWidth(line))
	}
}

func TestRenderer_Check(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "ok.png", 2, 2)
	r := New(dir, true)

	require.NoError(t, r.Check("/ok.png"))
	require.ErrorIs(t, r.Check("https://example.com/x.png"), ErrRemote)
	require.ErrorIs(t, r.Check("/missing.png"), os.ErrNotExist)
}
