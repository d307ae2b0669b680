// Package imgpreview renders guide images inside the terminal using
// upper-half-block glyphs, two pixel rows per text row. Missing or broken
// images never produce an error; a framed placeholder is drawn instead.
package imgpreview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"

	"github.com/colonyops/guide/internal/core/styles"
)

var (
	// ErrNotImage is returned by Load when a file is not a recognized image.
	ErrNotImage = errors.New("not an image")
	// ErrRemote is returned by Check for http(s) image paths, which are
	// never fetched.
	ErrRemote = errors.New("remote image")
)

const halfBlock = "▀"

type cacheKey struct {
	path          string
	width, height int
}

// Renderer resolves image paths against an assets directory and memoises
// rendered previews.
type Renderer struct {
	baseDir string
	enabled bool
	cache   map[cacheKey]string
}

// New creates a renderer. An empty baseDir resolves images against the
// working directory. When enabled is false every image renders as a
// placeholder.
func New(baseDir string, enabled bool) *Renderer {
	if baseDir == "" {
		baseDir = "."
	}
	return &Renderer{
		baseDir: baseDir,
		enabled: enabled,
		cache:   make(map[cacheKey]string),
	}
}

// BaseDir returns the directory image paths are resolved against.
func (r *Renderer) BaseDir() string {
	return r.baseDir
}

// Resolve maps a guide image path ("/paris.jpg") to a file path. Remote
// URLs are returned unchanged.
func (r *Renderer) Resolve(p string) string {
	if isRemote(p) {
		return p
	}
	return filepath.Join(r.baseDir, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// Render returns a width x height cell preview of the image at p. alt is
// shown in the placeholder when the image cannot be drawn.
func (r *Renderer) Render(p, alt string, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	if !r.enabled || p == "" {
		return Placeholder(alt, p, width, height)
	}

	key := cacheKey{path: p, width: width, height: height}
	if out, ok := r.cache[key]; ok {
		return out
	}

	out := r.render(p, alt, width, height)
	r.cache[key] = out
	return out
}

func (r *Renderer) render(p, alt string, width, height int) string {
	if isRemote(p) {
		log.Debug().Str("image", p).Msg("remote images are not fetched")
		return Placeholder(alt, p, width, height)
	}

	img, err := Load(r.Resolve(p))
	if err != nil {
		log.Debug().Err(err).Str("image", p).Msg("image preview unavailable")
		return Placeholder(alt, p, width, height)
	}

	thumb := imaging.Fit(img, width, height*2, imaging.Lanczos)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, HalfBlocks(thumb))
}

// Check reports whether the image at p can be previewed.
func (r *Renderer) Check(p string) error {
	if isRemote(p) {
		return ErrRemote
	}
	_, err := Load(r.Resolve(p))
	return err
}

// Load reads and decodes an image file. The file type is sniffed from its
// header before decoding.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("decode %s image: %w", kind.MIME.Value, err)
	}

	return img, nil
}

// HalfBlocks renders img with one glyph per pixel column and two pixel rows
// per line: the upper pixel as foreground, the lower as background.
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(img.At(x, y))
			if y+1 < b.Max.Y {
				style = style.Background(img.At(x, y+1))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// Placeholder draws a framed box naming the image that could not be shown.
func Placeholder(alt, p string, width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	label := styles.IconImage + " " + alt
	if alt == "" {
		label = styles.IconImage + " image"
	}

	label = ansi.Truncate(label, innerW, "…")

	body := label
	if p != "" && innerH > 1 {
		caption := styles.ImageCaptionStyle.Render(ansi.Truncate(p, innerW, "…"))
		body = lipgloss.JoinVertical(lipgloss.Center, label, caption)
	}

	return styles.ImageFrameStyle.Render(
		lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body),
	)
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
