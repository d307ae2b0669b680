package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color

	// Light marks palettes meant for light terminals; page text is then
	// rendered from glamour's light base style.
	Light bool
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "alpine"

// themes holds the built-in named palettes, one per destination mood.
var themes = map[string]Palette{
	// Glacier blues over a night sky.
	"alpine": {
		Primary:    lipgloss.Color("#8cc8ff"),
		Secondary:  lipgloss.Color("#b4e1f0"),
		Foreground: lipgloss.Color("#e6eef5"),
		Muted:      lipgloss.Color("#6a7f94"),
		Background: lipgloss.Color("#121a24"),
		Surface:    lipgloss.Color("#26384a"),
		Success:    lipgloss.Color("#8fd19e"),
		Warning:    lipgloss.Color("#f2c879"),
		Error:      lipgloss.Color("#ef7d7d"),
	},
	// Sepia ink on aged paper, like a printed guidebook.
	"parchment": {
		Primary:    lipgloss.Color("#8b4a1c"),
		Secondary:  lipgloss.Color("#6b5a2e"),
		Foreground: lipgloss.Color("#3b2f23"),
		Muted:      lipgloss.Color("#8a7a66"),
		Background: lipgloss.Color("#f4ead5"),
		Surface:    lipgloss.Color("#e2d3b3"),
		Success:    lipgloss.Color("#4f7a3a"),
		Warning:    lipgloss.Color("#b07a1e"),
		Error:      lipgloss.Color("#a33a2b"),
		Light:      true,
	},
	// Sea and terracotta.
	"riviera": {
		Primary:    lipgloss.Color("#3fb8c9"),
		Secondary:  lipgloss.Color("#e8946a"),
		Foreground: lipgloss.Color("#f1ece2"),
		Muted:      lipgloss.Color("#7b8a8f"),
		Background: lipgloss.Color("#14262c"),
		Surface:    lipgloss.Color("#24414a"),
		Success:    lipgloss.Color("#9ccf7a"),
		Warning:    lipgloss.Color("#f0c35a"),
		Error:      lipgloss.Color("#e46a5e"),
	},
	// Neon over dark streets.
	"metropolis": {
		Primary:    lipgloss.Color("#ffb347"),
		Secondary:  lipgloss.Color("#c792ea"),
		Foreground: lipgloss.Color("#e8e6f0"),
		Muted:      lipgloss.Color("#75708a"),
		Background: lipgloss.Color("#16141f"),
		Surface:    lipgloss.Color("#2e2a3d"),
		Success:    lipgloss.Color("#7fdba5"),
		Warning:    lipgloss.Color("#ffd166"),
		Error:      lipgloss.Color("#ff6b81"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// Blend mixes two colors in Lab space. t=0 returns from, t=1 returns to.
// Colors that cannot be converted fall back to the nearer endpoint.
func Blend(from, to color.Color, t float64) color.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}

	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(to)
	if !okA || !okB {
		if t < 0.5 {
			return from
		}
		return to
	}

	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// GlamourStyle returns the Glamour style for page text, derived from the
// active theme. Paragraphs are set in italics like the printed guide, lists
// use travel-log bullets and quotes are drawn as margin notes.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	noMargin := uint(0)
	italic := true
	bold := true
	quoteBar := "┃ "

	cfg.Document.Color = fg
	cfg.Document.Margin = &noMargin
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""

	cfg.Paragraph.Color = fg
	cfg.Paragraph.Italic = &italic

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = secondary

	cfg.Strong.Color = primary
	cfg.Strong.Bold = &bold
	cfg.Emph.Color = secondary

	cfg.Item.BlockPrefix = "◆ "
	cfg.Enumeration.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.BlockQuote.IndentToken = &quoteBar
	cfg.HorizontalRule.Color = muted
	cfg.HorizontalRule.Format = "\n· · ·\n"

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
