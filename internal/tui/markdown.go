package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/guide/internal/core/styles"
)

// markdownRenderer renders page text with glamour, keeping one renderer per
// wrap width and memoising output. Raw text is returned when glamour fails.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[string]string)}
}

func (m *markdownRenderer) render(text string, width int) string {
	if width < 1 {
		return text
	}

	if width != m.width || m.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
			return text
		}
		m.width = width
		m.renderer = r
		clear(m.cache)
	}

	if out, ok := m.cache[text]; ok {
		return out
	}

	rendered, err := m.renderer.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return text
	}

	out := strings.Trim(rendered, "\n")
	m.cache[text] = out
	return out
}
