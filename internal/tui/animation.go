package tui

import (
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/guide/internal/core/styles"
	"github.com/colonyops/guide/internal/tui/components"
)

// transitionKind selects the entrance effect of a page.
type transitionKind int

const (
	transitionNone transitionKind = iota
	transitionIntro
	transitionRegion
)

const (
	slideColumns = 8 // horizontal travel of a region page
	introDrop    = 2 // rows the introduction descends while fading in
)

// transition animates a page change. A region change first slides the
// outgoing page out to the left, then slides the new page in from the
// right; both fade. The introduction fades in while settling down from
// above.
type transition struct {
	kind        transitionKind
	outgoing    string
	exitFrames  int
	enterFrames int
	frame       int
	gen         int
}

type transitionTickMsg struct {
	gen int
}

func newTransition(kind transitionKind, outgoing string, frames, gen int) transition {
	t := transition{
		kind:        kind,
		outgoing:    outgoing,
		enterFrames: max(frames, 1),
		gen:         gen,
	}
	if outgoing != "" {
		t.exitFrames = max(frames/2, 1)
	}
	return t
}

func (t transition) active() bool {
	return t.kind != transitionNone && t.frame < t.exitFrames+t.enterFrames
}

func (t transition) exiting() bool {
	return t.frame < t.exitFrames
}

// progress returns how far the current phase has run, in (0, 1].
func (t transition) progress() float64 {
	if t.exiting() {
		return float64(t.frame+1) / float64(t.exitFrames)
	}
	return float64(t.frame-t.exitFrames+1) / float64(t.enterFrames)
}

// advance moves one frame forward and reports whether more frames remain.
func (t *transition) advance() bool {
	t.frame++
	if !t.active() {
		t.kind = transitionNone
		t.outgoing = ""
		return false
	}
	return true
}

// apply renders the current frame. page is the fully drawn incoming page,
// width x height cells.
func (t transition) apply(page string, width, height int) string {
	if !t.active() {
		return page
	}

	p := t.progress()
	if t.exiting() {
		shift := int(math.Round(p * slideColumns))
		return fade(slideLeft(t.outgoing, shift), 1-p)
	}

	switch t.kind {
	case transitionIntro:
		drop := int(math.Round((1 - p) * introDrop))
		lines := strings.Split(page, "\n")
		lines = lines[min(drop, len(lines)):]
		for len(lines) < height {
			lines = append(lines, "")
		}
		return fade(strings.Join(lines[:max(height, 0)], "\n"), p)
	case transitionRegion:
		shift := int(math.Round((1 - p) * slideColumns))
		return fade(slideRight(page, shift, width), p)
	default:
		return page
	}
}

func slideLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.TruncateLeft(line, n, "")
	}
	return strings.Join(lines, "\n")
}

func slideRight(s string, n, width int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(components.Pad(n)+line, width, "")
	}
	return strings.Join(lines, "\n")
}

// fade recolors s between the background (alpha 0) and the foreground
// (alpha 1). Styling is dropped while fading; a full alpha returns s as is.
func fade(s string, alpha float64) string {
	if alpha >= 1 {
		return s
	}
	style := lipgloss.NewStyle().Foreground(styles.Blend(styles.ColorBackground, styles.ColorForeground, max(alpha, 0)))

	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func scheduleTransitionTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return transitionTickMsg{gen: gen}
	})
}
