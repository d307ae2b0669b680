package tui

import (
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/tui/components"
)

const (
	headerHeight = 2 // title + divider
	footerHeight = 2 // buttons + help
	tocWidth     = 26
	railMaxWidth = 22
	columnGap    = 1

	minWidth  = 70
	minHeight = 16

	// Rows inside the page box.
	tabsRow        = 2
	tabsHeight     = 2
	pageBodyRowTab = tabsRow + tabsHeight + 1
	pageBodyRow    = 2
)

// layout is the screen geometry shared by the renderer and mouse
// hit-testing. All coordinates are absolute cells.
type layout struct {
	width, height int

	bodyY, bodyH int

	pageX, pageW   int
	innerX, innerY int
	innerW, innerH int

	railX, railY, railW int

	footerY int
}

func computeLayout(g *guide.Guide, width, height int) (layout, bool) {
	if width < minWidth || height < minHeight {
		return layout{width: width, height: height}, false
	}

	railW := 0
	for _, r := range g.Regions {
		railW = max(railW, lipgloss.Width(r.Label()))
	}
	railW = min(railW+3, railMaxWidth) // padding + border

	l := layout{
		width:  width,
		height: height,
		bodyY:  headerHeight,
		bodyH:  height - headerHeight - footerHeight,
		pageX:  tocWidth + columnGap,
		railW:  railW,
	}
	l.pageW = width - tocWidth - railW - 2*columnGap
	l.railX = l.pageX + l.pageW + columnGap
	l.railY = l.bodyY + max((l.bodyH-g.Len())/2, 0)

	// Rounded border plus one column of horizontal padding.
	l.innerX = l.pageX + 2
	l.innerY = l.bodyY + 1
	l.innerW = l.pageW - 4
	l.innerH = l.bodyH - 2

	l.footerY = height - footerHeight
	return l, true
}

// tocRow returns the body-relative row of a table of contents entry.
// Index guide.IntroIndex is the introduction.
func tocRow(index int) int {
	return 3 + index
}

// searchRow returns the body-relative row of the search box.
func searchRow(g *guide.Guide) int {
	return tocRow(g.Len()) + 1
}

// fit truncates and pads s to exactly width x height cells.
func fit(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		lines[i] = line + components.Pad(width-lipgloss.Width(line))
	}
	return strings.Join(lines, "\n")
}

// hitKind names what a mouse click landed on.
type hitKind string

const (
	hitNone   hitKind = ""
	hitTOC    hitKind = "toc"
	hitRail   hitKind = "rail"
	hitTab    hitKind = "tab"
	hitPrev   hitKind = "prev"
	hitNext   hitKind = "next"
	hitSearch hitKind = "search"
)

// zone is a clickable rectangle. Zones are lipgloss layers with an ID so
// the compositor can resolve clicks; they are never drawn.
func zone(kind hitKind, index, x, y, w, h int) *lipgloss.Layer {
	rows := make([]string, max(h, 1))
	for i := range rows {
		rows[i] = components.Pad(max(w, 1))
	}
	return lipgloss.NewLayer(strings.Join(rows, "\n")).
		ID(string(kind) + ":" + strconv.Itoa(index)).
		X(x).
		Y(y)
}

func parseHit(id string) (hitKind, int) {
	kind, idx, ok := strings.Cut(id, ":")
	if !ok {
		return hitNone, 0
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return hitNone, 0
	}
	return hitKind(kind), n
}
