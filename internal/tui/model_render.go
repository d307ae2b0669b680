package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/core/styles"
	"github.com/colonyops/guide/internal/tui/components"
)

// View renders the viewer.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render draws the full screen, including any open overlay.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	l, ok := computeLayout(m.guide, m.width, m.height)
	if !ok {
		msg := fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.TextMutedStyle.Render(msg))
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(l),
		styles.DividerStyle.Render(strings.Repeat("─", l.width)),
		m.renderBodyRow(l),
		m.renderButtons(l),
		fit(m.renderHelpLine(), l.width, 1),
	)

	switch {
	case m.state == stateShowingHelp && m.helpDialog != nil:
		return m.helpDialog.Overlay(screen, m.width, m.height)
	case m.state == stateShowingInfo && m.infoDialog != nil:
		return m.infoDialog.Overlay(screen, m.width, m.height)
	}
	return screen
}

func (m Model) renderHeader(l layout) string {
	title := styles.HeaderTitleStyle.Render(styles.IconBook + " " + m.guide.Title)

	indicator := "Introduction"
	if r, ok := m.nav.Current(); ok {
		indicator = fmt.Sprintf("%d/%d %s", m.nav.State().Region+1, m.guide.Len(), r.Title)
	}
	branding := styles.BrandingStyle.Render(indicator)

	gap := l.width - lipgloss.Width(title) - lipgloss.Width(branding)
	return fit(title+components.Pad(gap)+branding, l.width, 1)
}

func (m Model) renderBodyRow(l layout) string {
	gap := fit("", columnGap, l.bodyH)

	page := fit(m.renderPage(), l.innerW, l.innerH)
	page = fit(m.anim.apply(page, l.innerW, l.innerH), l.innerW, l.innerH)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		fit(m.renderTOC(), tocWidth, l.bodyH),
		gap,
		styles.PageStyle.Render(page),
		gap,
		fit(m.renderRail(l), l.railW, l.bodyH),
	)
}

// renderTOC draws the table of contents column followed by the search box.
func (m Model) renderTOC() string {
	state := m.nav.State()
	labelWidth := tocWidth - 2

	item := func(index int, label string) string {
		label = fit(label, labelWidth, 1)
		switch {
		case m.state == stateTOC && index == m.tocCursor:
			return styles.TOCCursorStyle.Render(label)
		case index == state.Region:
			return styles.TOCItemActiveStyle.Render(label)
		default:
			return styles.TOCItemStyle.Render(label)
		}
	}

	lines := []string{
		styles.TOCTitleStyle.Render("Table of Contents"),
		"",
		item(guide.IntroIndex, "Introduction"),
	}
	for i, r := range m.guide.Regions {
		lines = append(lines, item(i, r.Label()))
	}

	field := styles.SearchFieldStyle
	if m.state == stateSearch {
		field = styles.SearchFieldFocusedStyle
	}
	lines = append(lines, "", field.Render(m.search.View()))

	return strings.Join(lines, "\n")
}

// renderPage draws the inside of the page box without any transition.
func (m Model) renderPage() string {
	r, ok := m.nav.Current()
	if !ok {
		return m.viewport.View()
	}

	rows := []string{
		styles.PageHeadingStyle.Render(r.Label()),
		"",
	}
	if r.HasSubEntries() {
		tabs := m.tabLabels(r)
		parts := make([]string, 0, 2*len(tabs))
		for i, tab := range tabs {
			if i > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, tab)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...), "")
	}
	rows = append(rows, m.viewport.View())

	return strings.Join(rows, "\n")
}

// tabLabels renders one tab per sub-entry of r, the selected one active.
func (m Model) tabLabels(r guide.Region) []string {
	sub := m.nav.State().Sub
	entries := r.SubEntries()
	tabs := make([]string, len(entries))
	for i, e := range entries {
		if i == sub {
			tabs[i] = styles.SubTabActiveStyle.Render(e.Label())
		} else {
			tabs[i] = styles.SubTabStyle.Render(e.Label())
		}
	}
	return tabs
}

// renderBody produces the scrollable page content: the image followed by
// the text, or the introduction's title, banner and tagline.
func (m Model) renderBody(width, height int) string {
	if r, ok := m.nav.Current(); ok {
		content, image, alt := r.Title, "", r.Title
		switch body := r.Body.(type) {
		case guide.SimpleBody:
			content, image = body.Content, body.Image
		case guide.SubEntriesBody:
			if e, ok := m.nav.CurrentSubEntry(); ok {
				content, image, alt = e.Content, e.Image, e.Title
			}
		}

		imgH := min(max(height/2, 3), 14)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.images.Render(image, alt, width, imgH),
			"",
			m.markdown.render(content, width),
		)
	}

	imgH := min(max(height-6, 3), 16)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		center(styles.PageTitleStyle.Render(m.guide.Title)),
		"",
		center(m.images.Render(m.guide.Banner, m.guide.Title, width, imgH)),
		"",
		center(styles.PageTaglineStyle.Render(m.guide.Tagline)),
	)
}

// renderRail draws one control per region, vertically centered.
func (m Model) renderRail(l layout) string {
	current := m.nav.State().Region
	lines := make([]string, 0, l.railY-l.bodyY+m.guide.Len())
	for range l.railY - l.bodyY {
		lines = append(lines, "")
	}

	for i, r := range m.guide.Regions {
		label := fit(r.Label(), l.railW-3, 1)
		if i == current {
			lines = append(lines, styles.RailItemActiveStyle.Render(label))
		} else {
			lines = append(lines, styles.RailItemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

// buttons returns the rendered Previous and Next buttons, styled disabled at
// the ends of the guide.
func (m Model) buttons() (string, string) {
	prev := styles.ButtonDisabledStyle.Render("◀ Previous")
	if m.nav.CanPrevious() {
		prev = styles.ButtonStyle.Render("◀ Previous")
	}
	next := styles.ButtonDisabledStyle.Render("Next ▶")
	if m.nav.CanNext() {
		next = styles.ButtonStyle.Render("Next ▶")
	}
	return prev, next
}

func (m Model) renderButtons(l layout) string {
	prev, next := m.buttons()
	gap := l.pageW - lipgloss.Width(prev) - lipgloss.Width(next)
	return fit(components.Pad(l.pageX)+prev+components.Pad(gap)+next, l.width, 1)
}

func (m Model) renderHelpLine() string {
	switch m.state {
	case stateTOC:
		return m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back})
	case stateSearch:
		return m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Select})
	default:
		return m.help.View(m.keys)
	}
}
