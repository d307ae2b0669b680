// Package tui implements the interactive travel guide viewer.
package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/guide/internal/core/config"
	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/core/imgpreview"
	"github.com/colonyops/guide/internal/core/nav"
	"github.com/colonyops/guide/internal/core/styles"
	"github.com/colonyops/guide/internal/tui/components"
	"github.com/colonyops/guide/pkg/logutils"
)

// UIState represents which part of the viewer receives key presses.
type UIState int

const (
	stateNormal UIState = iota
	stateTOC
	stateSearch
	stateShowingHelp
	stateShowingInfo
)

// Options configures the viewer.
type Options struct {
	Guide     *guide.Guide         // content table, required
	Config    *config.Config       // nil uses config.DefaultConfig
	Images    *imgpreview.Renderer // nil renders placeholders only
	GuideFile string               // shown in the info dialog; empty for the built-in guide
	Start     int                  // initial region, guide.IntroIndex for the introduction
}

// Model is the Bubble Tea model of the travel guide viewer.
type Model struct {
	cfg       *config.Config
	guide     *guide.Guide
	guideFile string
	nav       *nav.Controller
	images    *imgpreview.Renderer
	markdown  *markdownRenderer
	logger    zerolog.Logger

	keys     KeyMap
	help     help.Model
	search   textinput.Model
	viewport viewport.Model

	state      UIState
	tocCursor  int
	helpDialog *components.HelpDialog
	infoDialog *components.InfoDialog

	anim    transition
	animGen int

	width    int
	height   int
	quitting bool
}

// New creates a viewer positioned at opts.Start.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	images := opts.Images
	if images == nil {
		images = imgpreview.New(opts.Guide.AssetsDir, false)
	}

	controller := nav.New(opts.Guide)
	controller.SelectRegion(opts.Start)

	ti := textinput.New()
	ti.Placeholder = "Search region..."
	ti.Prompt = styles.IconSearch + " "
	ti.CharLimit = 64
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Prompt = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	inputStyles.Blurred.Prompt = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	h := help.New()
	h.Styles.ShortKey = styles.TextPrimaryBoldStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle

	m := Model{
		cfg:       cfg,
		guide:     opts.Guide,
		guideFile: opts.GuideFile,
		nav:       controller,
		images:    images,
		markdown:  newMarkdownRenderer(),
		logger:    logutils.Component(log.Logger, "tui"),
		keys:      DefaultKeyMap(),
		help:      h,
		search:    ti,
		viewport:  viewport.New(),
		tocCursor: controller.State().Region,
	}

	if cfg.TUI.AnimationsEnabled() && controller.State().IsIntroduction() {
		m.animGen++
		m.anim = newTransition(transitionIntro, "", cfg.TUI.TransitionFrames, m.animGen)
	}
	return m
}

// State returns the current navigation state.
func (m Model) State() nav.ViewState {
	return m.nav.State()
}

// Init starts the entrance animation of the first page.
func (m Model) Init() tea.Cmd {
	if m.anim.active() {
		return scheduleTransitionTick(m.cfg.TUI.FrameInterval, m.anim.gen)
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.syncContent()
		return m, nil
	case transitionTickMsg:
		if msg.gen != m.anim.gen || !m.anim.advance() {
			return m, nil
		}
		return m, scheduleTransitionTick(m.cfg.TUI.FrameInterval, msg.gen)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())
	case tea.MouseWheelMsg:
		m.handleWheel(msg.Mouse())
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.state == stateSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.nav.SetSearch(m.search.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateShowingHelp:
		if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit) {
			m.state = stateNormal
			m.helpDialog = nil
		}
		return m, nil
	case stateShowingInfo:
		return m.handleInfoKey(msg), nil
	case stateSearch:
		return m.handleSearchKey(msg)
	case stateTOC:
		return m.handleTOCKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.navigate(m.nav.GoNext)
	case key.Matches(msg, m.keys.Prev):
		return m.navigate(m.nav.GoPrevious)
	case key.Matches(msg, m.keys.Intro):
		return m.selectRegion(guide.IntroIndex)
	case key.Matches(msg, m.keys.Jump):
		return m.selectRegion(int(msg.String()[0]-'1'))
	case key.Matches(msg, m.keys.SubNext):
		return m.selectSub(func() bool { return m.nav.CycleSubEntry(1) })
	case key.Matches(msg, m.keys.SubPrev):
		return m.selectSub(func() bool { return m.nav.CycleSubEntry(-1) })
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.TOC):
		m.state = stateTOC
		m.tocCursor = m.nav.State().Region
	case key.Matches(msg, m.keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.keys.Info):
		m.openInfo()
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.helpSections())
	}
	return m, nil
}

func (m Model) handleTOCKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tocCursor = max(m.tocCursor-1, guide.IntroIndex)
	case key.Matches(msg, m.keys.Down):
		m.tocCursor = min(m.tocCursor+1, m.guide.Len()-1)
	case key.Matches(msg, m.keys.Select):
		m.state = stateNormal
		return m.selectRegion(m.tocCursor)
	case key.Matches(msg, m.keys.Back, m.keys.TOC):
		m.state = stateNormal
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back, m.keys.Select) {
		m.state = stateNormal
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Stored only; nothing filters on it.
	m.nav.SetSearch(m.search.Value())
	return m, cmd
}

func (m Model) handleInfoKey(msg tea.KeyPressMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.infoDialog.ScrollDown()
	case key.Matches(msg, m.keys.Up):
		m.infoDialog.ScrollUp()
	case key.Matches(msg, m.keys.Back, m.keys.Info, m.keys.Quit):
		m.state = stateNormal
		m.infoDialog = nil
	}
	return m
}

func (m Model) focusSearch() (tea.Model, tea.Cmd) {
	m.state = stateSearch
	return m, m.search.Focus()
}

// navigate applies a region change and starts its transition.
func (m Model) navigate(apply func() bool) (tea.Model, tea.Cmd) {
	before := m.nav.State()
	outgoing := m.renderPage()
	if !apply() {
		return m, nil
	}

	after := m.nav.State()
	m.logger.Debug().
		Int("from", before.Region).
		Int("to", after.Region).
		Msg("region changed")

	m.syncContent()
	if before.Region == after.Region {
		// Reselecting the current region only resets its sub-entry.
		return m, nil
	}
	return m, m.startTransition(after, outgoing)
}

func (m Model) selectRegion(i int) (tea.Model, tea.Cmd) {
	return m.navigate(func() bool { return m.nav.SelectRegion(i) })
}

func (m Model) selectSub(apply func() bool) (tea.Model, tea.Cmd) {
	if apply() {
		m.syncContent()
	}
	return m, nil
}

func (m *Model) startTransition(to nav.ViewState, outgoing string) tea.Cmd {
	if !m.cfg.TUI.AnimationsEnabled() {
		return nil
	}

	kind := transitionRegion
	if to.IsIntroduction() {
		kind = transitionIntro
	}
	if m.width == 0 {
		outgoing = ""
	}

	m.animGen++
	m.anim = newTransition(kind, outgoing, m.cfg.TUI.TransitionFrames, m.animGen)
	return scheduleTransitionTick(m.cfg.TUI.FrameInterval, m.animGen)
}

func (m Model) handleMouseClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft || m.state == stateShowingHelp || m.state == stateShowingInfo {
		return m, nil
	}

	kind, index := m.hit(mouse.X, mouse.Y)
	if kind != hitSearch && m.state == stateSearch {
		m.search.Blur()
	}
	if kind != hitNone {
		m.state = stateNormal
	}

	switch kind {
	case hitTOC, hitRail:
		return m.selectRegion(index)
	case hitTab:
		return m.selectSub(func() bool { return m.nav.SelectSubEntry(index) })
	case hitPrev:
		return m.navigate(m.nav.GoPrevious)
	case hitNext:
		return m.navigate(m.nav.GoNext)
	case hitSearch:
		return m.focusSearch()
	}
	return m, nil
}

func (m *Model) handleWheel(mouse tea.Mouse) {
	switch m.state {
	case stateShowingInfo:
		switch mouse.Button {
		case tea.MouseWheelDown:
			m.infoDialog.ScrollDown()
		case tea.MouseWheelUp:
			m.infoDialog.ScrollUp()
		}
	case stateNormal:
		switch mouse.Button {
		case tea.MouseWheelDown:
			m.viewport.ScrollDown(3)
		case tea.MouseWheelUp:
			m.viewport.ScrollUp(3)
		}
	}
}

// hit resolves a click to the control under it.
func (m Model) hit(x, y int) (hitKind, int) {
	l, ok := computeLayout(m.guide, m.width, m.height)
	if !ok {
		return hitNone, 0
	}
	zones := m.zones(l)
	if len(zones) == 0 {
		return hitNone, 0
	}
	return parseHit(lipgloss.NewCompositor(zones...).Hit(x, y).ID())
}

// zones lists the clickable controls for the current state.
func (m Model) zones(l layout) []*lipgloss.Layer {
	zones := []*lipgloss.Layer{
		zone(hitTOC, guide.IntroIndex, 0, l.bodyY+tocRow(guide.IntroIndex), tocWidth, 1),
		zone(hitSearch, 0, 0, l.bodyY+searchRow(m.guide), tocWidth, 1),
	}

	for i := range m.guide.Regions {
		zones = append(zones,
			zone(hitTOC, i, 0, l.bodyY+tocRow(i), tocWidth, 1),
			zone(hitRail, i, l.railX, l.railY+i, l.railW, 1),
		)
	}

	if r, ok := m.nav.Current(); ok && r.HasSubEntries() {
		x := l.innerX
		for i, label := range m.tabLabels(r) {
			w := lipgloss.Width(label)
			zones = append(zones, zone(hitTab, i, x, l.innerY+tabsRow, w, tabsHeight))
			x += w + 1
		}
	}

	prev, next := m.buttons()
	if m.nav.CanPrevious() {
		zones = append(zones, zone(hitPrev, 0, l.pageX, l.footerY, lipgloss.Width(prev), 1))
	}
	if m.nav.CanNext() {
		w := lipgloss.Width(next)
		zones = append(zones, zone(hitNext, 0, l.pageX+l.pageW-w, l.footerY, w, 1))
	}
	return zones
}

// syncContent refills the scrollable page body after a state or size change.
func (m *Model) syncContent() {
	l, ok := computeLayout(m.guide, m.width, m.height)
	if !ok {
		return
	}

	bodyRow := pageBodyRow
	if m.nav.State().IsIntroduction() {
		bodyRow = 0
	} else if r, ok := m.nav.Current(); ok && r.HasSubEntries() {
		bodyRow = pageBodyRowTab
	}

	m.viewport.SetWidth(l.innerW)
	m.viewport.SetHeight(max(l.innerH-bodyRow, 1))
	m.viewport.SetContent(m.renderBody(l.innerW, l.innerH-bodyRow))
	m.viewport.GotoTop()
	m.search.SetWidth(tocWidth - 6)
}
