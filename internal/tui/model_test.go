package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/guide/internal/core/config"
	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/core/nav"
	"github.com/colonyops/guide/pkg/tuitest"
)

const (
	testWidth  = 120
	testHeight = 40
)

func testConfig(animations bool) *config.Config {
	cfg := config.DefaultConfig()
	cfg.TUI.Animations = &animations
	return &cfg
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Guide == nil {
		opts.Guide = guide.Default()
	}
	if opts.Config == nil {
		opts.Config = testConfig(false)
	}
	return update(t, New(opts), tuitest.WindowSize(testWidth, testHeight))
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func screen(m Model) string {
	return tuitest.StripANSI(m.render())
}

func testLayout(t *testing.T, m Model) layout {
	t.Helper()
	l, ok := computeLayout(m.guide, m.width, m.height)
	require.True(t, ok)
	return l
}

func TestModel_StartsOnIntroduction(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	assert.Equal(t, nav.ViewState{Region: guide.IntroIndex}, m.State())

	out := screen(m)
	assert.Contains(t, out, "Machtls Skispaß")
	assert.Contains(t, out, "Explore the world's most amazing destinations!")
	assert.Contains(t, out, "Table of Contents")
	assert.Contains(t, out, "Introduction")
	assert.Contains(t, out, "Search region...")
}

func TestModel_NextFromIntroductionShowsFirstSubEntry(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('n'))
	assert.Equal(t, nav.ViewState{Region: 0, Sub: 0}, m.State())

	out := screen(m)
	assert.Contains(t, out, "1. Paris")
	assert.Contains(t, out, "1.1 About")
	assert.Contains(t, out, "1.2 Overview Map")
	assert.Contains(t, out, "Welcome to Machtls")

	m = update(t, m, tuitest.KeyTab())
	assert.Equal(t, 1, m.State().Sub)

	out = screen(m)
	assert.Contains(t, out, "overview map highlighting")
	assert.NotContains(t, out, "Welcome to Machtls")

	m = update(t, m, tuitest.KeyShiftTab())
	assert.Equal(t, 0, m.State().Sub)
}

func TestModel_BoundariesAreNoOps(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyCode(tea.KeyLeft))
	assert.Equal(t, guide.IntroIndex, m.State().Region)

	m = update(t, m, tuitest.KeyPress('3'))
	assert.Equal(t, 2, m.State().Region)
	assert.Contains(t, screen(m), "A bustling metropolis")

	m = update(t, m, tuitest.KeyCode(tea.KeyRight), tuitest.KeyPress('l'))
	assert.Equal(t, 2, m.State().Region)
	assert.False(t, m.nav.CanNext())

	m = update(t, m, tuitest.KeyPress('p'))
	assert.Equal(t, 1, m.State().Region)
}

func TestModel_JumpBeyondLastRegionIgnored(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('9'))
	assert.Equal(t, guide.IntroIndex, m.State().Region)
}

func TestModel_SubEntryKeysOnSimpleRegion(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('2'), tuitest.KeyTab())
	assert.Equal(t, nav.ViewState{Region: 1}, m.State())
	assert.Contains(t, screen(m), "classical Buddhist temples")
}

func TestModel_ZeroReturnsToIntroduction(t *testing.T) {
	m := newTestModel(t, Options{Start: 1})
	require.Equal(t, 1, m.State().Region)

	m = update(t, m, tuitest.KeyPress('0'))
	assert.True(t, m.State().IsIntroduction())
	assert.Contains(t, screen(m), "Explore the world's most amazing destinations!")
}

func TestModel_SearchIsInert(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	m = update(t, m, tuitest.KeyPress('n'))
	before := m.renderPage()

	m = update(t, m, tuitest.KeyPress('/'))
	assert.Equal(t, stateSearch, m.state)

	m = update(t, m, tuitest.Type("kyoto")...)
	m = update(t, m, tuitest.KeyEsc())

	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, "kyoto", m.State().Search)
	assert.Equal(t, 0, m.State().Region, "typed keys are not navigation")
	assert.Equal(t, before, m.renderPage())
	assert.Contains(t, screen(m), "kyoto")
}

func TestModel_SearchCapturesPaste(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	m = update(t, m, tuitest.KeyPress('/'))
	require.Equal(t, stateSearch, m.state)

	m = update(t, m, tea.PasteMsg{Content: "kyoto"})

	assert.Equal(t, "kyoto", m.State().Search)
	assert.Equal(t, stateSearch, m.state)
}

func TestModel_TableOfContentsKeyboard(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('t'))
	require.Equal(t, stateTOC, m.state)
	assert.Equal(t, guide.IntroIndex, m.tocCursor)

	m = update(t, m, tuitest.KeyPress('j'), tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, 2, m.tocCursor, "cursor stops on the last region")

	m = update(t, m, tuitest.KeyUp(), tuitest.KeyEnter())
	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, 1, m.State().Region)

	m = update(t, m, tuitest.KeyPress('t'), tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, 1, m.State().Region)
}

func TestModel_MouseRailAndTOC(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	l := testLayout(t, m)

	m = update(t, m, tuitest.Click(l.railX+1, l.railY+2))
	assert.Equal(t, 2, m.State().Region)

	m = update(t, m, tuitest.Click(3, l.bodyY+tocRow(guide.IntroIndex)))
	assert.True(t, m.State().IsIntroduction())

	m = update(t, m, tuitest.Click(3, l.bodyY+tocRow(1)))
	assert.Equal(t, 1, m.State().Region)

	m = update(t, m, tuitest.Click(l.width-1, 0))
	assert.Equal(t, 1, m.State().Region, "clicks outside controls do nothing")
}

func TestModel_MouseButtons(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	l := testLayout(t, m)

	prevX := l.pageX + 1
	nextX := l.pageX + l.pageW - 2

	m = update(t, m, tuitest.Click(prevX, l.footerY))
	assert.True(t, m.State().IsIntroduction(), "previous is disabled on the introduction")

	m = update(t, m, tuitest.Click(nextX, l.footerY))
	assert.Equal(t, 0, m.State().Region)

	m = update(t, m, tuitest.Click(prevX, l.footerY))
	assert.True(t, m.State().IsIntroduction())
}

func TestModel_MouseSubEntryTab(t *testing.T) {
	m := newTestModel(t, Options{Start: 0})
	l := testLayout(t, m)

	r, ok := m.nav.Current()
	require.True(t, ok)
	first := lipgloss.Width(m.tabLabels(r)[0])

	m = update(t, m, tuitest.Click(l.innerX+first+2, l.innerY+tabsRow))
	assert.Equal(t, nav.ViewState{Region: 0, Sub: 1}, m.State())
	assert.Contains(t, screen(m), "overview map highlighting")
}

func TestModel_MouseSearchFocus(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	l := testLayout(t, m)

	m = update(t, m, tuitest.Click(4, l.bodyY+searchRow(m.guide)))
	assert.Equal(t, stateSearch, m.state)

	m = update(t, m, tuitest.Click(l.railX+1, l.railY))
	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, 0, m.State().Region)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('?'))
	require.Equal(t, stateShowingHelp, m.state)
	out := screen(m)
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "next sub-entry")

	m = update(t, m, tuitest.KeyPress('n'))
	assert.True(t, m.State().IsIntroduction(), "keys do not reach the page behind the overlay")

	m = update(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
	assert.NotContains(t, screen(m), "Keyboard Shortcuts")
}

func TestModel_InfoOverlay(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	m = update(t, m, tuitest.KeyPress('i'))
	require.Equal(t, stateShowingInfo, m.state)

	out := screen(m)
	assert.Contains(t, out, "Guide Info")
	assert.Contains(t, out, "built-in")
	assert.Contains(t, out, "/skier.jpg")
	assert.Contains(t, out, "missing")

	m = update(t, m, tuitest.KeyPress('j'), tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
	assert.Nil(t, m.infoDialog)
}

func TestModel_MouseWheelScrollsPage(t *testing.T) {
	long := strings.Repeat("A paragraph about the old town.\n\n", 60)
	g := &guide.Guide{
		Title: "Long",
		Regions: []guide.Region{
			{Number: "1", Title: "Porto", Slug: "porto", Body: guide.SimpleBody{Content: long}},
		},
	}
	m := newTestModel(t, Options{Guide: g, Start: 0})
	require.True(t, m.viewport.AtTop())

	m = update(t, m, tea.MouseWheelMsg{X: 60, Y: 20, Button: tea.MouseWheelDown})
	assert.False(t, m.viewport.AtTop())

	m = update(t, m, tea.MouseWheelMsg{X: 60, Y: 20, Button: tea.MouseWheelUp})
	assert.True(t, m.viewport.AtTop())
}

func TestModel_TooSmall(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	m = update(t, m, tuitest.WindowSize(40, 10))

	assert.Contains(t, screen(m), "Terminal too small")

	m = update(t, m, tuitest.Click(1, 3))
	assert.True(t, m.State().IsIntroduction())
}

func TestModel_RenderFillsScreen(t *testing.T) {
	m := newTestModel(t, Options{Start: 0})

	out := m.render()
	assert.Equal(t, testHeight, lipgloss.Height(out))
	assert.Equal(t, testWidth, lipgloss.Width(out))
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})

	next, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View().Content)
}

func TestModel_CtrlCQuitsFromSearch(t *testing.T) {
	m := newTestModel(t, Options{Start: guide.IntroIndex})
	m = update(t, m, tuitest.KeyPress('/'))

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl}))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
