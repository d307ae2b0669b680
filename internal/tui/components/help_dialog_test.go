package components

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFromBindings_SkipsDisabled(t *testing.T) {
	next := key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next region"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)

	section := SectionFromBindings("Pages", next, hidden)

	assert.Equal(t, "Pages", section.Title)
	require.Len(t, section.Entries, 1)
	assert.Equal(t, HelpEntry{Key: "→/l", Desc: "next region"}, section.Entries[0])
}

func TestHelpDialog_Overlay(t *testing.T) {
	d := NewHelpDialog("Keys", []HelpDialogSection{
		{Title: "Pages", Entries: []HelpEntry{{Key: "n", Desc: "next region"}}},
		{Title: "Other", Entries: []HelpEntry{{Key: "q", Desc: "quit"}}},
	})

	out := ansi.Strip(d.Overlay("", 80, 24))
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "next region")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "esc/? close")
}

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(-1))
	assert.Equal(t, "   ", Pad(3))
	assert.Len(t, Pad(maxCachedPad), maxCachedPad)
	assert.Len(t, Pad(maxCachedPad+5), maxCachedPad+5)
}
