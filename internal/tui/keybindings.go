package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/guide/internal/tui/components"
)

// KeyMap holds every binding the viewer reacts to.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Intro   key.Binding
	Jump    key.Binding
	SubNext key.Binding
	SubPrev key.Binding

	ScrollDown key.Binding
	ScrollUp   key.Binding
	PageDown   key.Binding
	PageUp     key.Binding

	TOC    key.Binding
	Search key.Binding
	Info   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Table of contents and overlays.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the viewer's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		Prev:    key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Intro:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "introduction")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to region")),
		SubNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sub-entry")),
		SubPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous sub-entry")),

		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),

		TOC:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "contents")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Info:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "guide info")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.SubNext, k.TOC, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Intro, k.Jump, k.SubNext, k.SubPrev},
		{k.ScrollDown, k.ScrollUp, k.PageDown, k.PageUp},
		{k.TOC, k.Search, k.Info, k.Help, k.Quit},
	}
}

func (k KeyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		components.SectionFromBindings("Pages", k.Prev, k.Next, k.Intro, k.Jump, k.SubNext, k.SubPrev),
		components.SectionFromBindings("Reading", k.ScrollDown, k.ScrollUp, k.PageDown, k.PageUp),
		components.SectionFromBindings("Contents", k.TOC, k.Up, k.Down, k.Select, k.Back),
		components.SectionFromBindings("General", k.Search, k.Info, k.Help, k.Quit),
	}
}
