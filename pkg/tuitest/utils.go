// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// frames can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single printable rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key, Text: string(key)})
}

// KeyCode creates a key press message for a special key such as
// [tea.KeyRight] or [tea.KeyEsc].
func KeyCode(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// Type returns one key press per rune of s, as a user typing s would send.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.Msg { return KeyCode(tea.KeyDown) }

// KeyUp creates an up arrow key press message.
func KeyUp() tea.Msg { return KeyCode(tea.KeyUp) }

// KeyEnter creates an enter key press message.
func KeyEnter() tea.Msg { return KeyCode(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.Msg { return KeyCode(tea.KeyEscape) }

// KeyTab creates a tab key press message.
func KeyTab() tea.Msg { return KeyCode(tea.KeyTab) }

// KeyShiftTab creates a shift+tab key press message.
func KeyShiftTab() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

// Click creates a left mouse click at the given cell.
func Click(x, y int) tea.Msg {
	return tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
