// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/guide/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// SectionFromBindings builds a help section from key bindings, skipping
// disabled ones.
func SectionFromBindings(title string, bindings ...key.Binding) HelpDialogSection {
	section := HelpDialogSection{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		section.Entries = append(section.Entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return section
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	title := styles.TextForegroundBoldStyle.Render(h.title)
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", helpKeyWidth+14))

	var lines []string
	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), separator)
		}

		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the help dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Overlay(background, h.View(), width, height)
}

// Overlay composites modal over background, centered in a width x height
// screen.
func Overlay(background, modal string, width, height int) string {
	modalLayer := lipgloss.NewLayer(modal)
	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(lipgloss.NewLayer(background), modalLayer).Render()
}

const helpKeyWidth = 14

// formatKeyDesc aligns keys to a fixed display width.
func formatKeyDesc(k, desc string) string {
	paddedKey := k + Pad(helpKeyWidth-lipgloss.Width(k))
	return styles.TextPrimaryBoldStyle.Render(paddedKey) + styles.TextForegroundStyle.Render(desc)
}
