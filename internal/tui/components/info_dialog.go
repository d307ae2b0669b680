package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/guide/internal/core/styles"
)

const (
	infoMaxHeight = 28
	infoMargin    = 4
	infoChrome    = 7 // border, padding, title, divider, help
	infoMinWidth  = 44
)

// InfoStatus annotates an info row with a check result.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups rows under a title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog is a scrollable modal of labeled rows, used for the guide
// summary and its image checks.
type InfoDialog struct {
	title    string
	helpText string
	width    int
	height   int
	viewport viewport.Model
}

// NewInfoDialog sizes the dialog for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, helpText string, width, height int) *InfoDialog {
	w, h := infoSize(width, height)

	d := &InfoDialog{
		title:    title,
		helpText: helpText,
		width:    w,
		height:   h,
		viewport: viewport.New(
			viewport.WithWidth(w-6),
			viewport.WithHeight(max(h-infoChrome, 1)),
		),
	}
	d.viewport.SetContent(renderInfoSections(sections, w-6))
	return d
}

func infoSize(width, height int) (int, int) {
	w := min(max(width*2/3, infoMinWidth), width-infoMargin)
	h := min(height-infoMargin, infoMaxHeight)
	return max(w, 10), max(h, infoChrome+1)
}

func renderInfoSections(sections []InfoSection, width int) string {
	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines,
				styles.HelpDialogSectionStyle.Render(section.Title),
				styles.TextSurfaceStyle.Render(strings.Repeat("─", max(width, 1))),
			)
		}

		labelWidth := 0
		for _, item := range section.Items {
			labelWidth = max(labelWidth, lipgloss.Width(item.Label))
		}
		for _, item := range section.Items {
			lines = append(lines, formatInfoItem(item, labelWidth))
		}
	}
	return strings.Join(lines, "\n")
}

func formatInfoItem(item InfoItem, labelWidth int) string {
	label := styles.TextForegroundBoldStyle.Render(item.Label + Pad(labelWidth-lipgloss.Width(item.Label)))
	row := label + "  " + styles.TextMutedStyle.Render(item.Value)

	switch item.Status {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔") + " " + row
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●") + " " + row
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘") + " " + row
	default:
		return row
	}
}

// ScrollUp scrolls the content up one line.
func (d *InfoDialog) ScrollUp() { d.viewport.ScrollUp(1) }

// ScrollDown scrolls the content down one line.
func (d *InfoDialog) ScrollDown() { d.viewport.ScrollDown(1) }

// View renders the dialog box.
func (d *InfoDialog) View() string {
	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(d.width-6, 1))),
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	return styles.ModalStyle.Width(d.width).Render(body)
}

// Overlay renders the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	return Overlay(background, d.View(), width, height)
}
