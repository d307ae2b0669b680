// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextErrorStyle          lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextSurfaceStyle        lipgloss.Style

	// Header bar.
	HeaderTitleStyle lipgloss.Style
	BrandingStyle    lipgloss.Style

	// Table of contents.
	TOCTitleStyle      lipgloss.Style
	TOCItemStyle       lipgloss.Style
	TOCItemActiveStyle lipgloss.Style
	TOCCursorStyle     lipgloss.Style

	// Side rail, one row per region.
	RailItemStyle       lipgloss.Style
	RailItemActiveStyle lipgloss.Style

	// Sub-entry tabs.
	SubTabStyle       lipgloss.Style
	SubTabActiveStyle lipgloss.Style

	// Book page.
	PageStyle         lipgloss.Style
	PageTitleStyle    lipgloss.Style
	PageHeadingStyle  lipgloss.Style
	PageTaglineStyle  lipgloss.Style
	PagePlainStyle    lipgloss.Style
	ImageFrameStyle   lipgloss.Style
	ImageCaptionStyle lipgloss.Style

	// Search box.
	SearchFieldStyle        lipgloss.Style
	SearchFieldFocusedStyle lipgloss.Style

	// Previous/Next buttons.
	ButtonStyle         lipgloss.Style
	ButtonDisabledStyle lipgloss.Style

	// Modals.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Help overlay.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// CLI output.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	BrandingStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Padding(0, 1)

	TOCTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	TOCItemStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(2)
	TOCItemActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingLeft(2)
	TOCCursorStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		PaddingLeft(2)

	RailItemStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, true, false, false).
		BorderForeground(ColorMuted)
	RailItemActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, true, false, false).
		BorderForeground(ColorPrimary)

	SubTabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, false, true, false).
		BorderForeground(ColorMuted)
	SubTabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, false, true, false).
		BorderForeground(ColorPrimary)

	PageStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	PageTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	PageHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	PageTaglineStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	PagePlainStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Italic(true)
	ImageFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorSurface).
		Foreground(ColorMuted)
	ImageCaptionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	SearchFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	SearchFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface).
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
