// Package styles provides the lipgloss styles used by status output.
//
// Styles are package variables derived from the active Theme; Init swaps
// them all at once.
package styles

import "charm.land/lipgloss/v2"

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	NormalStyle  lipgloss.Style

	// InfoStyle is italic, for hints below tables
	InfoStyle lipgloss.Style
)

func init() {
	applyTheme(DefaultTheme)
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
}
