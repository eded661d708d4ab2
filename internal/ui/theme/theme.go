// Package theme holds the Math World palette: bright jungle colours on a
// night sky.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#8B5CF6") // purple: selection, focused input
	Secondary = lipgloss.Color("#14B8A6") // teal: progress
	Accent    = lipgloss.Color("#F97316") // orange: story text, default table accent
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	// Arcade colours for the score banner, menus and stars.
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Verdict is green for a right answer and rose for a wrong one.
func Verdict(correct bool) color.Color {
	if correct {
		return Success
	}
	return Error
}

// AccentColor parses a table's hex accent. Empty falls back to Accent.
func AccentColor(hex string) color.Color {
	if hex == "" {
		return Accent
	}
	return lipgloss.Color(hex)
}
