package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// Inner width bounds for everything drawn inside the cabinet.
const (
	minContentWidth = 20
	maxContentWidth = 60
	cabinetChrome   = 6 // double border plus inner padding
)

// ContentWidth is the shared inner width for a frame, so cards and
// buttons line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetChrome, minContentWidth), maxContentWidth)
}

// CabinetFrame centres content in a double-bordered box filling the
// screen. The border takes the given colour; nil means theme.Primary.
func CabinetFrame(content string, width, height int, border color.Color) string {
	if border == nil {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton is one menu row. The selected row is filled yellow.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !selected {
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return style.Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}

// FeedbackBanner is the line shown under an answered problem.
func FeedbackBanner(text string, correct bool, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Verdict(correct)).
		Render(text)
}
