package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

const (
	arcadeTitle   = "M · A · T · H   W · O · R · L · D"
	arcadeTagline = "Aadhrith's World 🦁"
	noStoryKey    = "⚠ Set an LLM API key for stories (see mathworld --help)"

	// buttonWidth fits the longest label, "MAGIC TABLES", with the cursor.
	buttonWidth = 22
)

func centered(cw int) lipgloss.Style {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(arcadeTitle)
	tagline := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(arcadeTagline)
	return centered(cw).Render(title + "\n" + tagline)
}

// renderStatus is the best score and sound state in a double box.
func renderStatus(st Status, cw int, compact bool) string {
	best := fmt.Sprintf("★ BEST SCORE %d", st.HighScore)
	if compact {
		best = fmt.Sprintf("★%d", st.HighScore)
	}
	sound := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("♪ SOUND ON")
	if st.Muted {
		sound = lipgloss.NewStyle().Foreground(theme.TextDim).Render("♪ SOUND OFF")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(best) + "  " + sound)
}

// renderMenu draws arcade buttons, or plain lines when compact since the
// bordered buttons need three rows each.
func renderMenu(items []string, selected, cw int, compact bool) string {
	rows := make([]string, len(items))
	for i, label := range items {
		switch {
		case !compact:
			rows[i] = components.ArcadeButton(label, i == selected, buttonWidth)
		case i == selected:
			rows[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			rows[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return centered(cw).Render(strings.Join(rows, "\n"))
}

// renderDetail describes the selected entry. Story Time without a key
// also gets the setup warning.
func renderDetail(text string, warnNoKey bool, cw int) string {
	out := centered(cw).Foreground(theme.TextDim).Italic(true).Render(text)
	if warnNoKey {
		out += "\n\n" + centered(cw).Foreground(theme.Accent).Render(noStoryKey)
	}
	return out
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return centered(cw).Render(RenderMascot(variant))
}
