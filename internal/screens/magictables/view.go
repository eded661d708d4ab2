package magictables

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/tables"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

// groupsFitHeight is the content height below which groups collapse to
// one line each of "emoji × n".
const groupsFitHeight = 22

func (s *TablesScreen) View(width, height int) string {
	snap := s.explorer.Snapshot()
	cw := components.ContentWidth(width)

	if !snap.Selected() {
		return components.CabinetFrame(s.viewPicker(cw), width, height, nil)
	}
	var content string
	if snap.Mode == tables.ModePractice {
		content = s.viewPractice(snap, cw)
	} else {
		content = s.viewLearn(snap, cw, height)
	}
	// The cabinet glows in the chosen table's colour.
	return components.CabinetFrame(content, width, height, theme.AccentColor(snap.Theme.Accent))
}

func (s *TablesScreen) viewPicker(cw int) string {
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.ArcadeYellow).
		Render("Pick a number to start the magic!")

	var rows []string
	var row []string
	for i, base := range tables.Bases {
		th, _ := tables.ThemeFor(base)
		style := lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			MarginRight(1)
		if i == s.cursor {
			style = style.
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.AccentColor(th.Accent)).
				BorderForeground(theme.AccentColor(th.Accent))
		} else {
			style = style.Foreground(theme.Text).BorderForeground(theme.Border)
		}
		row = append(row, style.Render(fmt.Sprintf("%s  %d", th.Emoji, base)))
		if len(row) == pickerColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	th, _ := tables.ThemeFor(tables.Bases[s.cursor])
	caption := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Render(th.Name)

	return lipgloss.JoinVertical(lipgloss.Center,
		title, "", lipgloss.JoinVertical(lipgloss.Center, rows...), caption)
}

func modeTabs(mode tables.Mode, accent lipgloss.Style) string {
	tab := func(label string, active bool) string {
		st := lipgloss.NewStyle().Padding(0, 2)
		if active {
			return st.Inherit(accent).Bold(true).Render(label)
		}
		return st.Foreground(theme.TextDim).Render(label)
	}
	return tab("👀 Learn", mode == tables.ModeLearn) + "  " +
		tab("🎮 Practice", mode == tables.ModePractice)
}

func heading(snap tables.Snapshot, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.AccentColor(snap.Theme.Accent)).
		Render(fmt.Sprintf("%s %s %s", snap.Theme.Emoji, snap.Theme.Name, snap.Theme.Emoji))
}

func accentStyle(snap tables.Snapshot) lipgloss.Style {
	c := theme.AccentColor(snap.Theme.Accent)
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(c).
		BorderForeground(c)
}

func (s *TablesScreen) viewLearn(snap tables.Snapshot, cw, height int) string {
	accent := accentStyle(snap)
	color := theme.AccentColor(snap.Theme.Accent)

	groupLabel := lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render(fmt.Sprintf("%d Groups of %d", snap.Multiplier, snap.Base))

	groups := make([]string, 0, snap.Multiplier)
	for range snap.Multiplier {
		if height < groupsFitHeight {
			groups = append(groups, fmt.Sprintf("%s × %d", snap.Theme.Emoji, snap.Base))
			continue
		}
		groups = append(groups, strings.Repeat(snap.Theme.Emoji, snap.Base))
	}
	if height < groupsFitHeight {
		groups = []string{strings.Join(groups, "  ")}
	}
	left := lipgloss.JoinVertical(lipgloss.Center, groupLabel, strings.Join(groups, "\n"))

	strip := make([]string, 0, tables.MaxMultiplier)
	for m := 1; m <= tables.MaxMultiplier; m++ {
		line := fmt.Sprintf("%2d × %2d = %3d", snap.Base, m, snap.Base*m)
		if m == snap.Multiplier {
			strip = append(strip, lipgloss.NewStyle().Bold(true).Foreground(color).Render("▸ "+line))
		} else {
			strip = append(strip, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line))
		}
	}
	right := strings.Join(strip, "\n")
	if height < groupsFitHeight {
		right = ""
	}

	equation := lipgloss.NewStyle().
		Width(cw-2).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(fmt.Sprintf("%d × %d = %d", snap.Base, snap.Multiplier, snap.Result()))

	status := ""
	if snap.Autoplay {
		status = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("♪ Singing along…")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(cw/2+6).Align(lipgloss.Center).Render(left),
		right,
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		heading(snap, cw),
		modeTabs(snap.Mode, accent),
		"",
		equation,
		status,
		body,
	)
}

func (s *TablesScreen) viewPractice(snap tables.Snapshot, cw int) string {
	accent := accentStyle(snap)
	color := theme.AccentColor(snap.Theme.Accent)

	question := lipgloss.NewStyle().
		Width(cw-2).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(fmt.Sprintf("%d × %d = ?", snap.Base, snap.Multiplier))

	bar := components.NewProgressBar(
		fmt.Sprintf("Row %d of %d", snap.Multiplier, tables.MaxMultiplier),
		float64(snap.Multiplier-1)/float64(tables.MaxMultiplier), cw)
	bar.Fill = color
	progress := bar.View()

	options := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s.choices.View(accent))

	sections := []string{heading(snap, cw), modeTabs(snap.Mode, accent), "", progress, "", question, "", options}
	switch snap.Feedback {
	case tables.FeedbackCorrect:
		text := "⭐ That's right!"
		if snap.Multiplier == tables.MaxMultiplier && snap.Advancing {
			text = "🏆 You finished the practice!"
		}
		sections = append(sections, "", components.FeedbackBanner(text, true, cw))
	case tables.FeedbackWrong:
		sections = append(sections, "", components.FeedbackBanner("Try again.", false, cw))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
