package quiz

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

const (
	menuButtonWidth = 26
	visualsPerRow   = 5
)

func (s *QuizScreen) View(width, height int) string {
	snap := s.machine.Snapshot()
	cw := components.ContentWidth(width)

	var content string
	switch snap.State {
	case session.StateSelectOperation:
		content = s.viewPicker("Pick a game to start", s.opMenu, cw)
	case session.StateSelectDifficulty:
		content = s.viewPicker("Choose Level 🏆", s.diffMenu, cw)
	case session.StatePlaying:
		content = s.viewPlaying(snap, cw)
	case session.StateResult:
		content = s.viewResult(snap, cw)
	}
	return components.CabinetFrame(content, width, height, nil)
}

func (s *QuizScreen) viewPicker(heading string, menu components.Menu, cw int) string {
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.ArcadeYellow).
		Render(heading)

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		menu.View(menuButtonWidth),
	)
}

func (s *QuizScreen) viewPlaying(snap session.Snapshot, cw int) string {
	p := snap.Problem
	if p == nil {
		return ""
	}

	status := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewQuestionProgress(snap.Index, snap.Total, cw-14).View(),
		lipgloss.NewStyle().
			Width(14).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(theme.ArcadeYellow).
			Render(fmt.Sprintf("★ %d", snap.Score)),
	)

	answer := "?"
	answerColor := theme.Border
	if snap.Feedback == session.FeedbackCorrect {
		answer = fmt.Sprint(p.Answer)
		answerColor = theme.Success
	}
	answerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(answerColor).
		Foreground(answerColor).
		Bold(true).
		Padding(0, 1).
		Render(answer)

	symbol := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	parts := []string{visualBlock(p.FirstVisuals), symbol.Render(p.Symbol)}
	if len(p.SecondVisuals) > 0 {
		parts = append(parts, visualBlock(p.SecondVisuals))
	}
	parts = append(parts, symbol.Render("="), answerBox)
	visuals := lipgloss.NewStyle().
		Width(cw-2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))

	question := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Render(p.Question)
	hint := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Italic(true).
		Render(p.Hint)

	accent := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow)
	options := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s.choices.View(accent))

	sections := []string{status, "", visuals, question, hint, "", options}
	switch snap.Feedback {
	case session.FeedbackCorrect:
		sections = append(sections, "", components.FeedbackBanner("🎉 Correct!", true, cw))
	case session.FeedbackWrong:
		sections = append(sections, "", components.FeedbackBanner("Oops! Try again.", false, cw))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *QuizScreen) viewResult(snap session.Snapshot, cw int) string {
	trophy := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.ArcadeYellow).
		Render("🏆 You Won! 🏆")

	scoreCard := components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your Score")+"\n"+
			lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(fmt.Sprint(snap.Score))+"\n"+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%d of %d correct", snap.Correct, snap.Total)),
		cw,
	)

	sections := []string{trophy, "", scoreCard}
	if snap.NewHighScore {
		sections = append(sections, components.FeedbackBanner("✨ New High Score! ✨", true, cw))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Best so far: %d", snap.HighScore)))
	}
	sections = append(sections, "", s.resultMenu.View(menuButtonWidth))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// visualBlock lays tokens out in rows so twenty apples still fit.
func visualBlock(items []string) string {
	var rows []string
	for chunk := range slices.Chunk(items, visualsPerRow) {
		rows = append(rows, strings.Join(chunk, " "))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(rows, "\n"))
}
