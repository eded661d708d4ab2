package components

import (
	"fmt"
	"image/color"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// ProgressBar is a labelled, static bar: "Question 3 of 5  ████░░░░".
// It draws with the bubbles progress model but never animates.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
	Fill    color.Color // nil uses theme.Secondary
}

func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

// NewQuestionProgress labels the bar with the question being asked after
// index answers.
func NewQuestionProgress(index, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(index) / float64(total)
	}
	return NewProgressBar(fmt.Sprintf("Question %d of %d", min(index+1, total), total), pct, width)
}

func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	bar := progress.New(
		progress.WithColors(fill),
		progress.WithoutPercentage(),
		progress.WithFillCharacters('█', '░'),
		progress.WithWidth(max(p.Width-lipgloss.Width(label), 4)),
	)
	bar.EmptyColor = theme.Border
	return label + bar.ViewAs(min(max(p.Percent, 0), 1))
}
