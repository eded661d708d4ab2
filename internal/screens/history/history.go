// Package history is the trophy room: every finished quiz, newest first.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/router"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/ui/layout"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

// Limit is how many games the trophy room loads.
const Limit = 50

// GameLister reads completed quizzes, newest first.
type GameLister interface {
	RecentGames(ctx context.Context, limit int) ([]session.GameRecord, error)
}

type historyLoadedMsg struct {
	Games []session.GameRecord
	Err   error
}

// HistoryScreen lists past quizzes. Enter expands a row.
type HistoryScreen struct {
	ctx      context.Context
	games    GameLister
	records  []session.GameRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the trophy room. A nil lister shows an empty room.
func New(ctx context.Context, games GameLister) *HistoryScreen {
	return &HistoryScreen{
		ctx:      ctx,
		games:    games,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.games == nil {
		s.loaded = true
		return nil
	}
	games, ctx := s.games, s.ctx
	return func() tea.Msg {
		recs, err := games.RecentGames(ctx, Limit)
		return historyLoadedMsg{Games: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Trophy Room"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter", "space":
			if len(s.records) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not open the trophy room: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Polishing trophies...")
	}
	if len(s.records) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No trophies yet. Play a quiz to win one!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(summaryLine(s.records))))
	b.WriteString("\n\n")

	for i, g := range s.records {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+rowLine(g))))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detailLine(g))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func rowLine(g session.GameRecord) string {
	star := ""
	if g.NewHighScore {
		star = "  🏆"
	}
	return fmt.Sprintf("%s  %-11s %-8s %3d pts  %d/%d correct%s",
		g.FinishedAt.Local().Format("Jan 02"),
		g.Operation.Title(),
		g.Difficulty.Label(),
		g.Score, g.Correct, g.Total, star)
}

func detailLine(g session.GameRecord) string {
	d := g.FinishedAt.Sub(g.StartedAt).Round(time.Second)
	return fmt.Sprintf("    %s · %s · took %s",
		g.FinishedAt.Local().Format("Mon 3:04 PM"),
		g.Difficulty.Description(),
		d)
}

func summaryLine(recs []session.GameRecord) string {
	best, trophies := 0, 0
	for _, g := range recs {
		best = max(best, g.Score)
		if g.NewHighScore {
			trophies++
		}
	}
	return fmt.Sprintf("★ %d games · best %d · %d trophies", len(recs), best, trophies)
}
