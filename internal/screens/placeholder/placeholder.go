// Package placeholder fills a home menu slot whose screen was not wired,
// such as Story Time in a build without an LLM.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/router"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

const notice = "This corner of the jungle is still growing.\nPress Enter or Esc to go back!"

type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd { return nil }

func (p *PlaceholderScreen) Title() string { return p.title }

// Update leaves on Enter. The app already pops on Esc.
func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeYellow).Render("🐒 " + p.title)
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(notice)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, heading, "", body))
}
