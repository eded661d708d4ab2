package components

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// NameInput wraps bubbles/textinput for typing a child's name. Only
// letters, spaces, hyphens and apostrophes get through.
type NameInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewNameInput creates a focused name input.
func NewNameInput(placeholder string, maxWidth int) NameInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "✎ "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return NameInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t NameInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t NameInput) Update(msg tea.Msg) (NameInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !nameRune(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func nameRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\''
}

// View renders the input.
func (t NameInput) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeCyan).
		Padding(0, 1).
		Render(t.Model.View())
}

// Value returns the trimmed name.
func (t NameInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the name.
func (t *NameInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}
