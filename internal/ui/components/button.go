package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// Button fires OnPress on Enter or Space. A disabled button swallows keys
// and renders dimmed.
type Button struct {
	Label   string
	Enabled bool
	OnPress func() tea.Cmd
}

func NewButton(label string, enabled bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Enabled: enabled, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Enabled || b.OnPress == nil {
		return b, nil
	}
	if k := press.String(); k == "enter" || k == "space" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	if !b.Enabled {
		return theme.ButtonInactive.Render(b.Label)
	}
	return theme.ButtonActive.Render("▸ " + b.Label)
}
