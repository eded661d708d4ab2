// Package screen is the contract between the router and each Math World
// screen, plus the optional hooks a screen may implement.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/ui/layout"
)

// Screen is one page on the router stack. View draws only the body; the
// app adds the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is told when its screen leaves the stack, so timers and speech
// stop with it.
type Leaver interface {
	Leave()
}

// BackHandler gets first refusal on Esc. Back returns false when there is
// no inner step left and the screen should be popped.
type BackHandler interface {
	Back() bool
}
