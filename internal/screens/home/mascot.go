package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default orange lion
	MascotCelebrating                      // Gold, star eyes: a new best score
)

const mascotIdle = `╭─╮ ╭─────╮ ╭─╮
╰─┤ ◉   ◉ ├─╯
  │   ▼   │
  ╰┬─────┬╯`

const mascotCelebrating = `╭─╮ ╭─────╮ ╭─╮
╰─┤ ★   ★ ├─╯
  │  ╰▼╯  │
  ╰┬─────┬╯
   ╚═════╝`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := mascotIdle
	fg := theme.Accent
	if v == MascotCelebrating {
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
