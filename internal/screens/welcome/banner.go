package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

const bannerArt = `
███╗   ███╗ █████╗ ████████╗██╗  ██╗    ██╗    ██╗ ██████╗ ██████╗ ██╗     ██████╗
████╗ ████║██╔══██╗╚══██╔══╝██║  ██║    ██║    ██║██╔═══██╗██╔══██╗██║     ██╔══██╗
██╔████╔██║███████║   ██║   ███████║    ██║ █╗ ██║██║   ██║██████╔╝██║     ██║  ██║
██║╚██╔╝██║██╔══██║   ██║   ██╔══██║    ██║███╗██║██║   ██║██╔══██╗██║     ██║  ██║
██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║    ╚███╔███╔╝╚██████╔╝██║  ██║███████╗██████╔╝
╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝     ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═════╝`

const bannerCompact = "M A T H   W O R L D"

// bannerWidth is the widest line of bannerArt plus one column.
const bannerWidth = 84

// RenderBanner returns the MATH WORLD banner in the primary colour, or a
// spaced-out word when the terminal is too narrow for the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
