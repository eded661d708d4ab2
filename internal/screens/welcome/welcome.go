// Package welcome is the splash: the lion mascot appears, sparkles, then
// the banner and tagline. Any key moves on to home.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/router"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

const frameEvery = 100 * time.Millisecond

type stage int

const (
	stageMascot stage = iota
	stageSparkle
	stageBanner
)

// Elapsed time at which each later stage begins. The clock stops at
// settled; sparkles keep cycling on the frame counter.
var (
	sparkleAt = 500 * time.Millisecond
	bannerAt  = 1500 * time.Millisecond
	settled   = 4500 * time.Millisecond
)

const mascotArt = `   ╭─╮ ╭─────╮ ╭─╮
   ╰─┤ ◉   ◉ ├─╯
     │   ▼   │
     │  ╰┴╯  │
     ╰┬─────┬╯
    ╭─┴─────┴─╮
    │  + × ÷  │
    ╰─────────╯`

const tagline = "Aadhrith's World 🦁  Let's make math fun!"

// sparkleRows are the mascot lines that get a sparkle on each side.
var sparkleRows = []int{0, 3, 6}

type frameMsg time.Time

type WelcomeScreen struct {
	home     func() screen.Screen
	greeting func()

	elapsed time.Duration
	frames  int
	greeted bool
	left    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New builds the splash. home is called once, on the first key press.
// greeting, when set, runs once as the banner appears.
func New(home func() screen.Screen, greeting func()) *WelcomeScreen {
	return &WelcomeScreen{home: home, greeting: greeting}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameEvery, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.elapsed >= bannerAt:
		return stageBanner
	case w.elapsed >= sparkleAt:
		return stageSparkle
	}
	return stageMascot
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		w.frames++
		w.elapsed = min(w.elapsed+frameEvery, settled)
		if w.stage() == stageBanner && !w.greeted {
			w.greeted = true
			if w.greeting != nil {
				w.greeting()
			}
		}
		return w, nextFrame()

	case tea.KeyPressMsg:
		if w.left {
			return w, nil
		}
		w.left = true
		next := w.home()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.mascot()}
	if w.stage() == stageBanner {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}

func (w *WelcomeScreen) mascot() string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.stage() == stageMascot {
		return art
	}

	glyph := "★"
	if w.frames%2 == 1 {
		glyph = "✦"
	}
	warm := lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph)
	cool := lipgloss.NewStyle().Foreground(theme.Secondary).Render(glyph)

	lines := strings.Split(art, "\n")
	for i, row := range sparkleRows {
		if row >= len(lines) {
			break
		}
		l, r := warm, cool
		if i%2 == 1 {
			l, r = cool, warm
		}
		lines[row] = l + "  " + lines[row] + "  " + r
	}
	return strings.Join(lines, "\n")
}
