package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/router"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/screens/placeholder"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/layout"
)

// Entries builds the screens behind each menu item. A nil entry opens a
// placeholder instead.
type Entries struct {
	Quiz   func() screen.Screen
	Tables func() screen.Screen
	Story  func() screen.Screen

	// Trophies opens on "t". Nil disables the shortcut.
	Trophies func() screen.Screen
}

// Status is what the dashboard shows under the title.
type Status struct {
	HighScore    int
	NewHighScore bool
	Muted        bool
	StoryReady   bool
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	trophies   func() screen.Screen
	menuLabels []string
	details    []string
	status     func() Status
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the main menu. status is polled on every render so the
// best score stays current after a quiz; it may be nil.
func New(entries Entries, status func() Status) *HomeScreen {
	if status == nil {
		status = func() Status { return Status{} }
	}

	menuLabels := []string{"PLAY QUIZ", "MAGIC TABLES", "STORY TIME", "EXIT"}
	details := []string{
		"Solve fun problems & win trophies!",
		"Learn tables 2 to 10 with visuals!",
		"A jungle story starring you!",
		"See you soon!",
	}

	push := func(title string, factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			var s screen.Screen
			if factory != nil {
				s = factory()
			} else {
				s = placeholder.New(title)
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push("Play Quiz", entries.Quiz)},
		{Label: menuLabels[1], Action: push("Magic Tables", entries.Tables)},
		{Label: menuLabels[2], Action: push("Story Time", entries.Story)},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		trophies:   entries.Trophies,
		menuLabels: menuLabels,
		details:    details,
		status:     status,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "t" && h.trophies != nil {
		s := h.trophies()
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	st := h.status()

	variant := MascotIdle
	if st.NewHighScore {
		variant = MascotCelebrating
	}

	var sections []string
	sections = append(sections, renderTitle(cw))
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}
	sections = append(sections,
		renderStatus(st, cw, compact),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
		renderDetail(h.details[h.menu.Selected], !st.StoryReady && h.menu.Selected == 2, cw),
	)

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height, nil)
}

// KeyHints advertises the trophy shortcut when it is wired.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if h.trophies != nil {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "Trophies"})
	}
	return hints
}

func (h *HomeScreen) Title() string {
	return "Math World"
}
