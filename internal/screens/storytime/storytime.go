// Package storytime is the Story Time screen: type a hero's name and get
// a short jungle story read aloud.
package storytime

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/story"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/layout"
	"github.com/abhisek/mathworld/internal/ui/theme"
)

type phase int

const (
	phaseAsk phase = iota
	phaseLoading
	phaseStory
)

type tellMsg struct{}

// storyMsg delivers a finished story. owner and seq tie it to the screen
// and request that asked for it; answers to abandoned requests are dropped.
type storyMsg struct {
	owner *StoryScreen
	seq   int
	text  string
}

var (
	readKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Read again"))
	newKey  = key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("Enter", "New story"))
	tellKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Tell me a story"))
	backKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back"))
)

// StoryScreen asks for a hero, fetches a story in the background and
// shows it.
type StoryScreen struct {
	ctx    context.Context
	teller *story.Teller
	audio  audio.Player

	phase   phase
	input   components.NameInput
	button  components.Button
	spinner spinner.Model
	text    string
	hero    string

	seq    int
	cancel context.CancelFunc
}

var (
	_ screen.Screen          = (*StoryScreen)(nil)
	_ screen.KeyHintProvider = (*StoryScreen)(nil)
	_ screen.Leaver          = (*StoryScreen)(nil)
	_ screen.BackHandler     = (*StoryScreen)(nil)
)

// New creates the screen. teller may be nil when no LLM is configured.
func New(ctx context.Context, teller *story.Teller, player audio.Player) *StoryScreen {
	if teller == nil {
		teller = story.New(nil, "", nil)
	}
	if player == nil {
		player = audio.Nop{}
	}

	input := components.NewNameInput("Hero's name", 24)
	input.SetValue(teller.Hero())

	return &StoryScreen{
		ctx:    ctx,
		teller: teller,
		audio:  player,
		input:  input,
		button: components.NewButton("Tell me a Story! 📖", teller.Available(), func() tea.Cmd {
			return func() tea.Msg { return tellMsg{} }
		}),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.ArcadeYellow)),
		),
	}
}

func (s *StoryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StoryScreen) Title() string {
	return "Story Time"
}

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tellMsg:
		return s, s.tell()

	case storyMsg:
		if msg.owner != s || msg.seq != s.seq || s.phase != phaseLoading {
			return s, nil
		}
		s.finish()
		s.phase = phaseStory
		s.text = msg.text
		s.audio.Speak(s.text)
		return s, nil

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch s.phase {
		case phaseAsk:
			if key.Matches(msg, tellKey) {
				var cmd tea.Cmd
				s.button, cmd = s.button.Update(msg)
				return s, cmd
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		case phaseStory:
			switch {
			case key.Matches(msg, readKey):
				s.audio.Speak(s.text)
			case key.Matches(msg, newKey):
				s.audio.Cancel()
				s.phase = phaseAsk
				s.text = ""
				return s, s.input.Init()
			}
		}
	}

	if s.phase == phaseAsk {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// tell starts a story request off the UI goroutine.
func (s *StoryScreen) tell() tea.Cmd {
	if !s.teller.Available() || s.phase == phaseLoading {
		return nil
	}
	s.finish()
	s.seq++
	s.phase = phaseLoading
	s.hero = s.input.Value()
	if s.hero == "" {
		s.hero = s.teller.Hero()
	}

	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	seq, hero, teller := s.seq, s.hero, s.teller
	return tea.Batch(
		s.spinner.Tick,
		func() tea.Msg {
			return storyMsg{owner: s, seq: seq, text: teller.Tell(ctx, hero)}
		},
	)
}

// finish releases the context of the current request.
func (s *StoryScreen) finish() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Back abandons a story in progress or closes the story being shown.
func (s *StoryScreen) Back() bool {
	switch s.phase {
	case phaseLoading, phaseStory:
		s.finish()
		s.seq++
		s.audio.Cancel()
		s.phase = phaseAsk
		s.text = ""
		return true
	}
	return false
}

// Leave stops narration and any pending request.
func (s *StoryScreen) Leave() {
	s.finish()
	s.seq++
	s.audio.Cancel()
}

func (s *StoryScreen) KeyHints() []layout.KeyHint {
	var bindings []key.Binding
	switch s.phase {
	case phaseAsk:
		if s.teller.Available() {
			bindings = append(bindings, tellKey)
		}
	case phaseStory:
		bindings = append(bindings, readKey, newKey)
	}
	bindings = append(bindings, backKey)

	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return out
}

func (s *StoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.ArcadeYellow).
		Render("📖 Story Time 🌴")

	var body string
	switch {
	case !s.teller.Available():
		body = lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(story.NoProviderMessage)
	case s.phase == phaseAsk:
		body = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Who is the hero today?"),
			s.input.View(),
			"",
			s.button.View(),
		)
	case s.phase == phaseLoading:
		body = s.spinner.View() + " " + lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("Finding magic numbers in the jungle…")
	default:
		body = components.ArcadeCard(wrap(s.text, cw-8), cw)
	}

	return components.CabinetFrame(lipgloss.JoinVertical(lipgloss.Center, title, "", body), width, height, theme.Accent)
}

// wrap breaks text on spaces to fit width.
func wrap(text string, width int) string {
	if width < 10 {
		return text
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && lipgloss.Width(line.String())+1+lipgloss.Width(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
