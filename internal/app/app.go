// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/router"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/screens/history"
	"github.com/abhisek/mathworld/internal/screens/home"
	"github.com/abhisek/mathworld/internal/screens/magictables"
	"github.com/abhisek/mathworld/internal/screens/quiz"
	"github.com/abhisek/mathworld/internal/screens/storytime"
	"github.com/abhisek/mathworld/internal/screens/welcome"
	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/story"
	"github.com/abhisek/mathworld/internal/tables"
	"github.com/abhisek/mathworld/internal/ui/layout"
)

// Muter toggles sound while the app runs.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options are the collaborators and settings for one run of the TUI.
type Options struct {
	Session  session.Config
	Tables   tables.Config
	Problems problemgen.Source
	Scores   session.ScoreKeeper
	History  session.HistoryRecorder
	Games    history.GameLister
	Audio    audio.Player
	Muter    Muter
	Story    *story.Teller
	Logger   *slog.Logger
	Rand     *rand.Rand

	// Start opens the quiz with these selections instead of the menu.
	Start *quiz.Start

	// SkipSplash opens the main menu straight away.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	opts    Options
	router  *router.Router
	machine *session.Machine
	init    tea.Cmd
	width   int
	height  int
}

// newAppModel creates the model with the splash, the menu or the quiz on
// top depending on opts.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Problems == nil {
		opts.Problems = problemgen.NewLocal(opts.Rand)
	}
	if opts.Story == nil {
		opts.Story = story.New(nil, "", opts.Logger)
	}

	// One machine for the whole run so the best score is read once.
	machine := session.New(ctx, opts.Session, session.Deps{
		Problems: opts.Problems,
		Scores:   opts.Scores,
		History:  opts.History,
		Audio:    opts.Audio,
		Logger:   opts.Logger,
	})

	m := AppModel{
		ctx:     ctx,
		opts:    opts,
		machine: machine,
	}

	homeFactory := func() screen.Screen {
		return home.New(home.Entries{
			Quiz:   func() screen.Screen { return m.quizScreen(nil) },
			Tables: m.tablesScreen,
			Story:  m.storyScreen,

			Trophies: m.trophiesScreen(),
		}, m.homeStatus)
	}

	switch {
	case opts.Start != nil:
		m.router = router.New(homeFactory())
		q := m.quizScreen(opts.Start)
		m.init = func() tea.Msg { return router.PushScreenMsg{Screen: q} }
	case opts.SkipSplash:
		m.router = router.New(homeFactory())
	default:
		w := welcome.New(homeFactory, func() {
			opts.Audio.Speak("Welcome to Math World!")
		})
		m.router = router.New(w)
		m.init = w.Init()
	}
	return m
}

func (m AppModel) quizScreen(start *quiz.Start) screen.Screen {
	return quiz.New(m.ctx, m.machine, m.opts.Audio, start, m.opts.Logger)
}

func (m AppModel) tablesScreen() screen.Screen {
	e := tables.NewExplorer(m.opts.Tables, m.opts.Audio, m.opts.Rand, m.opts.Logger)
	return magictables.New(e)
}

func (m AppModel) storyScreen() screen.Screen {
	return storytime.New(m.ctx, m.opts.Story, m.opts.Audio)
}

// trophiesScreen is nil without a game store, which hides the shortcut.
func (m AppModel) trophiesScreen() func() screen.Screen {
	if m.opts.Games == nil {
		return nil
	}
	return func() screen.Screen { return history.New(m.ctx, m.opts.Games) }
}

func (m AppModel) homeStatus() home.Status {
	snap := m.machine.Snapshot()
	return home.Status{
		HighScore:    snap.HighScore,
		NewHighScore: snap.NewHighScore,
		Muted:        m.muted(),
		StoryReady:   m.opts.Story.Available(),
	}
}

func (m AppModel) muted() bool {
	return m.opts.Muter != nil && m.opts.Muter.Muted()
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "ctrl+s":
			if m.opts.Muter != nil {
				muted := m.opts.Muter.ToggleMute()
				m.opts.Logger.Debug("sound toggled", "muted", muted)
			}
			return m, nil
		case "esc":
			if b, ok := m.router.Active().(screen.BackHandler); ok && b.Back() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// shutdown stops every screen's timers and narration.
func (m AppModel) shutdown() {
	m.router.LeaveAll()
	m.opts.Audio.Cancel()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.machine.Snapshot().HighScore, m.muted(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	body := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	if m.opts.Muter != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Sound"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	model := newAppModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	model.shutdown()
	if err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
