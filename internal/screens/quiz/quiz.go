// Package quiz is the Play Quiz screen: it renders a session.Machine and
// turns its timer requests into Bubble Tea ticks.
package quiz

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/layout"
)

// timerMsg carries a machine timer back to the screen once its delay has
// passed. The machine drops it if its epoch is stale.
type timerMsg struct {
	timer session.Timer
}

type operationChosenMsg struct{ op problemgen.Operation }

type difficultyChosenMsg struct{ diff problemgen.Difficulty }

type playAgainMsg struct{}

type menuMsg struct{}

// Start preselects the operation and difficulty so the quiz begins at
// the first question.
type Start struct {
	Operation  problemgen.Operation
	Difficulty problemgen.Difficulty
}

// QuizScreen drives one session.Machine.
type QuizScreen struct {
	ctx     context.Context
	machine *session.Machine
	audio   audio.Player
	logger  *slog.Logger
	start   *Start

	opMenu     components.Menu
	diffMenu   components.Menu
	resultMenu components.Menu

	choices  components.Choices
	shown    problemKey
	lastPick int
}

type problemKey struct {
	index    int
	question string
	options  []int
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.Leaver          = (*QuizScreen)(nil)
	_ screen.BackHandler     = (*QuizScreen)(nil)
)

// New creates the quiz screen. start may be nil to begin at the
// operation picker.
func New(ctx context.Context, machine *session.Machine, player audio.Player, start *Start, logger *slog.Logger) *QuizScreen {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &QuizScreen{
		ctx:        ctx,
		machine:    machine,
		audio:      player,
		logger:     logger,
		start:      start,
		opMenu:     operationMenu(),
		diffMenu:   difficultyMenu(),
		resultMenu: resultMenu(),
		lastPick:   -1,
	}
	return s
}

func operationMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(problemgen.Operations))
	for _, op := range problemgen.Operations {
		items = append(items, components.MenuItem{
			Label: operationIcon(op) + "  " + op.Title(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return operationChosenMsg{op: op} }
			},
		})
	}
	return components.NewMenu(items)
}

func difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(problemgen.Difficulties))
	for _, d := range problemgen.Difficulties {
		items = append(items, components.MenuItem{
			Label:  difficultyIcon(d) + "  " + d.Label(),
			Detail: d.Description(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{diff: d} }
			},
		})
	}
	return components.NewMenu(items)
}

func resultMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "Play Again 🔄", Action: func() tea.Cmd {
			return func() tea.Msg { return playAgainMsg{} }
		}},
		{Label: "Menu 🏠", Action: func() tea.Cmd {
			return func() tea.Msg { return menuMsg{} }
		}},
	})
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.start == nil {
		return nil
	}
	s.machine.SelectOperation(s.start.Operation)
	cmd := s.schedule(s.machine.SelectDifficulty(s.ctx, s.start.Difficulty))
	s.sync()
	return cmd
}

func (s *QuizScreen) Title() string {
	return "Play Quiz"
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case timerMsg:
		cmd = s.schedule(s.machine.Fire(s.ctx, msg.timer))

	case operationChosenMsg:
		s.machine.SelectOperation(msg.op)
		s.diffMenu = difficultyMenu()

	case difficultyChosenMsg:
		cmd = s.schedule(s.machine.SelectDifficulty(s.ctx, msg.diff))

	case components.ChoiceMsg:
		s.lastPick = msg.Value
		cmd = s.schedule(s.machine.Submit(s.ctx, msg.Value))

	case playAgainMsg:
		cmd = s.schedule(s.machine.PlayAgain(s.ctx))

	case menuMsg:
		s.machine.Menu()
		s.opMenu = operationMenu()

	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)
	}

	s.sync()
	return s, cmd
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	switch s.machine.Snapshot().State {
	case session.StateSelectOperation:
		s.opMenu, cmd = s.opMenu.Update(msg)
	case session.StateSelectDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	case session.StatePlaying:
		if key.Matches(msg, keys.Repeat) {
			if p := s.machine.Snapshot().Problem; p != nil {
				s.audio.Speak(p.Question)
			}
			return nil
		}
		s.choices, cmd = s.choices.Update(msg)
	case session.StateResult:
		s.resultMenu, cmd = s.resultMenu.Update(msg)
	}
	return cmd
}

// sync rebuilds the answer row when a new problem appears and mirrors the
// feedback state onto it.
func (s *QuizScreen) sync() {
	snap := s.machine.Snapshot()
	if snap.State != session.StatePlaying || snap.Problem == nil {
		s.shown = problemKey{}
		s.lastPick = -1
		return
	}

	p := snap.Problem
	k := problemKey{index: snap.Index, question: p.Question, options: p.Options}
	if k.index != s.shown.index || k.question != s.shown.question || !slices.Equal(k.options, s.shown.options) {
		s.choices = components.NewChoices(p.Options, p.Answer)
		s.shown = k
		s.lastPick = -1
	}

	s.choices.Locked = snap.Feedback != session.FeedbackNone
	s.choices.Reveal = snap.Feedback == session.FeedbackCorrect
	s.choices.Picked = -1
	if snap.Feedback == session.FeedbackWrong {
		s.choices.Picked = s.lastPick
	}
}

func (s *QuizScreen) schedule(timers []session.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerMsg{timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

// Back steps back inside the quiz. Quitting a quiz in progress returns to
// the operation picker; from the picker itself the screen is left.
func (s *QuizScreen) Back() bool {
	switch s.machine.Snapshot().State {
	case session.StateSelectDifficulty:
		s.machine.Back()
		return true
	case session.StatePlaying, session.StateResult:
		s.machine.Exit()
		s.opMenu = operationMenu()
		s.sync()
		return true
	}
	return false
}

// Leave abandons any quiz in progress.
func (s *QuizScreen) Leave() {
	s.machine.Exit()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.machine.Snapshot().State {
	case session.StatePlaying:
		return hints(keys.Navigate, keys.Choose, keys.Pick, keys.Repeat, keys.Back)
	case session.StateResult:
		return hints(keys.Choose, keys.Back)
	default:
		nav := keys.Navigate
		nav.SetHelp("↑↓", "Move")
		return hints(nav, keys.Choose, keys.Back)
	}
}

func operationIcon(op problemgen.Operation) string {
	switch op {
	case problemgen.Addition:
		return "➕"
	case problemgen.Subtraction:
		return "➖"
	case problemgen.Multiplication:
		return "✖️"
	case problemgen.Division:
		return "➗"
	default:
		return "🎲"
	}
}

func difficultyIcon(d problemgen.Difficulty) string {
	switch d {
	case problemgen.Medium:
		return "🚀"
	case problemgen.Hard:
		return "👑"
	default:
		return "👶"
	}
}
