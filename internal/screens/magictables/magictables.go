// Package magictables is the Magic Tables screen. It renders a
// tables.Explorer: pick a table, walk or sing through it, then practice.
package magictables

import (
	"slices"
	"strconv"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/screen"
	"github.com/abhisek/mathworld/internal/tables"
	"github.com/abhisek/mathworld/internal/ui/components"
	"github.com/abhisek/mathworld/internal/ui/layout"
)

const pickerColumns = 3

// timerMsg carries the explorer that scheduled it. Epochs restart with each
// explorer, so a tick left over from a closed screen must not reach a new one.
type timerMsg struct {
	owner *tables.Explorer
	timer tables.Timer
}

// TablesScreen drives one tables.Explorer.
type TablesScreen struct {
	explorer *tables.Explorer

	cursor   int // index into tables.Bases on the picker
	choices  components.Choices
	shownRow int
	shownOps []int
	lastPick int
}

var (
	_ screen.Screen          = (*TablesScreen)(nil)
	_ screen.KeyHintProvider = (*TablesScreen)(nil)
	_ screen.Leaver          = (*TablesScreen)(nil)
	_ screen.BackHandler     = (*TablesScreen)(nil)
)

// New creates the screen with the table picker showing.
func New(explorer *tables.Explorer) *TablesScreen {
	return &TablesScreen{explorer: explorer, lastPick: -1}
}

func (s *TablesScreen) Init() tea.Cmd {
	return nil
}

func (s *TablesScreen) Title() string {
	snap := s.explorer.Snapshot()
	if !snap.Selected() {
		return "Magic Tables"
	}
	return "Table of " + strconv.Itoa(snap.Base)
}

func (s *TablesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case timerMsg:
		if msg.owner != s.explorer {
			return s, nil
		}
		cmd = s.schedule(s.explorer.Fire(msg.timer))

	case components.ChoiceMsg:
		s.lastPick = msg.Value
		cmd = s.schedule(s.explorer.SelectPracticeOption(msg.Value))

	case tea.KeyPressMsg:
		snap := s.explorer.Snapshot()
		switch {
		case !snap.Selected():
			s.updatePicker(msg)
		case snap.Mode == tables.ModePractice:
			cmd = s.updatePractice(msg)
		default:
			cmd = s.updateLearn(msg)
		}
	}

	s.sync()
	return s, cmd
}

func (s *TablesScreen) updatePicker(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "left", "h":
		s.cursor = max(s.cursor-1, 0)
	case "right", "l":
		s.cursor = min(s.cursor+1, len(tables.Bases)-1)
	case "up", "k":
		if s.cursor-pickerColumns >= 0 {
			s.cursor -= pickerColumns
		}
	case "down", "j":
		if s.cursor+pickerColumns < len(tables.Bases) {
			s.cursor += pickerColumns
		}
	case "enter", "space":
		s.open(tables.Bases[s.cursor])
	default:
		// Digits open a table directly; 0 stands for 10.
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return
		}
		if n == 0 {
			n = 10
		}
		if i := slices.Index(tables.Bases, n); i >= 0 {
			s.cursor = i
			s.open(n)
		}
	}
}

func (s *TablesScreen) open(base int) {
	// Bases only holds valid tables.
	_ = s.explorer.SelectBase(base)
}

func (s *TablesScreen) updateLearn(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Mode):
		s.explorer.SetMode(tables.ModePractice)
	case key.Matches(msg, keys.Prev):
		s.explorer.Prev()
	case key.Matches(msg, keys.Next):
		s.explorer.Next()
	case key.Matches(msg, keys.Autoplay):
		return s.schedule(s.explorer.ToggleAutoplay())
	case key.Matches(msg, keys.Speak):
		s.explorer.Speak()
	}
	return nil
}

func (s *TablesScreen) updatePractice(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, keys.Mode) {
		s.explorer.SetMode(tables.ModeLearn)
		return nil
	}
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return cmd
}

// sync keeps the answer row in step with the practice question.
func (s *TablesScreen) sync() {
	snap := s.explorer.Snapshot()
	if snap.Mode != tables.ModePractice || len(snap.Options) == 0 {
		s.shownRow = 0
		s.shownOps = nil
		s.lastPick = -1
		return
	}

	if snap.Multiplier != s.shownRow || !slices.Equal(snap.Options, s.shownOps) {
		s.choices = components.NewChoices(snap.Options, snap.Result())
		s.shownRow = snap.Multiplier
		s.shownOps = snap.Options
		s.lastPick = -1
	}

	s.choices.Locked = snap.Advancing
	s.choices.Reveal = snap.Feedback == tables.FeedbackCorrect
	s.choices.Picked = -1
	if snap.Feedback == tables.FeedbackWrong {
		s.choices.Picked = s.lastPick
	}
}

func (s *TablesScreen) schedule(timers []tables.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	owner := s.explorer
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerMsg{owner: owner, timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

// Back closes an open table and returns to the picker.
func (s *TablesScreen) Back() bool {
	handled := s.explorer.Back()
	s.sync()
	return handled
}

// Leave stops autoplay and narration.
func (s *TablesScreen) Leave() {
	s.explorer.Leave()
}

func (s *TablesScreen) KeyHints() []layout.KeyHint {
	snap := s.explorer.Snapshot()
	switch {
	case !snap.Selected():
		return hints(keys.Move, keys.Open, keys.Back)
	case snap.Mode == tables.ModePractice:
		move := keys.Move
		move.SetHelp("←→", "Move")
		return hints(move, keys.Pick, keys.Mode, keys.Back)
	default:
		autoplay := keys.Autoplay
		if snap.Autoplay {
			autoplay.SetHelp("Space", "Stop singing")
		}
		return hints(keys.Prev, keys.Next, autoplay, keys.Speak, keys.Mode, keys.Back)
	}
}
