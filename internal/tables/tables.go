// Package tables drives the multiplication-table explorer: walk through a
// times table, let it sing itself, or practice it with picture-free
// multiple choice.
package tables

import (
	"errors"
	"time"
)

const (
	// MinBase and MaxBase bound the tables on offer.
	MinBase = 2
	MaxBase = 10

	// MaxMultiplier is the last row of every table.
	MaxMultiplier = 10
)

// ErrInvalidBase is returned by SelectBase for a base outside 2-10.
var ErrInvalidBase = errors.New("base must be between 2 and 10")

// Theme dresses up a table so it is easier to remember.
type Theme struct {
	Emoji  string
	Name   string
	Accent string // hex colour for the table's highlight
}

var themes = map[int]Theme{
	2:  {Emoji: "🍒", Name: "Cherry Pairs", Accent: "#EF4444"},
	3:  {Emoji: "🍦", Name: "Ice Creams", Accent: "#EC4899"},
	4:  {Emoji: "🦁", Name: "Lion Paws", Accent: "#CA8A04"},
	5:  {Emoji: "🖐️", Name: "High Fives", Accent: "#F97316"},
	6:  {Emoji: "🐞", Name: "Ladybugs", Accent: "#DC2626"},
	7:  {Emoji: "🍭", Name: "Lollipops", Accent: "#A855F7"},
	8:  {Emoji: "🐙", Name: "Octopus", Accent: "#2563EB"},
	9:  {Emoji: "🎈", Name: "Balloons", Accent: "#22C55E"},
	10: {Emoji: "⭐", Name: "Stars", Accent: "#EAB308"},
}

// Bases lists the selectable tables in order.
var Bases = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}

// ThemeFor returns the theme for base.
func ThemeFor(base int) (Theme, bool) {
	t, ok := themes[base]
	return t, ok
}

// Mode switches between walking through a table and being quizzed on it.
type Mode int

const (
	ModeLearn Mode = iota
	ModePractice
)

func (m Mode) String() string {
	if m == ModePractice {
		return "practice"
	}
	return "learn"
}

// Feedback is the result of the last practice pick.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// TimerKind identifies a delayed explorer step.
type TimerKind int

const (
	TimerNarrate TimerKind = iota
	TimerAutoAdvance
	TimerPracticeAdvance
	TimerPracticeFinish
)

func (k TimerKind) String() string {
	switch k {
	case TimerNarrate:
		return "narrate"
	case TimerAutoAdvance:
		return "auto-advance"
	case TimerPracticeAdvance:
		return "practice-advance"
	case TimerPracticeFinish:
		return "practice-finish"
	default:
		return "unknown"
	}
}

// Timer asks the caller to call Fire with it after Delay.
type Timer struct {
	Kind  TimerKind
	Epoch uint64
	Delay time.Duration
}

// Config holds the explorer delays.
type Config struct {
	NarrateDelay         time.Duration
	AutoAdvanceDelay     time.Duration
	PracticeAdvanceDelay time.Duration
	PracticeFinishDelay  time.Duration
}

// DefaultConfig returns the standard pacing.
func DefaultConfig() Config {
	return Config{
		NarrateDelay:         300 * time.Millisecond,
		AutoAdvanceDelay:     3500 * time.Millisecond,
		PracticeAdvanceDelay: 1000 * time.Millisecond,
		PracticeFinishDelay:  2000 * time.Millisecond,
	}
}

// Snapshot is a read-only view of the explorer for rendering.
type Snapshot struct {
	Base       int
	Theme      Theme
	Multiplier int
	Mode       Mode
	Autoplay   bool
	Options    []int
	Feedback   Feedback
	Advancing  bool
	Epoch      uint64
}

// Selected reports whether a table has been picked.
func (s Snapshot) Selected() bool {
	return s.Base != 0
}

// Result is base times multiplier.
func (s Snapshot) Result() int {
	return s.Base * s.Multiplier
}
