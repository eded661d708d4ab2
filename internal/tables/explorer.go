package tables

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
)

// Explorer is the table explorer state machine. Like the quiz machine it
// returns Timer values instead of sleeping, and drops timers whose epoch
// is stale. It is not safe for concurrent use.
type Explorer struct {
	cfg    Config
	audio  audio.Player
	rng    *rand.Rand
	logger *slog.Logger

	base       int
	multiplier int
	mode       Mode
	autoplay   bool
	options    []int
	feedback   Feedback
	advancing  bool
	epoch      uint64
}

// NewExplorer returns an explorer with no table selected. rng and logger
// may be nil.
func NewExplorer(cfg Config, player audio.Player, rng *rand.Rand, logger *slog.Logger) *Explorer {
	if player == nil {
		player = audio.Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Explorer{
		cfg:        cfg,
		audio:      player,
		rng:        rng,
		logger:     logger,
		multiplier: 1,
	}
}

// SelectBase opens the table for b in learn mode.
func (e *Explorer) SelectBase(b int) error {
	theme, ok := ThemeFor(b)
	if !ok {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, b)
	}

	e.bump()
	e.clear()
	e.base = b

	e.audio.Play(audio.CueHover)
	e.audio.Speak(fmt.Sprintf("Welcome to the %s table!", theme.Name))
	return nil
}

// Next moves to the next row. Manual navigation stops autoplay.
func (e *Explorer) Next() {
	if !e.learning() {
		return
	}
	e.stopAutoplay()
	if e.multiplier < MaxMultiplier {
		e.bump()
		e.multiplier++
		e.audio.Play(audio.CueHover)
	}
}

// Prev moves to the previous row. Manual navigation stops autoplay.
func (e *Explorer) Prev() {
	if !e.learning() {
		return
	}
	e.stopAutoplay()
	if e.multiplier > 1 {
		e.bump()
		e.multiplier--
		e.audio.Play(audio.CueHover)
	}
}

// Speak narrates the current row.
func (e *Explorer) Speak() {
	if e.base == 0 {
		return
	}
	e.audio.Speak(e.Equation())
}

// Equation is the current row as a sentence, e.g. "2 times 3 is 6".
func (e *Explorer) Equation() string {
	return fmt.Sprintf("%d times %d is %d", e.base, e.multiplier, e.base*e.multiplier)
}

// ToggleAutoplay starts singing the table from row 1, or stops it.
func (e *Explorer) ToggleAutoplay() []Timer {
	if !e.learning() {
		return nil
	}
	if e.autoplay {
		e.stopAutoplay()
		return nil
	}

	e.bump()
	e.autoplay = true
	e.multiplier = 1
	e.audio.Speak("Let's sing together!")
	return e.timer(TimerNarrate, e.cfg.NarrateDelay)
}

// SetMode switches between learn and practice. Practice starts at the
// current row.
func (e *Explorer) SetMode(mode Mode) {
	if e.base == 0 {
		return
	}
	e.stopAutoplay()
	e.audio.Cancel()
	e.bump()
	e.mode = mode
	e.feedback = FeedbackNone
	e.advancing = false
	e.options = nil
	if mode == ModePractice {
		e.options = problemgen.BuildOptions(e.rng, e.base*e.multiplier)
	}
}

// SelectPracticeOption checks a practice answer. Picks are ignored while
// the explorer is moving on after a correct answer.
func (e *Explorer) SelectPracticeOption(v int) []Timer {
	if e.base == 0 || e.mode != ModePractice || e.advancing {
		return nil
	}

	if v == e.base*e.multiplier {
		e.bump()
		e.feedback = FeedbackCorrect
		e.advancing = true
		e.audio.Play(audio.CueCorrect)
		e.audio.Speak("That's right!")
		return e.timer(TimerPracticeAdvance, e.cfg.PracticeAdvanceDelay)
	}

	e.feedback = FeedbackWrong
	e.audio.Play(audio.CueWrong)
	e.audio.Speak("Try again.")
	return nil
}

// Fire applies a timer returned earlier. Stale timers are ignored.
func (e *Explorer) Fire(t Timer) []Timer {
	if t.Epoch != e.epoch {
		e.logger.Debug("stale tables timer dropped", "kind", t.Kind.String(),
			"timer_epoch", t.Epoch, "epoch", e.epoch)
		return nil
	}

	switch t.Kind {
	case TimerNarrate:
		if !e.autoplay || !e.learning() {
			return nil
		}
		e.audio.Speak(e.Equation())
		if e.multiplier < MaxMultiplier {
			return e.timer(TimerAutoAdvance, e.cfg.AutoAdvanceDelay)
		}
		e.bump()
		e.autoplay = false

	case TimerAutoAdvance:
		if !e.autoplay || !e.learning() {
			return nil
		}
		e.bump()
		e.multiplier = min(e.multiplier+1, MaxMultiplier)
		return e.timer(TimerNarrate, e.cfg.NarrateDelay)

	case TimerPracticeAdvance:
		if e.mode != ModePractice || !e.advancing {
			return nil
		}
		if e.multiplier < MaxMultiplier {
			e.bump()
			e.multiplier++
			e.feedback = FeedbackNone
			e.advancing = false
			e.options = problemgen.BuildOptions(e.rng, e.base*e.multiplier)
			return nil
		}
		e.bump()
		e.audio.Play(audio.CueVictory)
		e.audio.Speak("You finished the practice!")
		return e.timer(TimerPracticeFinish, e.cfg.PracticeFinishDelay)

	case TimerPracticeFinish:
		if e.mode != ModePractice {
			return nil
		}
		e.bump()
		e.mode = ModeLearn
		e.feedback = FeedbackNone
		e.advancing = false
		e.options = nil
	}
	return nil
}

// Leave puts the table away. Pending timers become stale and narration
// stops.
func (e *Explorer) Leave() {
	e.bump()
	e.audio.Cancel()
	e.clear()
	e.base = 0
}

// Back returns from an open table to the table picker. It reports false
// when no table is open so the caller can leave the explorer.
func (e *Explorer) Back() bool {
	if e.base == 0 {
		return false
	}
	e.Leave()
	return true
}

// Snapshot returns the current state for rendering.
func (e *Explorer) Snapshot() Snapshot {
	theme, _ := ThemeFor(e.base)
	return Snapshot{
		Base:       e.base,
		Theme:      theme,
		Multiplier: e.multiplier,
		Mode:       e.mode,
		Autoplay:   e.autoplay,
		Options:    slices.Clone(e.options),
		Feedback:   e.feedback,
		Advancing:  e.advancing,
		Epoch:      e.epoch,
	}
}

// Epoch returns the current timer generation.
func (e *Explorer) Epoch() uint64 {
	return e.epoch
}

func (e *Explorer) learning() bool {
	return e.base != 0 && e.mode == ModeLearn
}

func (e *Explorer) stopAutoplay() {
	if !e.autoplay {
		return
	}
	e.bump()
	e.autoplay = false
	e.audio.Cancel()
}

func (e *Explorer) clear() {
	e.autoplay = false
	e.multiplier = 1
	e.mode = ModeLearn
	e.options = nil
	e.feedback = FeedbackNone
	e.advancing = false
}

func (e *Explorer) bump() {
	e.epoch++
}

func (e *Explorer) timer(kind TimerKind, delay time.Duration) []Timer {
	return []Timer{{Kind: kind, Epoch: e.epoch, Delay: delay}}
}
