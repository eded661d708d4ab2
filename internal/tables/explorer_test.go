package tables

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/mathworld/internal/audio"
)

func newTestExplorer() (*Explorer, *audio.Recorder) {
	rec := &audio.Recorder{}
	e := NewExplorer(DefaultConfig(), rec, rand.New(rand.NewPCG(1, 2)),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return e, rec
}

func mustSelect(t *testing.T, e *Explorer, base int) {
	t.Helper()
	if err := e.SelectBase(base); err != nil {
		t.Fatalf("SelectBase(%d): %v", base, err)
	}
}

func TestSelectBase(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 4)

	snap := e.Snapshot()
	if snap.Base != 4 || snap.Multiplier != 1 || snap.Mode != ModeLearn {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.Theme.Name != "Lion Paws" || snap.Theme.Emoji != "🦁" {
		t.Errorf("unexpected theme %+v", snap.Theme)
	}
	if rec.LastSpoken() != "Welcome to the Lion Paws table!" {
		t.Errorf("spoken %q", rec.LastSpoken())
	}
	if !slices.Equal(rec.Cues(), []audio.Cue{audio.CueHover}) {
		t.Errorf("cues %v", rec.Cues())
	}
}

func TestSelectBase_Invalid(t *testing.T) {
	e, _ := newTestExplorer()
	for _, b := range []int{-1, 0, 1, 11, 12} {
		if err := e.SelectBase(b); !errors.Is(err, ErrInvalidBase) {
			t.Errorf("SelectBase(%d) = %v, want ErrInvalidBase", b, err)
		}
	}
	if e.Snapshot().Selected() {
		t.Error("invalid base must not select a table")
	}
}

func TestThemes_CoverAllBases(t *testing.T) {
	for _, b := range Bases {
		theme, ok := ThemeFor(b)
		if !ok || theme.Name == "" || theme.Emoji == "" || theme.Accent == "" {
			t.Errorf("base %d: theme %+v", b, theme)
		}
	}
	if _, ok := ThemeFor(11); ok {
		t.Error("unexpected theme for 11")
	}
}

func TestNextPrev_Clamp(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 2)

	e.Prev()
	if e.Snapshot().Multiplier != 1 {
		t.Errorf("Prev at 1 moved to %d", e.Snapshot().Multiplier)
	}
	for i := 0; i < 15; i++ {
		e.Next()
	}
	if e.Snapshot().Multiplier != 10 {
		t.Errorf("Next clamps at 10, got %d", e.Snapshot().Multiplier)
	}
	// Select hover plus nine moves.
	if len(rec.Cues()) != 10 {
		t.Errorf("expected 10 hover cues, got %d", len(rec.Cues()))
	}

	e.Prev()
	if e.Snapshot().Multiplier != 9 {
		t.Errorf("Prev from 10 gave %d", e.Snapshot().Multiplier)
	}
}

func TestSpeak_Equation(t *testing.T) {
	e, rec := newTestExplorer()
	e.Speak()
	if len(rec.Spoken()) != 0 {
		t.Error("Speak without a table should be silent")
	}

	mustSelect(t, e, 7)
	e.Next()
	e.Next()
	e.Speak()
	if rec.LastSpoken() != "7 times 3 is 21" {
		t.Errorf("spoken %q", rec.LastSpoken())
	}
	if e.Snapshot().Result() != 21 {
		t.Errorf("Result = %d", e.Snapshot().Result())
	}
}

func TestAutoplay_SingsWholeTable(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 3)
	e.Next()
	e.Next()

	timers := e.ToggleAutoplay()
	if len(timers) != 1 || timers[0].Kind != TimerNarrate || timers[0].Delay != 300*time.Millisecond {
		t.Fatalf("unexpected timers %v", timers)
	}
	if e.Snapshot().Multiplier != 1 || !e.Snapshot().Autoplay {
		t.Fatalf("autoplay should restart from 1: %+v", e.Snapshot())
	}
	if rec.LastSpoken() != "Let's sing together!" {
		t.Errorf("spoken %q", rec.LastSpoken())
	}

	rec.Reset()
	for steps := 0; len(timers) > 0; steps++ {
		if steps > 100 {
			t.Fatal("autoplay never stopped")
		}
		if timers[0].Kind == TimerAutoAdvance && timers[0].Delay != 3500*time.Millisecond {
			t.Fatalf("auto advance delay %v", timers[0].Delay)
		}
		timers = e.Fire(timers[0])
	}

	spoken := rec.Spoken()
	if len(spoken) != 10 {
		t.Fatalf("expected 10 lines, got %v", spoken)
	}
	if spoken[0] != "3 times 1 is 3" || spoken[9] != "3 times 10 is 30" {
		t.Errorf("unexpected lines %v", spoken)
	}
	snap := e.Snapshot()
	if snap.Autoplay || snap.Multiplier != 10 {
		t.Errorf("expected autoplay off at 10, got %+v", snap)
	}
}

func TestAutoplay_ToggleOffCancels(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 5)
	timers := e.ToggleAutoplay()

	if got := e.ToggleAutoplay(); got != nil {
		t.Errorf("toggle off returned %v", got)
	}
	if e.Snapshot().Autoplay {
		t.Error("autoplay still on")
	}
	if rec.Count(audio.CallCancel) != 1 {
		t.Errorf("expected one cancel, got %d", rec.Count(audio.CallCancel))
	}

	rec.Reset()
	if next := e.Fire(timers[0]); next != nil || len(rec.Spoken()) != 0 {
		t.Errorf("stale narrate timer ran: %v %v", next, rec.Spoken())
	}
}

func TestAutoplay_ManualNavigationStops(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 6)
	timers := e.ToggleAutoplay()
	timers = e.Fire(timers[0]) // narrate row 1, schedule advance

	e.Next()
	snap := e.Snapshot()
	if snap.Autoplay || snap.Multiplier != 2 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if rec.Count(audio.CallCancel) != 1 {
		t.Errorf("expected narration cancelled, got %d", rec.Count(audio.CallCancel))
	}
	if next := e.Fire(timers[0]); next != nil {
		t.Errorf("stale advance produced %v", next)
	}
	if e.Snapshot().Multiplier != 2 {
		t.Error("stale advance moved the multiplier")
	}
}

func TestPractice_StartsAtCurrentRow(t *testing.T) {
	e, _ := newTestExplorer()
	mustSelect(t, e, 9)
	e.Next()
	e.Next()
	e.SetMode(ModePractice)

	snap := e.Snapshot()
	if snap.Mode != ModePractice || snap.Multiplier != 3 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if len(snap.Options) != 3 || !slices.Contains(snap.Options, 27) {
		t.Errorf("options %v should contain 27", snap.Options)
	}
}

func TestPractice_WrongThenRight(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 2)
	e.SetMode(ModePractice)

	if timers := e.SelectPracticeOption(99); timers != nil {
		t.Errorf("wrong pick returned %v", timers)
	}
	if e.Snapshot().Feedback != FeedbackWrong || rec.LastSpoken() != "Try again." {
		t.Errorf("unexpected wrong feedback %+v / %q", e.Snapshot(), rec.LastSpoken())
	}

	timers := e.SelectPracticeOption(2)
	if len(timers) != 1 || timers[0].Kind != TimerPracticeAdvance || timers[0].Delay != time.Second {
		t.Fatalf("unexpected timers %v", timers)
	}
	if rec.LastSpoken() != "That's right!" {
		t.Errorf("spoken %q", rec.LastSpoken())
	}

	// Picks are ignored until the advance fires.
	if again := e.SelectPracticeOption(2); again != nil {
		t.Errorf("pick during advance returned %v", again)
	}

	e.Fire(timers[0])
	snap := e.Snapshot()
	if snap.Multiplier != 2 || snap.Feedback != FeedbackNone || snap.Advancing {
		t.Errorf("unexpected snapshot after advance %+v", snap)
	}
	if !slices.Contains(snap.Options, 4) {
		t.Errorf("options %v should contain 4", snap.Options)
	}
}

func TestPractice_Finish(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 10)
	for i := 0; i < 9; i++ {
		e.Next()
	}
	e.SetMode(ModePractice)

	timers := e.SelectPracticeOption(100)
	timers = e.Fire(timers[0])
	if len(timers) != 1 || timers[0].Kind != TimerPracticeFinish || timers[0].Delay != 2*time.Second {
		t.Fatalf("expected finish timer, got %v", timers)
	}
	if rec.LastSpoken() != "You finished the practice!" {
		t.Errorf("spoken %q", rec.LastSpoken())
	}
	cues := rec.Cues()
	if cues[len(cues)-1] != audio.CueVictory {
		t.Errorf("expected victory cue, got %v", cues)
	}

	e.Fire(timers[0])
	snap := e.Snapshot()
	if snap.Mode != ModeLearn || snap.Options != nil {
		t.Errorf("expected learn mode, got %+v", snap)
	}
}

func TestSetMode_StopsAutoplay(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 8)
	timers := e.ToggleAutoplay()

	e.SetMode(ModePractice)
	if e.Snapshot().Autoplay {
		t.Error("autoplay should stop on mode change")
	}
	if rec.Count(audio.CallCancel) == 0 {
		t.Error("mode change should cancel narration")
	}
	if next := e.Fire(timers[0]); next != nil {
		t.Errorf("stale timer produced %v", next)
	}
}

func TestLearnOnlyOperationsIgnoredInPractice(t *testing.T) {
	e, _ := newTestExplorer()
	mustSelect(t, e, 4)
	e.SetMode(ModePractice)

	e.Next()
	if e.Snapshot().Multiplier != 1 {
		t.Error("Next should be ignored in practice")
	}
	if timers := e.ToggleAutoplay(); timers != nil {
		t.Error("autoplay should be ignored in practice")
	}
}

func TestLeave(t *testing.T) {
	e, rec := newTestExplorer()
	mustSelect(t, e, 3)
	timers := e.ToggleAutoplay()

	e.Leave()
	if e.Snapshot().Selected() {
		t.Error("Leave should unset the base")
	}
	if rec.Count(audio.CallCancel) != 1 {
		t.Errorf("expected one cancel, got %d", rec.Count(audio.CallCancel))
	}
	if next := e.Fire(timers[0]); next != nil {
		t.Errorf("timer survived Leave: %v", next)
	}
}

func TestBack(t *testing.T) {
	e, _ := newTestExplorer()
	if e.Back() {
		t.Error("Back without a table should report false")
	}
	mustSelect(t, e, 5)
	if !e.Back() {
		t.Error("Back with a table should report true")
	}
	if e.Snapshot().Selected() {
		t.Error("Back should close the table")
	}
}
