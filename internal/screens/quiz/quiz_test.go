package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/ui/components"
)

type fixedSource struct{}

func (fixedSource) Problem(context.Context, problemgen.Operation, problemgen.Difficulty) problemgen.Problem {
	return problemgen.Problem{
		Question:      "What is 1 plus 2?",
		FirstVisuals:  []string{"🍎"},
		SecondVisuals: []string{"🍎", "🍎"},
		Operation:     problemgen.Addition,
		Symbol:        "+",
		First:         1,
		Second:        2,
		Answer:        3,
		Options:       []int{2, 3, 5},
		Hint:          "Count all of them together!",
	}
}

type memScores struct{ high int }

func (m *memScores) ReadHighScore(context.Context) (int, error)    { return m.high, nil }
func (m *memScores) WriteHighScore(_ context.Context, s int) error { m.high = s; return nil }

func newTestQuiz(t *testing.T, start *Start) (*QuizScreen, *session.Machine, *audio.Recorder, *memScores) {
	t.Helper()
	rec := &audio.Recorder{}
	scores := &memScores{}
	m := session.New(context.Background(), session.DefaultConfig(), session.Deps{
		Problems: fixedSource{},
		Scores:   scores,
		Audio:    rec,
	})
	s := New(context.Background(), m, rec, start, nil)
	s.Init()
	return s, m, rec, scores
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// run feeds a key to the screen and then feeds back the message its
// command produces, as the Bubble Tea loop would. Timer ticks are not
// run; tests fire them by hand.
func run(t *testing.T, s *QuizScreen, msg tea.KeyPressMsg) {
	t.Helper()
	_, cmd := s.Update(msg)
	if cmd == nil {
		return
	}
	out := cmd()
	switch out.(type) {
	case operationChosenMsg, difficultyChosenMsg, playAgainMsg, menuMsg, components.ChoiceMsg:
		s.Update(out)
	default:
		t.Fatalf("unexpected message %T", out)
	}
}

func fire(s *QuizScreen, m *session.Machine, kind session.TimerKind) {
	s.Update(timerMsg{timer: session.Timer{Kind: kind, Epoch: m.Epoch()}})
}

func TestPickOperationAndDifficulty(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, nil)

	run(t, s, keyPress('3'))
	snap := m.Snapshot()
	if snap.State != session.StateSelectDifficulty || snap.Operation != problemgen.Multiplication {
		t.Fatalf("expected multiplication difficulty picker, got %s/%s", snap.State, snap.Operation)
	}

	run(t, s, keyPress('2'))
	snap = m.Snapshot()
	if snap.State != session.StatePlaying || snap.Difficulty != problemgen.Medium {
		t.Fatalf("expected medium quiz, got %s/%s", snap.State, snap.Difficulty)
	}
	if len(s.choices.Values) != 3 {
		t.Errorf("expected answer row, got %v", s.choices.Values)
	}
}

func TestStartSkipsPickers(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, &Start{Operation: problemgen.Division, Difficulty: problemgen.Hard})
	snap := m.Snapshot()
	if snap.State != session.StatePlaying || snap.Operation != problemgen.Division {
		t.Fatalf("expected division quiz in play, got %s/%s", snap.State, snap.Operation)
	}
	if !strings.Contains(s.View(100, 30), "What is 1 plus 2?") {
		t.Error("question missing from view")
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})

	run(t, s, keyPress('2'))
	snap := m.Snapshot()
	if snap.Feedback != session.FeedbackCorrect || snap.Score != 10 {
		t.Fatalf("expected correct feedback and 10 points, got %v / %d", snap.Feedback, snap.Score)
	}
	if !s.choices.Locked || !s.choices.Reveal {
		t.Error("answer row should lock and reveal during feedback")
	}

	fire(s, m, session.TimerAdvanceQuestion)
	snap = m.Snapshot()
	if snap.Index != 1 || snap.Feedback != session.FeedbackNone {
		t.Fatalf("expected question 2, got index %d feedback %v", snap.Index, snap.Feedback)
	}
	if s.choices.Locked {
		t.Error("answer row should unlock for the next question")
	}
}

func TestWrongAnswerMarksPick(t *testing.T) {
	s, m, rec, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})

	run(t, s, keyPress('3'))
	if m.Snapshot().Feedback != session.FeedbackWrong {
		t.Fatal("expected wrong feedback")
	}
	if s.choices.Picked != 5 {
		t.Errorf("expected wrong pick 5 to be marked, got %d", s.choices.Picked)
	}
	if !strings.Contains(s.View(100, 30), "Oops! Try again.") {
		t.Error("wrong banner missing")
	}

	fire(s, m, session.TimerClearFeedback)
	if m.Snapshot().Feedback != session.FeedbackNone || s.choices.Picked != -1 {
		t.Error("feedback should clear for another try")
	}

	spoken := rec.Spoken()
	if spoken[len(spoken)-1] != "Oops! Try again." {
		t.Errorf("last narration = %q", spoken[len(spoken)-1])
	}
}

func TestFullQuizReachesResult(t *testing.T) {
	s, m, _, scores := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})

	for i := 0; i < session.DefaultConfig().TotalQuestions; i++ {
		run(t, s, keyPress('2'))
		fire(s, m, session.TimerAdvanceQuestion)
	}

	snap := m.Snapshot()
	if snap.State != session.StateResult {
		t.Fatalf("expected result, got %s", snap.State)
	}
	if !snap.NewHighScore || scores.high != 50 {
		t.Errorf("expected new high score 50, got %v / %d", snap.NewHighScore, scores.high)
	}
	view := s.View(100, 30)
	for _, want := range []string{"You Won!", "Your Score", "50", "New High Score!", "Play Again"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	run(t, s, keyPress('1'))
	snap = m.Snapshot()
	if snap.State != session.StatePlaying || snap.Score != 0 || snap.Index != 0 {
		t.Fatalf("play again should restart, got %s score %d index %d", snap.State, snap.Score, snap.Index)
	}
}

func TestResultMenuReturnsToPicker(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})
	for i := 0; i < session.DefaultConfig().TotalQuestions; i++ {
		run(t, s, keyPress('2'))
		fire(s, m, session.TimerAdvanceQuestion)
	}

	run(t, s, keyPress('2'))
	if m.Snapshot().State != session.StateSelectOperation {
		t.Fatalf("expected operation picker, got %s", m.Snapshot().State)
	}
}

func TestStaleTimerAfterBackIsIgnored(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})

	run(t, s, keyPress('2'))
	stale := session.Timer{Kind: session.TimerAdvanceQuestion, Epoch: m.Epoch()}

	if !s.Back() {
		t.Fatal("back during play should be handled by the quiz")
	}
	s.Update(timerMsg{timer: stale})

	snap := m.Snapshot()
	if snap.State != session.StateSelectOperation || snap.Index != 0 {
		t.Errorf("stale timer changed state: %s index %d", snap.State, snap.Index)
	}
}

func TestBackSteps(t *testing.T) {
	s, m, _, _ := newTestQuiz(t, nil)
	if s.Back() {
		t.Error("back at the operation picker should leave the screen")
	}

	run(t, s, keyPress('1'))
	if !s.Back() {
		t.Fatal("back at the difficulty picker should be handled")
	}
	if m.Snapshot().State != session.StateSelectOperation {
		t.Errorf("expected operation picker, got %s", m.Snapshot().State)
	}
}

func TestLeaveCancelsAudio(t *testing.T) {
	s, m, rec, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})
	s.Leave()

	if m.Snapshot().State != session.StateSelectOperation {
		t.Error("leave should reset the quiz")
	}
	calls := rec.Calls()
	if calls[len(calls)-1].Kind != audio.CallCancel {
		t.Errorf("expected audio cancel, got %+v", calls[len(calls)-1])
	}
}

func TestRepeatReadsQuestion(t *testing.T) {
	s, _, rec, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})
	before := len(rec.Spoken())

	s.Update(keyPress('r'))
	spoken := rec.Spoken()
	if len(spoken) != before+1 || spoken[len(spoken)-1] != "What is 1 plus 2?" {
		t.Errorf("expected the question to be read again, got %v", spoken)
	}
}

func TestKeyHintsFollowState(t *testing.T) {
	s, _, _, _ := newTestQuiz(t, &Start{Operation: problemgen.Addition, Difficulty: problemgen.Easy})
	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "1-3" {
			found = true
		}
	}
	if !found {
		t.Error("playing hints should offer number keys")
	}
}
