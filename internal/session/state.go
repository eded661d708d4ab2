package session

import (
	"context"
	"time"

	"github.com/abhisek/mathworld/internal/problemgen"
)

// GameState is the screen-level phase of a quiz.
type GameState int

const (
	StateSelectOperation  GameState = iota // Choosing add/subtract/...
	StateSelectDifficulty                  // Choosing Starter/Learner/Master
	StatePlaying                           // Answering questions
	StateResult                            // Showing the final score
)

func (s GameState) String() string {
	switch s {
	case StateSelectOperation:
		return "select-operation"
	case StateSelectDifficulty:
		return "select-difficulty"
	case StatePlaying:
		return "playing"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Feedback is shown over the current problem after an answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// TimerKind identifies a delayed transition.
type TimerKind int

const (
	TimerAdvanceQuestion TimerKind = iota
	TimerClearFeedback
	TimerResultNarration
)

func (k TimerKind) String() string {
	switch k {
	case TimerAdvanceQuestion:
		return "advance-question"
	case TimerClearFeedback:
		return "clear-feedback"
	case TimerResultNarration:
		return "result-narration"
	default:
		return "unknown"
	}
}

// Timer asks the caller to call Fire with it after Delay. A timer whose
// Epoch no longer matches the machine is ignored when fired.
type Timer struct {
	Kind  TimerKind
	Epoch uint64
	Delay time.Duration
}

// Config holds the game constants.
type Config struct {
	TotalQuestions       int
	PointsPerCorrect     int
	CorrectDelay         time.Duration
	WrongDelay           time.Duration
	ResultNarrationDelay time.Duration
}

// DefaultConfig returns five questions worth ten points each.
func DefaultConfig() Config {
	return Config{
		TotalQuestions:       5,
		PointsPerCorrect:     10,
		CorrectDelay:         1500 * time.Millisecond,
		WrongDelay:           1000 * time.Millisecond,
		ResultNarrationDelay: 600 * time.Millisecond,
	}
}

// ScoreKeeper persists the best score across runs. A missing score reads
// as zero.
type ScoreKeeper interface {
	ReadHighScore(ctx context.Context) (int, error)
	WriteHighScore(ctx context.Context, score int) error
}

// GameRecord is one completed quiz.
type GameRecord struct {
	ID           string
	Operation    problemgen.Operation
	Difficulty   problemgen.Difficulty
	Score        int
	Correct      int
	Total        int
	NewHighScore bool
	StartedAt    time.Time
	FinishedAt   time.Time
}

// HistoryRecorder stores completed quizzes.
type HistoryRecorder interface {
	RecordGame(ctx context.Context, rec GameRecord) error
}

// Snapshot is a read-only view of the machine for rendering.
type Snapshot struct {
	State        GameState
	Operation    problemgen.Operation
	Difficulty   problemgen.Difficulty
	Problem      *problemgen.Problem
	Feedback     Feedback
	Score        int
	Correct      int
	Index        int
	Total        int
	HighScore    int
	NewHighScore bool
	Epoch        uint64
}

// Progress returns how far through the quiz the player is, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Index) / float64(s.Total)
}
