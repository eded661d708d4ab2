// Package session runs the quiz: pick an operation, pick a difficulty,
// answer a fixed number of picture problems, then see the score.
//
// Machine never sleeps. Methods that want something to happen later return
// Timer values; the caller schedules them and hands them back to Fire.
// Every transition bumps the epoch, so a timer that outlives its state is
// dropped when it fires.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
)

// Deps are the machine's collaborators. Only Problems is required.
type Deps struct {
	Problems problemgen.Source
	Scores   ScoreKeeper
	History  HistoryRecorder
	Audio    audio.Player
	Logger   *slog.Logger
	Now      func() time.Time
}

// Machine is the quiz state machine. It is not safe for concurrent use;
// the UI drives it from a single goroutine.
type Machine struct {
	cfg      Config
	problems problemgen.Source
	scores   ScoreKeeper
	history  HistoryRecorder
	audio    audio.Player
	logger   *slog.Logger
	now      func() time.Time

	state     GameState
	op        problemgen.Operation
	diff      problemgen.Difficulty
	problem   *problemgen.Problem
	feedback  Feedback
	score     int
	correct   int
	index     int
	epoch     uint64
	startedAt time.Time

	highScore     int
	startHigh     int
	newHighScore  bool
	resultMessage string
}

// New creates a machine in StateSelectOperation and reads the stored high
// score once.
func New(ctx context.Context, cfg Config, deps Deps) *Machine {
	m := &Machine{
		cfg:      cfg,
		problems: deps.Problems,
		scores:   deps.Scores,
		history:  deps.History,
		audio:    deps.Audio,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	if m.problems == nil {
		m.problems = problemgen.NewLocal(nil)
	}
	if m.audio == nil {
		m.audio = audio.Nop{}
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.cfg.TotalQuestions < 1 {
		m.cfg.TotalQuestions = DefaultConfig().TotalQuestions
	}

	if m.scores != nil {
		hs, err := m.scores.ReadHighScore(ctx)
		if err != nil {
			m.logger.Error("read high score failed", "error", err)
			hs = 0
		}
		m.highScore = max(hs, 0)
	}
	return m
}

// SelectOperation records op (Mixed stays Mixed) and moves on to choosing
// a difficulty.
func (m *Machine) SelectOperation(op problemgen.Operation) {
	m.bump()
	m.reset()
	m.op = op
	m.state = StateSelectDifficulty

	m.audio.Play(audio.CueHover)
	m.audio.Speak(op.String() + " selected")
}

// SelectDifficulty starts a quiz. It is ignored unless an operation has
// been chosen.
func (m *Machine) SelectDifficulty(ctx context.Context, diff problemgen.Difficulty) []Timer {
	if m.state != StateSelectDifficulty {
		return nil
	}
	m.audio.Play(audio.CueHover)
	m.start(ctx, diff)
	return nil
}

// Submit answers the current problem. Answers are ignored while feedback
// is showing.
func (m *Machine) Submit(ctx context.Context, option int) []Timer {
	if m.state != StatePlaying || m.feedback != FeedbackNone || m.problem == nil {
		return nil
	}

	m.bump()
	if m.problem.IsCorrect(option) {
		m.score += m.cfg.PointsPerCorrect
		m.correct++
		m.feedback = FeedbackCorrect
		m.audio.Play(audio.CueCorrect)
		m.audio.Speak("Correct!")
		return m.timer(TimerAdvanceQuestion, m.cfg.CorrectDelay)
	}

	m.feedback = FeedbackWrong
	m.audio.Play(audio.CueWrong)
	m.audio.Speak("Oops! Try again.")
	return m.timer(TimerClearFeedback, m.cfg.WrongDelay)
}

// Fire applies a timer returned earlier. Stale timers are ignored.
func (m *Machine) Fire(ctx context.Context, t Timer) []Timer {
	if t.Epoch != m.epoch {
		m.logger.Debug("stale quiz timer dropped", "kind", t.Kind.String(),
			"timer_epoch", t.Epoch, "epoch", m.epoch)
		return nil
	}

	switch t.Kind {
	case TimerAdvanceQuestion:
		if m.state != StatePlaying || m.feedback != FeedbackCorrect {
			return nil
		}
		if m.index+1 >= m.cfg.TotalQuestions {
			return m.finish(ctx)
		}
		m.bump()
		m.index++
		m.nextProblem(ctx)
	case TimerClearFeedback:
		if m.feedback == FeedbackWrong {
			m.bump()
			m.feedback = FeedbackNone
		}
	case TimerResultNarration:
		if m.state == StateResult {
			m.audio.Speak(m.resultMessage)
		}
	}
	return nil
}

// PlayAgain restarts the quiz with the same operation and difficulty.
func (m *Machine) PlayAgain(ctx context.Context) []Timer {
	if m.state != StateResult {
		return nil
	}
	m.audio.Play(audio.CueHover)
	m.start(ctx, m.diff)
	return nil
}

// Menu goes back to choosing an operation and clears the quiz.
func (m *Machine) Menu() {
	m.audio.Play(audio.CueHover)
	m.bump()
	m.reset()
}

// Back steps from choosing a difficulty to choosing an operation. It
// reports false in every other state so the caller can leave the quiz.
func (m *Machine) Back() bool {
	if m.state != StateSelectDifficulty {
		return false
	}
	m.bump()
	m.reset()
	return true
}

// Exit abandons the quiz. Pending timers become stale and narration stops.
// A quiz abandoned before the result never touches the high score.
func (m *Machine) Exit() {
	m.bump()
	m.audio.Cancel()
	m.reset()
}

// Snapshot returns the current state for rendering.
func (m *Machine) Snapshot() Snapshot {
	var p *problemgen.Problem
	if m.problem != nil {
		cp := *m.problem
		p = &cp
	}
	return Snapshot{
		State:        m.state,
		Operation:    m.op,
		Difficulty:   m.diff,
		Problem:      p,
		Feedback:     m.feedback,
		Score:        m.score,
		Correct:      m.correct,
		Index:        m.index,
		Total:        m.cfg.TotalQuestions,
		HighScore:    m.highScore,
		NewHighScore: m.newHighScore,
		Epoch:        m.epoch,
	}
}

// Epoch returns the current timer generation.
func (m *Machine) Epoch() uint64 {
	return m.epoch
}

// ResultMessage is the line spoken on the result screen.
func (m *Machine) ResultMessage() string {
	return m.resultMessage
}

func (m *Machine) start(ctx context.Context, diff problemgen.Difficulty) {
	m.bump()
	m.diff = diff
	m.score = 0
	m.correct = 0
	m.index = 0
	m.newHighScore = false
	m.resultMessage = ""
	m.startHigh = m.highScore
	m.startedAt = m.now()
	m.state = StatePlaying
	m.nextProblem(ctx)
}

func (m *Machine) nextProblem(ctx context.Context) {
	m.feedback = FeedbackNone
	p := m.problems.Problem(ctx, m.op, m.diff)
	if err := p.Validate(); err != nil {
		m.logger.Warn("invalid problem from source, using fallback", "error", err)
		p = problemgen.FallbackProblem()
	}
	m.problem = &p
	m.audio.Speak(p.Question)
}

// finish enters StateResult. It runs once per completed quiz because the
// advance timer that triggers it is only issued while playing.
func (m *Machine) finish(ctx context.Context) []Timer {
	m.bump()
	m.state = StateResult
	m.feedback = FeedbackNone
	m.audio.Play(audio.CueVictory)

	if m.score > m.startHigh {
		m.newHighScore = true
		m.highScore = m.score
		m.resultMessage = fmt.Sprintf("Wow! New High Score! %d points!", m.score)
		if m.scores != nil {
			if err := m.scores.WriteHighScore(ctx, m.score); err != nil {
				m.logger.Error("save high score failed", "score", m.score, "error", err)
			}
		}
	} else {
		m.resultMessage = fmt.Sprintf("Great job! You got %d points.", m.score)
	}

	rec := GameRecord{
		ID:           uuid.NewString(),
		Operation:    m.op,
		Difficulty:   m.diff,
		Score:        m.score,
		Correct:      m.correct,
		Total:        m.cfg.TotalQuestions,
		NewHighScore: m.newHighScore,
		StartedAt:    m.startedAt,
		FinishedAt:   m.now(),
	}
	if m.history != nil {
		if err := m.history.RecordGame(ctx, rec); err != nil {
			m.logger.Error("record game failed", "game_id", rec.ID, "error", err)
		}
	}
	m.logger.Info("quiz finished",
		"game_id", rec.ID,
		"operation", m.op.String(),
		"difficulty", m.diff.String(),
		"score", m.score,
		"new_high_score", m.newHighScore)

	return m.timer(TimerResultNarration, m.cfg.ResultNarrationDelay)
}

func (m *Machine) reset() {
	m.state = StateSelectOperation
	m.op = problemgen.Addition
	m.diff = problemgen.Easy
	m.problem = nil
	m.feedback = FeedbackNone
	m.score = 0
	m.correct = 0
	m.index = 0
	m.newHighScore = false
	m.resultMessage = ""
}

func (m *Machine) bump() {
	m.epoch++
}

func (m *Machine) timer(kind TimerKind, delay time.Duration) []Timer {
	return []Timer{{Kind: kind, Epoch: m.epoch, Delay: delay}}
}
