package problemgen

import "context"

// Generator produces arithmetic problems.
type Generator interface {
	// Generate returns a problem for the operation and difficulty. Mixed is
	// resolved by the generator. A non-nil error means no problem was made;
	// callers that must always have a problem use a Source.
	Generate(ctx context.Context, op Operation, diff Difficulty) (Problem, error)
}

// Source hands out problems without failing. The game session draws every
// question from a Source.
type Source interface {
	Problem(ctx context.Context, op Operation, diff Difficulty) Problem
}

// FallbackProblem is served when nothing else could produce a valid problem.
func FallbackProblem() Problem {
	return Problem{
		Question:      "Count the stars!",
		FirstVisuals:  []string{"⭐", "⭐"},
		SecondVisuals: []string{},
		Operation:     Addition,
		Symbol:        Addition.Symbol(),
		First:         2,
		Second:        0,
		Answer:        2,
		Options:       []int{1, 2, 3},
		Hint:          "Twinkle twinkle!",
	}
}
