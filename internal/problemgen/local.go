package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
)

// ItemTokens are the counting glyphs. One is picked per problem.
var ItemTokens = []string{"🍎", "🍌", "🍇", "🐶", "🐱", "🦁", "🐸", "⭐", "🎈", "🚗", "🍪", "🦖"}

// ContainerToken stands for a group when sharing items in division.
const ContainerToken = "🧺"

// Local builds problems from closed-form operand ranges. It cannot fail.
type Local struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var (
	_ Generator = (*Local)(nil)
	_ Source    = (*Local)(nil)
)

// NewLocal returns a generator drawing from rng. Pass a seeded rng for
// reproducible output; nil seeds one at random.
func NewLocal(rng *rand.Rand) *Local {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Local{rng: rng}
}

// Generate always succeeds.
func (l *Local) Generate(_ context.Context, op Operation, diff Difficulty) (Problem, error) {
	return l.Build(op, diff), nil
}

// Problem implements Source.
func (l *Local) Problem(_ context.Context, op Operation, diff Difficulty) Problem {
	return l.Build(op, diff)
}

// Build returns a fresh problem for op at diff.
func (l *Local) Build(op Operation, diff Difficulty) Problem {
	l.mu.Lock()
	defer l.mu.Unlock()

	if op == Mixed {
		candidates := mixedCandidates(diff)
		op = candidates[l.rng.IntN(len(candidates))]
	}
	if !op.Concrete() {
		op = Addition
	}

	lo, hi := 1, diff.MaxOperand()
	var first, second, answer int

	switch op {
	case Addition:
		first = l.between(lo, hi)
		second = l.between(lo, hi)
		answer = first + second
	case Subtraction:
		first = l.between(lo, hi)
		second = l.between(1, first)
		answer = first - second
	case Multiplication:
		// Kept small so the groups stay countable on screen.
		limit := 5
		if diff == Easy {
			limit = 3
		}
		first = l.between(1, limit)
		second = l.between(1, limit)
		answer = first * second
	case Division:
		second = l.between(1, 5)
		answer = l.between(1, 4)
		first = second * answer
	}

	token := ItemTokens[l.rng.IntN(len(ItemTokens))]
	secondToken := token
	if op == Division {
		secondToken = ContainerToken
	}

	return Problem{
		Question:      questionText(op, first, second),
		FirstVisuals:  repeat(token, first),
		SecondVisuals: repeat(secondToken, second),
		Operation:     op,
		Symbol:        op.Symbol(),
		First:         first,
		Second:        second,
		Answer:        answer,
		Options:       BuildOptions(l.rng, answer),
		Hint:          hintText(op),
	}
}

// between returns a uniform integer in [lo, hi].
func (l *Local) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + l.rng.IntN(hi-lo+1)
}

func repeat(token string, n int) []string {
	return slices.Repeat([]string{token}, max(n, 0))
}

func questionText(op Operation, a, b int) string {
	switch op {
	case Addition:
		return fmt.Sprintf("What is %d plus %d?", a, b)
	case Subtraction:
		return fmt.Sprintf("What is %d take away %d?", a, b)
	case Multiplication:
		return fmt.Sprintf("What is %d times %d?", a, b)
	case Division:
		return fmt.Sprintf("What is %d divided by %d?", a, b)
	default:
		return ""
	}
}

func hintText(op Operation) string {
	switch op {
	case Addition:
		return "Count all of them together!"
	case Subtraction:
		return "Cross out the ones we take away."
	case Multiplication:
		return "Add the groups together."
	case Division:
		return "Share them equally."
	default:
		return ""
	}
}
