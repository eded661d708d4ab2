package problemgen

import (
	"fmt"
	"slices"
	"strings"
)

// Operation is the arithmetic category a problem is drawn from.
type Operation int

const (
	Addition Operation = iota
	Subtraction
	Multiplication
	Division
	// Mixed resolves to a concrete operation per problem.
	Mixed
)

// Operations lists every operation in menu order.
var Operations = []Operation{Addition, Subtraction, Multiplication, Division, Mixed}

// String returns the lower-case key used in flags, config, and storage.
func (o Operation) String() string {
	switch o {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	case Multiplication:
		return "multiplication"
	case Division:
		return "division"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Title is the label shown on the operation card.
func (o Operation) Title() string {
	switch o {
	case Addition:
		return "Add"
	case Subtraction:
		return "Subtract"
	case Multiplication:
		return "Multiply"
	case Division:
		return "Divide"
	case Mixed:
		return "Mix It Up!"
	default:
		return o.String()
	}
}

// Symbol returns the display symbol for a concrete operation.
// Mixed has no symbol of its own.
func (o Operation) Symbol() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "−"
	case Multiplication:
		return "×"
	case Division:
		return "÷"
	default:
		return "?"
	}
}

// Concrete reports whether o can be used to build a problem directly.
func (o Operation) Concrete() bool {
	return o >= Addition && o <= Division
}

// ParseOperation accepts the String form or a short alias ("add", "sub", "mul", "div", "mix").
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addition", "add", "+":
		return Addition, nil
	case "subtraction", "sub", "subtract", "-":
		return Subtraction, nil
	case "multiplication", "mul", "multiply", "times", "x":
		return Multiplication, nil
	case "division", "div", "divide", "/":
		return Division, nil
	case "mixed", "mix":
		return Mixed, nil
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Difficulty selects the operand magnitude ceiling.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// MaxOperand is the largest operand value for addition and subtraction.
func (d Difficulty) MaxOperand() int {
	switch d {
	case Medium:
		return 10
	case Hard:
		return 20
	default:
		return 5
	}
}

// Label is the level name shown on the difficulty card.
func (d Difficulty) Label() string {
	switch d {
	case Medium:
		return "Learner"
	case Hard:
		return "Master"
	default:
		return "Starter"
	}
}

// Description names the number range, e.g. "Numbers 1-10".
func (d Difficulty) Description() string {
	return fmt.Sprintf("Numbers 1-%d", d.MaxOperand())
}

// ParseDifficulty accepts the String form or the level label.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "starter":
		return Easy, nil
	case "medium", "learner":
		return Medium, nil
	case "hard", "master":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// mixedCandidates returns the operations Mixed may resolve to. Harder
// operations unlock only at higher difficulty.
func mixedCandidates(d Difficulty) []Operation {
	switch d {
	case Easy:
		return []Operation{Addition, Subtraction}
	case Medium:
		return []Operation{Addition, Subtraction, Multiplication}
	default:
		return []Operation{Addition, Subtraction, Multiplication, Division}
	}
}

// Problem is a single multiple-choice arithmetic question. It is never
// mutated after construction.
type Problem struct {
	// Question is the text read aloud and shown above the visuals,
	// e.g. "What is 3 plus 2?".
	Question string

	// FirstVisuals repeats one token First times.
	FirstVisuals []string

	// SecondVisuals repeats a token Second times. For division it holds
	// container tokens. May be empty.
	SecondVisuals []string

	// Operation is always concrete, even when Mixed was requested.
	Operation Operation

	// Symbol is one of + − × ÷.
	Symbol string

	First  int
	Second int

	// Answer is the unique correct result.
	Answer int

	// Options holds exactly three distinct non-negative values, one of
	// which is Answer, in random order.
	Options []int

	Hint string
}

// IsCorrect reports whether option answers the problem.
func (p Problem) IsCorrect(option int) bool {
	return option == p.Answer
}

// Validate checks the option-set invariants every problem must satisfy.
func (p Problem) Validate() error {
	if len(p.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(p.Options))
	}
	if !slices.Contains(p.Options, p.Answer) {
		return fmt.Errorf("answer %d not among options %v", p.Answer, p.Options)
	}
	seen := make(map[int]bool, len(p.Options))
	for _, o := range p.Options {
		if o < 0 {
			return fmt.Errorf("negative option %d", o)
		}
		if seen[o] {
			return fmt.Errorf("duplicate option %d", o)
		}
		seen[o] = true
	}
	return nil
}
