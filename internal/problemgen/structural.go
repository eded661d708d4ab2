package problemgen

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxQuestionLen = 200
	maxHintLen     = 200
	maxVisuals     = 40
)

// StructuralValidator checks that required fields are present and within
// display limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if p.Question == "" {
		return fail("question is empty")
	}
	if utf8.RuneCountInString(p.Question) > maxQuestionLen {
		return fail(fmt.Sprintf("question exceeds %d characters", maxQuestionLen))
	}
	if utf8.RuneCountInString(p.Hint) > maxHintLen {
		return fail(fmt.Sprintf("hint exceeds %d characters", maxHintLen))
	}
	if len(p.FirstVisuals) == 0 {
		return fail("first operand has no visuals")
	}
	if len(p.FirstVisuals)+len(p.SecondVisuals) > maxVisuals {
		return fail(fmt.Sprintf("more than %d visual tokens", maxVisuals))
	}
	if len(p.FirstVisuals) != p.First {
		return fail("first visuals do not match first operand")
	}
	if len(p.SecondVisuals) != p.Second {
		return fail("second visuals do not match second operand")
	}
	switch p.Symbol {
	case "+", "−", "×", "÷":
	default:
		return fail(fmt.Sprintf("unknown symbol %q", p.Symbol))
	}
	return nil
}
