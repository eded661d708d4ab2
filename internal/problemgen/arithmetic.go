package problemgen

import "fmt"

// ArithmeticValidator recomputes the answer from the operands and checks
// that the operands respect the ranges of the requested difficulty.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

func (v *ArithmeticValidator) Validate(p *Problem, input GenerateInput) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if p.Operation != input.Operation {
		return fail("asked for %s, got %s", input.Operation, p.Operation)
	}

	maxOp := input.Difficulty.MaxOperand()
	var want int

	switch p.Operation {
	case Addition:
		if !inRange(p.First, 1, maxOp) || !inRange(p.Second, 1, maxOp) {
			return fail("operands %d and %d outside 1-%d", p.First, p.Second, maxOp)
		}
		want = p.First + p.Second
	case Subtraction:
		if !inRange(p.First, 1, maxOp) || !inRange(p.Second, 1, p.First) {
			return fail("subtraction %d - %d out of range", p.First, p.Second)
		}
		want = p.First - p.Second
	case Multiplication:
		limit := 5
		if input.Difficulty == Easy {
			limit = 3
		}
		if !inRange(p.First, 1, limit) || !inRange(p.Second, 1, limit) {
			return fail("factors %d and %d outside 1-%d", p.First, p.Second, limit)
		}
		want = p.First * p.Second
	case Division:
		if !inRange(p.Second, 1, 5) {
			return fail("divisor %d outside 1-5", p.Second)
		}
		if p.First%p.Second != 0 {
			return fail("%d is not divisible by %d", p.First, p.Second)
		}
		want = p.First / p.Second
		if !inRange(want, 1, 4) {
			return fail("quotient %d outside 1-4", want)
		}
	default:
		return fail("operation %s is not concrete", p.Operation)
	}

	if p.Answer != want {
		return fail("answer %d is wrong, expected %d", p.Answer, want)
	}
	if err := p.Validate(); err != nil {
		return fail("options: %v", err)
	}
	return nil
}

func inRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
