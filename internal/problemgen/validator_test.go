package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 2 {
		t.Fatalf("expected 2 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "arithmetic"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTokens != 400 {
		t.Errorf("expected MaxTokens 400, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.8 {
		t.Errorf("expected Temperature 0.8, got %f", cfg.Temperature)
	}
	if !cfg.RepairOptions {
		t.Error("expected RepairOptions on by default")
	}
}

func TestArithmetic_AcceptsLocalProblems(t *testing.T) {
	v := &ArithmeticValidator{}
	gen := NewLocal(testRNG(20))
	for _, op := range []Operation{Addition, Subtraction, Multiplication, Division} {
		for _, diff := range Difficulties {
			for i := 0; i < 100; i++ {
				p := gen.Build(op, diff)
				if err := v.Validate(&p, GenerateInput{Operation: op, Difficulty: diff}); err != nil {
					t.Fatalf("%s/%s rejected %+v: %v", op, diff, p, err)
				}
			}
		}
	}
}

func TestArithmetic_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		p     Problem
		input GenerateInput
	}{
		{
			name:  "wrong answer",
			p:     Problem{Operation: Addition, First: 2, Second: 2, Answer: 5, Options: []int{4, 5, 6}},
			input: GenerateInput{Operation: Addition, Difficulty: Easy},
		},
		{
			name:  "operand above ceiling",
			p:     Problem{Operation: Addition, First: 9, Second: 1, Answer: 10, Options: []int{9, 10, 11}},
			input: GenerateInput{Operation: Addition, Difficulty: Easy},
		},
		{
			name:  "negative difference",
			p:     Problem{Operation: Subtraction, First: 2, Second: 4, Answer: 0, Options: []int{0, 1, 2}},
			input: GenerateInput{Operation: Subtraction, Difficulty: Easy},
		},
		{
			name:  "easy factor too large",
			p:     Problem{Operation: Multiplication, First: 4, Second: 2, Answer: 8, Options: []int{7, 8, 9}},
			input: GenerateInput{Operation: Multiplication, Difficulty: Easy},
		},
		{
			name:  "inexact division",
			p:     Problem{Operation: Division, First: 7, Second: 2, Answer: 3, Options: []int{2, 3, 4}},
			input: GenerateInput{Operation: Division, Difficulty: Hard},
		},
		{
			name:  "quotient too large",
			p:     Problem{Operation: Division, First: 10, Second: 2, Answer: 5, Options: []int{4, 5, 6}},
			input: GenerateInput{Operation: Division, Difficulty: Hard},
		},
		{
			name:  "operation mismatch",
			p:     Problem{Operation: Multiplication, First: 2, Second: 2, Answer: 4, Options: []int{3, 4, 5}},
			input: GenerateInput{Operation: Addition, Difficulty: Easy},
		},
		{
			name:  "answer missing from options",
			p:     Problem{Operation: Addition, First: 2, Second: 2, Answer: 4, Options: []int{3, 5, 6}},
			input: GenerateInput{Operation: Addition, Difficulty: Easy},
		},
	}

	v := &ArithmeticValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.p, tt.input)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if err.Validator != "arithmetic" {
				t.Errorf("expected validator %q, got %q", "arithmetic", err.Validator)
			}
		})
	}
}
