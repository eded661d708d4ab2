package problemgen

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const draws = 2000

func TestLocal_AllProblemsSatisfyOptionInvariants(t *testing.T) {
	gen := NewLocal(testRNG(1))
	for _, op := range Operations {
		for _, diff := range Difficulties {
			for i := 0; i < 200; i++ {
				p := gen.Build(op, diff)
				if err := p.Validate(); err != nil {
					t.Fatalf("%s/%s: %v (problem %+v)", op, diff, err, p)
				}
				if !p.Operation.Concrete() {
					t.Fatalf("%s/%s: unresolved operation %s", op, diff, p.Operation)
				}
			}
		}
	}
}

func TestLocal_AdditionRespectsCeiling(t *testing.T) {
	gen := NewLocal(testRNG(2))
	for _, diff := range Difficulties {
		maxOp := diff.MaxOperand()
		for i := 0; i < draws; i++ {
			p := gen.Build(Addition, diff)
			if p.First < 1 || p.First > maxOp || p.Second < 1 || p.Second > maxOp {
				t.Fatalf("%s: operands %d, %d outside 1-%d", diff, p.First, p.Second, maxOp)
			}
			if p.Answer != p.First+p.Second {
				t.Fatalf("%d + %d gave %d", p.First, p.Second, p.Answer)
			}
		}
	}
}

func TestLocal_SubtractionNeverNegative(t *testing.T) {
	gen := NewLocal(testRNG(3))
	for _, diff := range Difficulties {
		for i := 0; i < draws; i++ {
			p := gen.Build(Subtraction, diff)
			if p.Answer < 0 {
				t.Fatalf("negative answer: %d - %d = %d", p.First, p.Second, p.Answer)
			}
			if p.Second < 1 || p.Second > p.First {
				t.Fatalf("second operand %d outside 1-%d", p.Second, p.First)
			}
		}
	}
}

func TestLocal_DivisionIsExact(t *testing.T) {
	gen := NewLocal(testRNG(4))
	for i := 0; i < draws; i++ {
		p := gen.Build(Division, Hard)
		if p.Second < 1 || p.Second > 5 {
			t.Fatalf("divisor %d outside 1-5", p.Second)
		}
		if p.Answer < 1 || p.Answer > 4 {
			t.Fatalf("quotient %d outside 1-4", p.Answer)
		}
		if p.First != p.Second*p.Answer {
			t.Fatalf("dividend %d != %d x %d", p.First, p.Second, p.Answer)
		}
	}
}

func TestLocal_MultiplicationUsesTightRange(t *testing.T) {
	gen := NewLocal(testRNG(5))
	tests := []struct {
		diff  Difficulty
		limit int
	}{
		{Easy, 3},
		{Medium, 5},
		{Hard, 5},
	}
	for _, tt := range tests {
		for i := 0; i < draws; i++ {
			p := gen.Build(Multiplication, tt.diff)
			if p.First < 1 || p.First > tt.limit || p.Second < 1 || p.Second > tt.limit {
				t.Fatalf("%s: factors %d, %d outside 1-%d", tt.diff, p.First, p.Second, tt.limit)
			}
			if p.Answer != p.First*p.Second {
				t.Fatalf("%d x %d gave %d", p.First, p.Second, p.Answer)
			}
		}
	}
}

func TestLocal_MixedIsGatedByDifficulty(t *testing.T) {
	gen := NewLocal(testRNG(6))
	seen := map[Difficulty]map[Operation]bool{}
	for _, diff := range Difficulties {
		seen[diff] = map[Operation]bool{}
		for i := 0; i < draws; i++ {
			seen[diff][gen.Build(Mixed, diff).Operation] = true
		}
	}

	if seen[Easy][Multiplication] || seen[Easy][Division] {
		t.Errorf("easy mixed produced %v", seen[Easy])
	}
	if seen[Medium][Division] {
		t.Errorf("medium mixed produced division")
	}
	if !seen[Medium][Multiplication] {
		t.Errorf("medium mixed never produced multiplication")
	}
	for _, op := range []Operation{Addition, Subtraction, Multiplication, Division} {
		if !seen[Hard][op] {
			t.Errorf("hard mixed never produced %s", op)
		}
	}
}

func TestLocal_VisualsMatchOperands(t *testing.T) {
	gen := NewLocal(testRNG(7))
	for _, op := range []Operation{Addition, Subtraction, Multiplication, Division} {
		p := gen.Build(op, Medium)
		if len(p.FirstVisuals) != p.First {
			t.Errorf("%s: %d first visuals for operand %d", op, len(p.FirstVisuals), p.First)
		}
		if len(p.SecondVisuals) != p.Second {
			t.Errorf("%s: %d second visuals for operand %d", op, len(p.SecondVisuals), p.Second)
		}
		if !slices.Contains(ItemTokens, p.FirstVisuals[0]) {
			t.Errorf("%s: unexpected item token %q", op, p.FirstVisuals[0])
		}
		if op == Division {
			for _, v := range p.SecondVisuals {
				if v != ContainerToken {
					t.Fatalf("division uses %q instead of the container token", v)
				}
			}
		} else if p.SecondVisuals[0] != p.FirstVisuals[0] {
			t.Errorf("%s: operands drawn with different tokens", op)
		}
	}
}

func TestLocal_TextTemplates(t *testing.T) {
	gen := NewLocal(testRNG(8))
	tests := []struct {
		op     Operation
		word   string
		hint   string
		symbol string
	}{
		{Addition, "plus", "Count all of them together!", "+"},
		{Subtraction, "take away", "Cross out the ones we take away.", "−"},
		{Multiplication, "times", "Add the groups together.", "×"},
		{Division, "divided by", "Share them equally.", "÷"},
	}
	for _, tt := range tests {
		p := gen.Build(tt.op, Hard)
		want := questionText(tt.op, p.First, p.Second)
		if p.Question != want {
			t.Errorf("%s: question %q, want %q", tt.op, p.Question, want)
		}
		if p.Hint != tt.hint {
			t.Errorf("%s: hint %q, want %q", tt.op, p.Hint, tt.hint)
		}
		if p.Symbol != tt.symbol {
			t.Errorf("%s: symbol %q, want %q", tt.op, p.Symbol, tt.symbol)
		}
	}
}

func TestLocal_GenerateNeverFails(t *testing.T) {
	gen := NewLocal(testRNG(9))
	p, err := gen.Generate(context.Background(), Mixed, Hard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("invalid problem: %v", err)
	}
}

func TestLocal_SameSeedSameProblems(t *testing.T) {
	a := NewLocal(testRNG(42))
	b := NewLocal(testRNG(42))
	for i := 0; i < 50; i++ {
		pa, pb := a.Build(Mixed, Hard), b.Build(Mixed, Hard)
		if pa.Question != pb.Question || !slices.Equal(pa.Options, pb.Options) {
			t.Fatalf("draw %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestFallbackProblem_IsValid(t *testing.T) {
	p := FallbackProblem()
	if err := p.Validate(); err != nil {
		t.Fatalf("fallback problem invalid: %v", err)
	}
	if p.Answer != 2 || p.Question != "Count the stars!" {
		t.Errorf("unexpected fallback %+v", p)
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"add", Addition},
		{"Subtraction", Subtraction},
		{"x", Multiplication},
		{"div", Division},
		{"mix", Mixed},
	}
	for _, tt := range tests {
		got, err := ParseOperation(tt.in)
		if err != nil {
			t.Errorf("ParseOperation(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOperation(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseOperation("modulo"); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
		got, err = ParseDifficulty(d.Label())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.Label(), got, err)
		}
	}
	if Hard.Description() != "Numbers 1-20" {
		t.Errorf("Hard.Description() = %q", Hard.Description())
	}
}
