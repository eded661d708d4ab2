package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/mathworld/internal/llm"
)

func validProblemJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "What is 2 plus 3?",
		"first": 2,
		"second": 3,
		"operation": "+",
		"answer": 5,
		"options": [4, 5, 7],
		"hint": "Count all the puppies!",
		"item": "🐶"
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProblemJSON()})
	gen := New(mock, DefaultConfig(), testRNG(1))

	p, err := gen.Generate(context.Background(), Addition, Easy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Question != "What is 2 plus 3?" {
		t.Errorf("unexpected question: %q", p.Question)
	}
	if p.Answer != 5 || p.Operation != Addition || p.Symbol != "+" {
		t.Errorf("unexpected problem: %+v", p)
	}
	if len(p.FirstVisuals) != 2 || len(p.SecondVisuals) != 3 || p.FirstVisuals[0] != "🐶" {
		t.Errorf("unexpected visuals: %v / %v", p.FirstVisuals, p.SecondVisuals)
	}
	if !slices.Equal(p.Options, []int{4, 5, 7}) {
		t.Errorf("options changed: %v", p.Options)
	}
}

func TestGenerate_Purpose(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validProblemJSON()},
		llm.MockResponse{Content: validProblemJSON()},
	)
	gen := New(mock, DefaultConfig(), testRNG(1))

	if _, err := gen.Generate(context.Background(), Addition, Easy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	preview := llm.WithPurpose(context.Background(), llm.PurposePreview)
	if _, err := gen.Generate(preview, Addition, Easy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(mock.Purposes, []llm.Purpose{llm.PurposeProblem, llm.PurposePreview}) {
		t.Errorf("purposes = %v", mock.Purposes)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProblemJSON()})
	gen := New(mock, DefaultConfig(), testRNG(1))

	if _, err := gen.Generate(context.Background(), Addition, Easy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ProblemSchema {
		t.Error("expected ProblemSchema on the request")
	}
	if req.System != systemPrompt {
		t.Error("expected system prompt on the request")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "addition") {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
}

func TestGenerate_WrongAnswerRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "What is 2 plus 3?", "first": 2, "second": 3, "operation": "+",
		"answer": 6, "options": [4, 6, 7], "hint": "Count!", "item": "🐶"
	}`)})
	gen := New(mock, DefaultConfig(), testRNG(1))

	_, err := gen.Generate(context.Background(), Addition, Easy)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "arithmetic" {
		t.Errorf("expected arithmetic validator, got %q", verr.Validator)
	}
}

func TestGenerate_WrongOperationRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "What is 2 times 3?", "first": 2, "second": 3, "operation": "x",
		"answer": 6, "options": [4, 6, 7], "hint": "Count!", "item": "🐶"
	}`)})
	gen := New(mock, DefaultConfig(), testRNG(1))

	if _, err := gen.Generate(context.Background(), Addition, Medium); err == nil {
		t.Fatal("expected error when the provider ignores the requested operation")
	}
}

func TestGenerate_BadOptionsRepaired(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "What is 4 take away 1?", "first": 4, "second": 1, "operation": "-",
		"answer": 3, "options": [3, 3, 3], "hint": "Cross one out!", "item": "🍎"
	}`)})
	gen := New(mock, DefaultConfig(), testRNG(1))

	p, err := gen.Generate(context.Background(), Subtraction, Easy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("options not repaired: %v", err)
	}
}

func TestGenerate_BadOptionsRejectedWithoutRepair(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "What is 4 take away 1?", "first": 4, "second": 1, "operation": "-",
		"answer": 3, "options": [3, 3, 3], "hint": "Cross one out!", "item": "🍎"
	}`)})
	cfg := DefaultConfig()
	cfg.RepairOptions = false
	gen := New(mock, cfg, testRNG(1))

	if _, err := gen.Generate(context.Background(), Subtraction, Easy); err == nil {
		t.Fatal("expected duplicate options to be rejected")
	}
}

func TestGenerate_DivisionUsesContainers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "What is 6 divided by 2?", "first": 6, "second": 2, "operation": "/",
		"answer": 3, "options": [2, 3, 4], "hint": "Share them!", "item": "🍪"
	}`)})
	gen := New(mock, DefaultConfig(), testRNG(1))

	p, err := gen.Generate(context.Background(), Division, Hard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range p.SecondVisuals {
		if v != ContainerToken {
			t.Fatalf("expected container tokens, got %v", p.SecondVisuals)
		}
	}
}

func TestGenerate_MixedResolvesBeforeAsking(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProblemJSON()})
	gen := New(mock, DefaultConfig(), testRNG(3))

	_, _ = gen.Generate(context.Background(), Mixed, Easy)
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "addition") && !strings.Contains(msg, "subtraction") {
		t.Errorf("easy mixed should ask for addition or subtraction, got %q", msg)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig(), testRNG(1))

	_, err := gen.Generate(context.Background(), Addition, Easy)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{not json`)})
	gen := New(mock, DefaultConfig(), testRNG(1))

	if _, err := gen.Generate(context.Background(), Addition, Easy); err == nil {
		t.Fatal("expected parse error")
	}
}
