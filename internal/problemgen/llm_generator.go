package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/abhisek/mathworld/internal/llm"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Generator = (*LLMGenerator)(nil)

// New creates an LLMGenerator. rng resolves Mixed and repairs option sets.
func New(provider llm.Provider, cfg Config, rng *rand.Rand) *LLMGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LLMGenerator{provider: provider, config: cfg, rng: rng}
}

// problemOutput is the raw LLM response before validation.
type problemOutput struct {
	Question  string `json:"question"`
	First     int    `json:"first"`
	Second    int    `json:"second"`
	Operation string `json:"operation"`
	Answer    int    `json:"answer"`
	Options   []int  `json:"options"`
	Hint      string `json:"hint"`
	Item      string `json:"item"`
}

// Generate asks the provider for one problem and validates it. Requests
// are labelled problem-gen unless ctx already names a purpose.
func (g *LLMGenerator) Generate(ctx context.Context, op Operation, diff Difficulty) (Problem, error) {
	ctx = llm.WithDefaultPurpose(ctx, llm.PurposeProblem)

	input := GenerateInput{Operation: g.resolve(op, diff), Difficulty: diff}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return Problem{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Problem{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	p := g.toProblem(raw)

	if g.config.RepairOptions && p.Validate() != nil && p.Answer >= 0 {
		g.mu.Lock()
		p.Options = BuildOptions(g.rng, p.Answer)
		g.mu.Unlock()
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&p, input); verr != nil {
			return Problem{}, verr
		}
	}

	return p, nil
}

func (g *LLMGenerator) resolve(op Operation, diff Difficulty) Operation {
	if op != Mixed {
		return op
	}
	candidates := mixedCandidates(diff)
	g.mu.Lock()
	defer g.mu.Unlock()
	return candidates[g.rng.IntN(len(candidates))]
}

func (g *LLMGenerator) toProblem(raw problemOutput) Problem {
	op, ok := parseSymbol(raw.Operation)
	if !ok {
		op = Mixed
	}

	item := strings.TrimSpace(raw.Item)
	if item == "" || utf8.RuneCountInString(item) > 4 {
		g.mu.Lock()
		item = ItemTokens[g.rng.IntN(len(ItemTokens))]
		g.mu.Unlock()
	}
	second := item
	if op == Division {
		second = ContainerToken
	}

	return Problem{
		Question:      strings.TrimSpace(raw.Question),
		FirstVisuals:  repeat(item, min(raw.First, maxVisuals)),
		SecondVisuals: repeat(second, min(raw.Second, maxVisuals)),
		Operation:     op,
		Symbol:        op.Symbol(),
		First:         raw.First,
		Second:        raw.Second,
		Answer:        raw.Answer,
		Options:       raw.Options,
		Hint:          strings.TrimSpace(raw.Hint),
	}
}
