// Package llm talks to hosted language models for problem generation and
// Story Time. Every provider returns JSON checked against the request's
// schema, so callers decode into their own types.
package llm

import (
	"context"
	"encoding/json"
)

type Provider interface {
	// Generate returns the model's reply. With a Schema set, Content is
	// JSON that already passed validation.
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single-turn prompt in the common case: a system prompt and
// one user message.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil for free text
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema sent to the provider's structured output mode
// and used to validate what comes back. Name must be unique per
// definition, as compiled validators are cached by it.
type Schema struct {
	Name        string // kebab-case, e.g. "math-problem"
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // the model that served the request
	StopReason string // StopEnd or StopMaxTokens
}

const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns a provider reply into a Response. A schema'd reply that
// hit the token limit is reported as truncated before it is validated,
// since a cut-off story or problem never parses cleanly.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
