package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}
}

func anthropicFailure(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func problemRequest() Request {
	return Request{
		System:    "You write counting problems for a five year old.",
		Messages:  []Message{{Role: RoleUser, Content: "Operation: add. Difficulty: easy."}},
		Schema:    countingSchema(),
		MaxTokens: 256,
	}
}

func TestAnthropicProvider_Problem(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(monkeyProblem, "end_turn"))
	resp, err := p.Generate(context.Background(), problemRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != monkeyProblem {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.TotalTokens != 80 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("expected stop %q, got %q", StopEnd, resp.StopReason)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"question":"What is 3`, "max_tokens"))
	_, err := p.Generate(context.Background(), problemRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %v", err)
	}
}

func TestAnthropicProvider_WrongShape(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"question":"What is 3 plus 2?"}`, "end_turn"))
	_, err := p.Generate(context.Background(), problemRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		kind      string
		rateLimit bool
		transient bool
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", true, true},
		{"server error", http.StatusInternalServerError, "api_error", false, true},
		{"bad key", http.StatusUnauthorized, "authentication_error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, anthropicFailure(tt.status, tt.kind))
			_, err := p.Generate(context.Background(), problemRequest())

			var rl *ErrRateLimit
			if got := errors.As(err, &rl); got != tt.rateLimit {
				t.Fatalf("rate limit = %v, want %v (%v)", got, tt.rateLimit, err)
			}
			if !tt.rateLimit {
				var unavail *ErrProviderUnavailable
				if !errors.As(err, &unavail) || unavail.Status != tt.status {
					t.Fatalf("expected unavailable with status %d, got: %v", tt.status, err)
				}
			}
			if Transient(err) != tt.transient {
				t.Errorf("Transient = %v, want %v", !tt.transient, tt.transient)
			}
		})
	}
}

func TestAnthropicParams(t *testing.T) {
	req := problemRequest()
	req.Temperature = 0.7
	req.Messages = append(req.Messages,
		Message{Role: RoleAssistant, Content: monkeyProblem},
		Message{Role: RoleUser, Content: "Another one, with bananas."},
	)

	params := anthropicParams("claude-haiku-4-5-20251001", req)
	if string(params.Model) != "claude-haiku-4-5-20251001" {
		t.Errorf("unexpected model %q", params.Model)
	}
	if params.MaxTokens != 256 {
		t.Errorf("expected 256 max tokens, got %d", params.MaxTokens)
	}
	if len(params.System) != 1 || params.System[0].Text != req.System {
		t.Errorf("system prompt not carried: %+v", params.System)
	}
	if len(params.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(params.Messages))
	}
	if params.Messages[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("expected assistant turn, got %q", params.Messages[1].Role)
	}
	if params.OutputConfig.Format.Schema["type"] != "object" {
		t.Errorf("schema not attached: %+v", params.OutputConfig.Format.Schema)
	}
}

func TestNewAnthropicProvider(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test", Model: "claude-haiku"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("unexpected model %q", p.ModelID())
	}
}
