package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider builds the configured provider and its middleware chain:
// caller → timeout → retry → logging → base. A nil log skips request
// recording.
func NewProvider(ctx context.Context, cfg Config, log RequestLog, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := Provider(base)
	if log != nil {
		p = WithLogging(p, cfg.Provider, log, logger)
	}
	return WithTimeout(WithRetry(p, cfg.Retry), cfg.Timeout), nil
}
