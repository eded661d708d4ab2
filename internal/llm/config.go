package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/mathworld/internal/config"
)

// Config selects an LLM backend and carries every backend's settings.
type Config struct {
	// Provider is one of anthropic, openai, gemini, openrouter or mock.
	Provider string `env:"LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `envPrefix:"ANTHROPIC_"`
	OpenAI     OpenAIConfig     `envPrefix:"OPENAI_"`
	Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
	OpenRouter OpenRouterConfig `envPrefix:"OPENROUTER_"`
	Retry      RetryConfig

	// Timeout bounds one call, retries included.
	Timeout time.Duration `env:"LLM_TIMEOUT"`
}

type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"`
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"` // for compatible APIs
}

type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// RetryConfig shapes the backoff used for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses Gemini Flash with three attempts per call.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays MATHWORLD_* variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	return configFromEnviron(nil)
}

func configFromEnviron(environ map[string]string) (Config, error) {
	cfg := DefaultConfig()
	if err := config.ParseEnvFrom(&cfg, config.EnvPrefix, environ); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fields returns the key and model of the named provider, or nils for
// "mock" and unknown names.
func (c *Config) fields(provider string) (key, model *string) {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey, &c.Anthropic.Model
	case "openai":
		return &c.OpenAI.APIKey, &c.OpenAI.Model
	case "gemini":
		return &c.Gemini.APIKey, &c.Gemini.Model
	case "openrouter":
		return &c.OpenRouter.APIKey, &c.OpenRouter.Model
	}
	return nil, nil
}

// HasKey reports whether the selected provider can be built.
func (c Config) HasKey() bool {
	if c.Provider == "mock" {
		return true
	}
	key, _ := c.fields(c.Provider)
	return key != nil && *key != ""
}

// SetModel overrides the model of the selected provider. Empty is a no-op.
func (c *Config) SetModel(model string) {
	if _, m := c.fields(c.Provider); m != nil && model != "" {
		*m = model
	}
}

// discoveryOrder is the order standard key variables are probed in.
// Gemini comes first as it has the cheapest default model.
var discoveryOrder = []string{"gemini", "openai", "anthropic", "openrouter"}

// DiscoverConfig looks for the providers' own key variables, such as
// GEMINI_API_KEY, and selects the first one set.
func DiscoverConfig() (Config, bool) {
	return discoverConfig(os.Getenv)
}

func discoverConfig(getenv func(string) string) (Config, bool) {
	for _, name := range discoveryOrder {
		k := getenv(strings.ToUpper(name) + "_API_KEY")
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = name
		key, _ := cfg.fields(name)
		*key = k
		return cfg, true
	}
	return Config{}, false
}

// Resolve returns the MATHWORLD_* configuration when it carries a key for
// its provider, and otherwise tries DiscoverConfig.
func Resolve() (Config, bool, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, false, err
	}
	if cfg.HasKey() {
		return cfg, true, nil
	}
	if found, ok := DiscoverConfig(); ok {
		return found, true, nil
	}
	return cfg, false, nil
}

// Validate checks the provider name and that its key is set.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key, _ := c.fields(c.Provider)
	switch {
	case key == nil:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case *key == "":
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			config.EnvPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
