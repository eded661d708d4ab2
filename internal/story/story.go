// Package story asks an LLM for a short jungle story about a hero the
// child names.
package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/mathworld/internal/llm"
)

// DefaultHero is used when no hero name is configured or typed.
const DefaultHero = "Aadhrith"

// NoProviderMessage is shown when no LLM provider is configured.
const NoProviderMessage = "Add an API key to read a story!"

// ErrEmptyStory is returned when the provider answers with blank text.
var ErrEmptyStory = errors.New("story: empty story")

// Schema defines the JSON schema for story responses.
var Schema = &llm.Schema{
	Name:        "jungle-story",
	Description: "A very short story for a nursery child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"story": map[string]any{
				"type":        "string",
				"description": "Exactly three simple sentences",
			},
		},
		"required":             []string{"story"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You write stories for children aged 3 to 6.
Use short words and short sentences. Never include anything scary or unkind.`

// Teller writes stories. A nil provider makes it return NoProviderMessage.
type Teller struct {
	provider llm.Provider
	hero     string
	logger   *slog.Logger
}

// New creates a Teller. hero is the default hero name.
func New(provider llm.Provider, hero string, logger *slog.Logger) *Teller {
	if logger == nil {
		logger = slog.Default()
	}
	hero = strings.TrimSpace(hero)
	if hero == "" {
		hero = DefaultHero
	}
	return &Teller{provider: provider, hero: hero, logger: logger}
}

// Available reports whether a provider is configured.
func (t *Teller) Available() bool {
	return t.provider != nil
}

// Hero returns the default hero name.
func (t *Teller) Hero() string {
	return t.hero
}

// Tell returns a story about hero, or about the default hero when hero is
// blank. It never fails: errors are logged and replaced by a fallback.
func (t *Teller) Tell(ctx context.Context, hero string) string {
	hero = strings.TrimSpace(hero)
	if hero == "" {
		hero = t.hero
	}
	if t.provider == nil {
		return NoProviderMessage
	}

	text, err := t.Generate(ctx, hero)
	if err != nil {
		t.logger.Warn("story generation failed, using fallback", "hero", hero, "error", err)
		return Fallback(hero)
	}
	return text
}

// Generate asks the provider for one story.
func (t *Teller) Generate(ctx context.Context, hero string) (string, error) {
	if t.provider == nil {
		return "", errors.New("story: no provider configured")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeStory)

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: Prompt(hero)},
		},
		Schema:      Schema,
		MaxTokens:   300,
		Temperature: 0.9,
	})
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var out struct {
		Story string `json:"story"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	text := strings.TrimSpace(out.Story)
	if text == "" {
		return "", ErrEmptyStory
	}
	return text, nil
}

// Prompt is the user message sent for hero.
func Prompt(hero string) string {
	return fmt.Sprintf("Tell a very short, interactive 3-sentence story about a child named %s "+
		"finding magic numbers in the jungle. Keep it exciting and simple for a nursery child.", hero)
}

// Fallback is the story shown when generation fails.
func Fallback(hero string) string {
	return hero + " went on an adventure!"
}
