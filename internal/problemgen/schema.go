package problemgen

import "github.com/abhisek/mathworld/internal/llm"

// ProblemSchema defines the JSON schema for LLM problem generation responses.
var ProblemSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "A picture-counting arithmetic problem for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question read aloud to the child, e.g. \"What is 3 plus 2?\"",
			},
			"first": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     20,
				"description": "The first number (for division, the number of items to share)",
			},
			"second": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     20,
				"description": "The second number (for division, the number of groups)",
			},
			"operation": map[string]any{
				"type":        "string",
				"enum":        []any{"+", "-", "x", "/"},
				"description": "The operation symbol",
			},
			"answer": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "The correct whole-number answer",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly 3 different whole numbers, one of them the answer",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "One short friendly sentence that helps the child count",
			},
			"item": map[string]any{
				"type":        "string",
				"description": "A single emoji of an animal, fruit, or star used to draw the numbers",
			},
		},
		"required":             []any{"question", "first", "second", "operation", "answer", "options", "hint", "item"},
		"additionalProperties": false,
	},
}
