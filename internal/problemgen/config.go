package problemgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated problem; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// RepairOptions replaces an invalid option set with one built locally
	// instead of rejecting the problem.
	RepairOptions bool
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ArithmeticValidator{},
		},
		MaxTokens:     400,
		Temperature:   0.8,
		RepairOptions: true,
	}
}
