package problemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write picture-counting math problems for children aged 3 to 6.

Rules:
- Use whole numbers only. Every answer is zero or more.
- The question is one short sentence a grown-up can read aloud, such as "What is 4 take away 1?".
- Pick one emoji (an animal, a fruit, or a star) that the child will count.
- Give exactly 3 different answer options. One is correct; the other two are close to it.
- The hint is one cheerful sentence about how to count, never the answer itself.
- Follow the number limits exactly.`

// buildUserMessage describes the requested problem and its number limits.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	maxOp := input.Difficulty.MaxOperand()
	fmt.Fprintf(&b, "Level: %s (%s)\n", input.Difficulty.Label(), input.Difficulty.Description())

	switch input.Operation {
	case Addition:
		fmt.Fprintf(&b, "Topic: addition. Both numbers between 1 and %d. Visuals should be easy to count.\n", maxOp)
		b.WriteString(`Operation symbol: "+"`)
	case Subtraction:
		fmt.Fprintf(&b, "Topic: subtraction. First number between 1 and %d; second number between 1 and the first.\n", maxOp)
		b.WriteString("The picture shows taking away.\n")
		b.WriteString(`Operation symbol: "-"`)
	case Multiplication:
		limit := 5
		if input.Difficulty == Easy {
			limit = 3
		}
		fmt.Fprintf(&b, "Topic: multiplication as repeated groups, e.g. 2 groups of 3. Both numbers between 1 and %d.\n", limit)
		b.WriteString(`Operation symbol: "x"`)
	case Division:
		b.WriteString("Topic: fair sharing. The second number (groups) is between 1 and 5 and the answer is between 1 and 4.\n")
		b.WriteString("The first number must be exactly groups times answer.\n")
		b.WriteString(`Operation symbol: "/"`)
	}

	return b.String()
}

// parseSymbol maps the ASCII operator in an LLM response to an operation.
func parseSymbol(s string) (Operation, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return Addition, true
	case "-", "−":
		return Subtraction, true
	case "x", "X", "*", "×":
		return Multiplication, true
	case "/", "÷":
		return Division, true
	}
	return 0, false
}
