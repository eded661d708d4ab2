package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworld/internal/ui/theme"
)

// ChoiceMsg is sent when the player picks an answer.
type ChoiceMsg struct {
	Value int
}

// Choices is a row of number answers. Left/right moves the cursor, Enter
// picks it, and 1-9 picks an option directly.
type Choices struct {
	Values   []int
	Selected int

	// Locked ignores input while feedback is on screen.
	Locked bool

	// Picked and Answer drive the colouring once a value has been picked.
	// Picked is -1 when nothing is picked yet.
	Picked int
	Answer int
	Reveal bool
}

// NewChoices creates a choice row with nothing picked.
func NewChoices(values []int, answer int) Choices {
	return Choices{
		Values: values,
		Answer: answer,
		Picked: -1,
	}
}

// Update handles keyboard navigation and picking.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	if c.Locked || len(c.Values) == 0 {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Values)-1 {
			c.Selected++
		}
	case "enter", "space":
		return c, c.pick(c.Selected)
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(c.Values) {
			return c, nil
		}
		c.Selected = n - 1
		return c, c.pick(c.Selected)
	}
	return c, nil
}

func (c Choices) pick(i int) tea.Cmd {
	v := c.Values[i]
	return func() tea.Msg { return ChoiceMsg{Value: v} }
}

// View renders the options side by side.
func (c Choices) View(accent lipgloss.Style) string {
	boxes := make([]string, 0, len(c.Values))
	for i, v := range c.Values {
		style := lipgloss.NewStyle().
			Width(9).
			Align(lipgloss.Center).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(2)

		label := strconv.Itoa(v)
		switch {
		case c.Reveal && v == c.Answer:
			style = style.Foreground(theme.Verdict(true)).BorderForeground(theme.Verdict(true))
			label = "✓ " + label
		case v == c.Picked && v != c.Answer:
			style = style.Foreground(theme.Verdict(false)).BorderForeground(theme.Verdict(false))
			label = "✗ " + label
		case i == c.Selected && !c.Locked:
			style = style.Inherit(accent)
		default:
			style = style.Foreground(theme.Text).BorderForeground(theme.Border)
		}
		boxes = append(boxes, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
