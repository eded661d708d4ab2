package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathworld/internal/ui/layout"
)

type keyMap struct {
	Navigate key.Binding
	Choose   key.Binding
	Pick     key.Binding
	Repeat   key.Binding
	Back     key.Binding
}

var keys = keyMap{
	Navigate: key.NewBinding(
		key.WithKeys("up", "down", "left", "right", "k", "j", "h", "l"),
		key.WithHelp("←→", "Move"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Choose"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "Answer"),
	),
	Repeat: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Read again"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
