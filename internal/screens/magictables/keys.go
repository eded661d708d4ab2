package magictables

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathworld/internal/ui/layout"
)

type keyMap struct {
	Move     key.Binding
	Open     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Speak    key.Binding
	Autoplay key.Binding
	Mode     key.Binding
	Pick     key.Binding
	Back     key.Binding
}

var keys = keyMap{
	Move: key.NewBinding(
		key.WithKeys("left", "right", "up", "down", "h", "l", "k", "j"),
		key.WithHelp("←→↑↓", "Move"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Open"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Back a row"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next row"),
	),
	Speak: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "Say it"),
	),
	Autoplay: key.NewBinding(
		key.WithKeys("space", "a"),
		key.WithHelp("Space", "Sing along"),
	),
	Mode: key.NewBinding(
		key.WithKeys("tab", "p"),
		key.WithHelp("Tab", "Learn/Practice"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "Answer"),
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
