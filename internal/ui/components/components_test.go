package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

type pickedMsg struct{ n int }

func testMenu() Menu {
	item := func(n int, disabled bool) MenuItem {
		return MenuItem{
			Label:    "item",
			Action:   func() tea.Cmd { return func() tea.Msg { return pickedMsg{n} } },
			Disabled: disabled,
		}
	}
	return NewMenu([]MenuItem{item(0, true), item(1, false), item(2, true), item(3, false)})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item, got %d", m.Selected)
	}
	m, _ = m.Update(press("down"))
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(press("up"))
	if m.Selected != 1 {
		t.Errorf("expected up to skip disabled item, got %d", m.Selected)
	}
}

func TestMenu_EnterActivates(t *testing.T) {
	m := testMenu()
	_, cmd := m.Update(press("enter"))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if got := cmd().(pickedMsg); got.n != 1 {
		t.Errorf("picked %d, want 1", got.n)
	}
}

func TestMenu_DigitShortcut(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(press("4"))
	if m.Selected != 3 || cmd == nil {
		t.Fatalf("digit 4 should pick item 3, selected %d", m.Selected)
	}
	if _, cmd := m.Update(press("3")); cmd != nil {
		t.Error("disabled item should not activate")
	}
	if _, cmd := m.Update(press("9")); cmd != nil {
		t.Error("out of range digit should be ignored")
	}
}

func TestChoices_PickByDigit(t *testing.T) {
	c := NewChoices([]int{4, 5, 7}, 5)
	c, cmd := c.Update(press("2"))
	if cmd == nil {
		t.Fatal("expected pick")
	}
	if got := cmd().(ChoiceMsg); got.Value != 5 {
		t.Errorf("picked %d, want 5", got.Value)
	}
	if c.Selected != 1 {
		t.Errorf("cursor at %d, want 1", c.Selected)
	}
}

func TestChoices_ArrowsAndEnter(t *testing.T) {
	c := NewChoices([]int{4, 5, 7}, 5)
	c, _ = c.Update(press("right"))
	c, _ = c.Update(press("right"))
	c, _ = c.Update(press("right"))
	if c.Selected != 2 {
		t.Fatalf("cursor should stop at the last option, got %d", c.Selected)
	}
	_, cmd := c.Update(press("enter"))
	if got := cmd().(ChoiceMsg); got.Value != 7 {
		t.Errorf("picked %d, want 7", got.Value)
	}
}

func TestChoices_LockedIgnoresInput(t *testing.T) {
	c := NewChoices([]int{4, 5, 7}, 5)
	c.Locked = true
	if _, cmd := c.Update(press("1")); cmd != nil {
		t.Error("locked choices should not pick")
	}
}

func TestQuestionProgress(t *testing.T) {
	p := NewQuestionProgress(2, 5, 40)
	if p.Label != "Question 3 of 5" {
		t.Errorf("label = %q", p.Label)
	}
	if p.Percent != 0.4 {
		t.Errorf("percent = %v", p.Percent)
	}
	if done := NewQuestionProgress(5, 5, 40); done.Label != "Question 5 of 5" {
		t.Errorf("finished label = %q", done.Label)
	}
}

func TestNameInput_FiltersDigits(t *testing.T) {
	in := NewNameInput("hero", 20)
	for _, s := range []string{"M", "i", "7", "a"} {
		in, _ = in.Update(press(s))
	}
	if in.Value() != "Mia" {
		t.Errorf("value = %q, want Mia", in.Value())
	}
}

func TestArcadeButton_MarksSelection(t *testing.T) {
	if !strings.Contains(ArcadeButton("Play", true, 20), "▸ Play") {
		t.Error("selected button should carry the cursor")
	}
	if strings.Contains(ArcadeButton("Play", false, 20), "▸") {
		t.Error("unselected button should not carry the cursor")
	}
}

func TestButton_Press(t *testing.T) {
	pressed := 0
	onPress := func() tea.Cmd {
		pressed++
		return nil
	}

	b := NewButton("Tell me a Story!", true, onPress)
	b, _ = b.Update(press("enter"))
	b, _ = b.Update(press("x"))
	if pressed != 1 {
		t.Fatalf("expected one press, got %d", pressed)
	}
	if !strings.Contains(b.View(), "▸ Tell me a Story!") {
		t.Error("enabled button should carry the cursor")
	}

	off := NewButton("Tell me a Story!", false, onPress)
	off.Update(press("enter"))
	if pressed != 1 {
		t.Error("disabled button should not fire")
	}
	if strings.Contains(off.View(), "▸") {
		t.Error("disabled button should not carry the cursor")
	}
}

func TestContentWidth_Clamps(t *testing.T) {
	for _, tt := range []struct{ frame, want int }{{10, 20}, {50, 44}, {200, 60}} {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	out := NewProgressBar("Row 3 of 10", 0.5, 40).View()
	if !strings.Contains(out, "Row 3 of 10") {
		t.Errorf("missing label: %q", out)
	}
	if !strings.Contains(out, "█") || !strings.Contains(out, "░") {
		t.Errorf("half-full bar should show both fill runes: %q", out)
	}
	if full := NewProgressBar("", 1.5, 20).View(); strings.Contains(full, "░") {
		t.Error("percent above 1 should clamp to a full bar")
	}
}
