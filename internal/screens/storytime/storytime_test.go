package storytime

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/llm"
	"github.com/abhisek/mathworld/internal/story"
)

func newTestStory(responses ...llm.MockResponse) (*StoryScreen, *llm.MockProvider, *audio.Recorder) {
	mock := llm.NewMockProvider(responses...)
	rec := &audio.Recorder{}
	teller := story.New(mock, "Mia", nil)
	return New(context.Background(), teller, rec), mock, rec
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// request presses Enter and runs the story fetch, skipping the spinner.
func request(t *testing.T, s *StoryScreen) storyMsg {
	t.Helper()
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected button command")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected story command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected batch of spinner and fetch")
	}
	for _, c := range batch {
		if msg, ok := c().(storyMsg); ok {
			return msg
		}
	}
	t.Fatal("no story message in batch")
	return storyMsg{}
}

func TestTellsStory(t *testing.T) {
	s, mock, rec := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"Mia found a glowing 7."}`)})

	msg := request(t, s)
	if s.phase != phaseLoading {
		t.Fatal("expected loading phase")
	}
	s.Update(msg)

	if s.phase != phaseStory || s.text != "Mia found a glowing 7." {
		t.Fatalf("unexpected story state %v %q", s.phase, s.text)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "named Mia") {
		t.Errorf("prompt should name the hero: %q", mock.Calls[0].Messages[0].Content)
	}
	spoken := rec.Spoken()
	if len(spoken) == 0 || spoken[len(spoken)-1] != s.text {
		t.Errorf("story should be read aloud, got %v", spoken)
	}
	if !strings.Contains(s.View(100, 30), "glowing 7") {
		t.Error("story missing from view")
	}
}

func TestFailureShowsFallback(t *testing.T) {
	s, _, _ := newTestStory()
	s.Update(request(t, s))
	if s.text != story.Fallback("Mia") {
		t.Errorf("expected fallback, got %q", s.text)
	}
}

func TestHeroFromInput(t *testing.T) {
	s, mock, _ := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"Zed counted stars."}`)})
	s.input.SetValue("Zed")
	s.Update(request(t, s))

	if s.hero != "Zed" || !strings.Contains(mock.Calls[0].Messages[0].Content, "named Zed") {
		t.Errorf("expected Zed as hero, got %q", s.hero)
	}
}

func TestBackDropsPendingStory(t *testing.T) {
	s, _, _ := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"Late story."}`)})
	msg := request(t, s)

	if !s.Back() {
		t.Fatal("back while loading should be handled")
	}
	s.Update(msg)
	if s.phase != phaseAsk || s.text != "" {
		t.Errorf("stale story was shown: %v %q", s.phase, s.text)
	}
	if s.Back() {
		t.Error("back on the name prompt should leave the screen")
	}
}

func TestStoryFromClosedScreenIgnored(t *testing.T) {
	old, _, _ := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"Old story."}`)})
	stale := request(t, old)
	old.Leave()

	s, _, _ := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"New story."}`)})
	fresh := request(t, s)
	if stale.seq != fresh.seq {
		t.Fatalf("expected matching request numbers, got %d and %d", stale.seq, fresh.seq)
	}

	s.Update(stale)
	if s.phase != phaseLoading || s.text != "" {
		t.Fatalf("story from a closed screen was shown: %v %q", s.phase, s.text)
	}
	s.Update(fresh)
	if s.text != "New story." {
		t.Errorf("expected own story, got %q", s.text)
	}
}

func TestNoProvider(t *testing.T) {
	s := New(context.Background(), nil, nil)
	if _, cmd := s.Update(enter()); cmd != nil {
		t.Error("enter should do nothing without a provider")
	}
	if !strings.Contains(s.View(100, 30), story.NoProviderMessage) {
		t.Error("expected the missing key message")
	}
}

func TestNewStoryReturnsToPrompt(t *testing.T) {
	s, _, rec := newTestStory(llm.MockResponse{Content: json.RawMessage(`{"story":"One."}`)})
	s.Update(request(t, s))

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.phase != phaseAsk {
		t.Fatalf("expected prompt, got %v", s.phase)
	}
	calls := rec.Calls()
	if calls[len(calls)-1].Kind != audio.CallCancel {
		t.Error("starting over should stop narration")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 10)
	if got != "one two\nthree four" {
		t.Errorf("wrap = %q", got)
	}
}
