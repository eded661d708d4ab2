package audio

import "sync"

// CallKind identifies a recorded Player call.
type CallKind string

const (
	CallPlay   CallKind = "play"
	CallSpeak  CallKind = "speak"
	CallCancel CallKind = "cancel"
)

// Call is one recorded Player call.
type Call struct {
	Kind CallKind
	Cue  Cue
	Text string
}

// Recorder is a Player that records every call. Use it in tests.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ Player = (*Recorder)(nil)

func (r *Recorder) Play(cue Cue) {
	r.record(Call{Kind: CallPlay, Cue: cue})
}

func (r *Recorder) Speak(text string) {
	r.record(Call{Kind: CallSpeak, Text: text})
}

func (r *Recorder) Cancel() {
	r.record(Call{Kind: CallCancel})
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of all recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Spoken returns the text of every Speak call in order.
func (r *Recorder) Spoken() []string {
	var out []string
	for _, c := range r.Calls() {
		if c.Kind == CallSpeak {
			out = append(out, c.Text)
		}
	}
	return out
}

// LastSpoken returns the most recent spoken line, or "".
func (r *Recorder) LastSpoken() string {
	spoken := r.Spoken()
	if len(spoken) == 0 {
		return ""
	}
	return spoken[len(spoken)-1]
}

// Cues returns every played cue in order.
func (r *Recorder) Cues() []Cue {
	var out []Cue
	for _, c := range r.Calls() {
		if c.Kind == CallPlay {
			out = append(out, c.Cue)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
