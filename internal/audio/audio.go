// Package audio plays short sound cues and speaks narration lines.
//
// Everything in the game talks to a Player. The real implementation shells
// out to whatever the host has installed; tests use Recorder.
package audio

// Cue is a short sound effect.
type Cue int

const (
	CueCorrect Cue = iota
	CueWrong
	CueHover
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueHover:
		return "hover"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Player plays cues and speaks text. Implementations must be safe for
// concurrent use and must never block the caller on audio output.
type Player interface {
	// Play starts a sound cue.
	Play(cue Cue)

	// Speak cancels any utterance in progress and starts a new one.
	Speak(text string)

	// Cancel stops the current utterance. Calling it when nothing is
	// speaking is a no-op.
	Cancel()
}

// CuePlayer is the sound-effect half of a Player.
type CuePlayer interface {
	Play(cue Cue)
}

// Speaker is the narration half of a Player.
type Speaker interface {
	Speak(text string)
	Cancel()
}

// Nop is a Player that does nothing.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Speak(string) {}
func (Nop) Cancel() {}

var _ Player = Nop{}
