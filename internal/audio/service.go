package audio

import (
	"io"
	"log/slog"
	"sync"
)

// Options selects which halves of the Service are active.
type Options struct {
	Sound        bool
	Voice        bool
	VoiceCommand string

	// Bell receives "\a" when no sound player exists. Nil disables it.
	Bell io.Writer
}

// Service is the Player used by the app. It routes cues to a CuePlayer and
// narration to a Speaker, and can be muted at runtime.
type Service struct {
	cues  CuePlayer
	voice Speaker
	synth *Synth

	mu    sync.Mutex
	muted bool
}

var _ Player = (*Service)(nil)

// NewService builds a Service from system tools according to opts.
func NewService(opts Options, logger *slog.Logger) *Service {
	s := &Service{}
	if opts.Sound {
		s.synth = NewSynth(opts.Bell, logger)
		s.cues = s.synth
	}
	if opts.Voice {
		// A silent narrator is left out so Speak skips it entirely.
		if n := NewNarrator(opts.VoiceCommand, logger); n.Available() {
			s.voice = n
		}
	}
	return s
}

// Compose builds a Service from explicit parts. Either may be nil.
func Compose(cues CuePlayer, voice Speaker) *Service {
	return &Service{cues: cues, voice: voice}
}

func (s *Service) Play(cue Cue) {
	if s.cues == nil || s.Muted() {
		return
	}
	s.cues.Play(cue)
}

func (s *Service) Speak(text string) {
	if s.voice == nil || s.Muted() {
		return
	}
	s.voice.Speak(text)
}

func (s *Service) Cancel() {
	if s.voice != nil {
		s.voice.Cancel()
	}
}

// SetMuted silences cues and narration. Muting also stops the current
// utterance.
func (s *Service) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
	if muted {
		s.Cancel()
	}
}

// ToggleMute flips the mute state and returns the new value.
func (s *Service) ToggleMute() bool {
	muted := !s.Muted()
	s.SetMuted(muted)
	return muted
}

func (s *Service) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close releases rendered sound files and stops narration.
func (s *Service) Close() error {
	s.Cancel()
	if s.synth != nil {
		return s.synth.Close()
	}
	return nil
}
