package audio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// wavPlayers are tried in order; the first one on PATH wins.
var wavPlayers = []struct {
	name string
	args []string
}{
	{"aplay", []string{"-q"}},
	{"paplay", nil},
	{"afplay", nil},
}

// Synth renders cues to WAV files once and plays them through a system
// player. Without a player it rings the terminal bell for the cues that
// matter (correct, wrong, victory).
type Synth struct {
	logger *slog.Logger
	bell   io.Writer

	lookPath func(string) (string, error)
	start    func(name string, args ...string) error

	once   sync.Once
	mu     sync.Mutex
	player string
	args   []string
	dir    string
	files  map[Cue]string
}

var _ CuePlayer = (*Synth)(nil)

// NewSynth creates a Synth. bell may be nil to disable the fallback.
func NewSynth(bell io.Writer, logger *slog.Logger) *Synth {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synth{
		logger:   logger,
		bell:     bell,
		lookPath: exec.LookPath,
		start:    startDetached,
		files:    make(map[Cue]string),
	}
}

// Play starts the cue in the background.
func (s *Synth) Play(cue Cue) {
	s.once.Do(s.detect)

	if s.player == "" {
		if s.bell != nil && cue != CueHover {
			_, _ = io.WriteString(s.bell, "\a")
		}
		return
	}

	path, err := s.file(cue)
	if err != nil {
		s.logger.Debug("render cue failed", "cue", cue.String(), "error", err)
		return
	}
	args := append(append([]string{}, s.args...), path)
	if err := s.start(s.player, args...); err != nil {
		s.logger.Debug("play cue failed", "cue", cue.String(), "player", s.player, "error", err)
	}
}

// Close removes the rendered cue files.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dir == "" {
		return nil
	}
	err := os.RemoveAll(s.dir)
	s.dir = ""
	s.files = make(map[Cue]string)
	return err
}

func (s *Synth) detect() {
	for _, p := range wavPlayers {
		if path, err := s.lookPath(p.name); err == nil {
			s.player = path
			s.args = p.args
			s.logger.Debug("sound player found", "player", path)
			return
		}
	}
	s.logger.Debug("no sound player found, using terminal bell")
}

func (s *Synth) file(cue Cue) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path, ok := s.files[cue]; ok {
		return path, nil
	}
	if s.dir == "" {
		dir, err := os.MkdirTemp("", "mathworld-sounds-")
		if err != nil {
			return "", fmt.Errorf("create sound dir: %w", err)
		}
		s.dir = dir
	}
	path := filepath.Join(s.dir, cue.String()+".wav")
	if err := os.WriteFile(path, renderWAV(cueTones(cue)), 0o600); err != nil {
		return "", fmt.Errorf("write cue %s: %w", cue, err)
	}
	s.files[cue] = path
	return path, nil
}

// startDetached starts a command without waiting for it to finish.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
