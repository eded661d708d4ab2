package audio

import (
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// voices are tried in order when no command is configured.
var voices = []string{"espeak-ng", "espeak", "say", "spd-say"}

// process is a running utterance.
type process interface {
	Stop()
}

// Narrator speaks text with a system speech synthesizer. Each Speak stops
// the previous utterance first so lines never overlap.
type Narrator struct {
	logger  *slog.Logger
	command string
	args    []string

	launch func(name string, args []string) (process, error)

	mu      sync.Mutex
	current process
}

var _ Speaker = (*Narrator)(nil)

// NewNarrator uses command when set, otherwise the first synthesizer found
// on PATH. When nothing is found the narrator is silent.
func NewNarrator(command string, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Narrator{logger: logger, launch: launchProcess}

	fields := strings.Fields(command)
	if len(fields) > 0 {
		n.command = fields[0]
		n.args = fields[1:]
		return n
	}
	for _, v := range voices {
		if path, err := exec.LookPath(v); err == nil {
			n.command = path
			n.args = voiceArgs(v)
			logger.Debug("speech synthesizer found", "command", path)
			return n
		}
	}
	logger.Debug("no speech synthesizer found, narration disabled")
	return n
}

// Available reports whether a synthesizer was found.
func (n *Narrator) Available() bool {
	return n.command != ""
}

// Speak stops the current utterance and starts text.
func (n *Narrator) Speak(text string) {
	if n.command == "" || strings.TrimSpace(text) == "" {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	args := append(append([]string{}, n.args...), text)
	p, err := n.launch(n.command, args)
	if err != nil {
		n.logger.Debug("speak failed", "command", n.command, "error", err)
		return
	}
	n.current = p
}

// Cancel stops the current utterance, if any.
func (n *Narrator) Cancel() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
}

func (n *Narrator) stopLocked() {
	if n.current != nil {
		n.current.Stop()
		n.current = nil
	}
}

// voiceArgs returns rate and pitch flags for a friendlier voice.
func voiceArgs(name string) []string {
	switch name {
	case "espeak-ng", "espeak":
		return []string{"-s", "150", "-p", "60"}
	case "say":
		return []string{"-r", "180"}
	}
	return nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Stop() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

func launchProcess(name string, args []string) (process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	go func() { _ = cmd.Wait() }()
	return &execProcess{cmd: cmd}, nil
}
