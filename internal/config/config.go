// Package config loads Math World settings: built-in defaults, then an
// optional YAML file, then MATHWORLD_* environment variables. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const appDir = "mathworld"

// Config is the full application configuration.
type Config struct {
	DataDir string       `yaml:"data_dir" env:"DATA_DIR"`
	DB      string       `yaml:"db" env:"DB"`
	Audio   AudioConfig  `yaml:"audio" envPrefix:"AUDIO_"`
	Timing  TimingConfig `yaml:"timing" envPrefix:"TIMING_"`
	LLM     LLMConfig    `yaml:"llm" envPrefix:"LLM_"`
	Log     LogConfig    `yaml:"log" envPrefix:"LOG_"`
}

// AudioConfig controls sound cues and narration.
type AudioConfig struct {
	Sound        bool   `yaml:"sound" env:"SOUND"`
	Voice        bool   `yaml:"voice" env:"VOICE"`
	VoiceCommand string `yaml:"voice_command" env:"VOICE_COMMAND"`
}

// TimingConfig holds every game delay in milliseconds.
type TimingConfig struct {
	CorrectMs         int `yaml:"correct_ms" env:"CORRECT_MS"`
	WrongMs           int `yaml:"wrong_ms" env:"WRONG_MS"`
	ResultNarrationMs int `yaml:"result_narration_ms" env:"RESULT_NARRATION_MS"`
	NarrateMs         int `yaml:"narrate_ms" env:"NARRATE_MS"`
	AutoAdvanceMs     int `yaml:"auto_advance_ms" env:"AUTO_ADVANCE_MS"`
	PracticeAdvanceMs int `yaml:"practice_advance_ms" env:"PRACTICE_ADVANCE_MS"`
	PracticeFinishMs  int `yaml:"practice_finish_ms" env:"PRACTICE_FINISH_MS"`
}

// LLMConfig enables remote problems and stories. API keys are read by the
// llm package from the environment only.
type LLMConfig struct {
	Enabled   bool          `yaml:"enabled" env:"ENABLED"`
	Provider  string        `yaml:"provider" env:"PROVIDER"`
	Model     string        `yaml:"model" env:"MODEL"`
	Prefetch  int           `yaml:"prefetch" env:"PREFETCH"`
	StoryHero string        `yaml:"story_hero" env:"STORY_HERO"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Sound: true,
			Voice: true,
		},
		Timing: TimingConfig{
			CorrectMs:         1500,
			WrongMs:           1000,
			ResultNarrationMs: 600,
			NarrateMs:         300,
			AutoAdvanceMs:     3500,
			PracticeAdvanceMs: 1000,
			PracticeFinishMs:  2000,
		},
		LLM: LLMConfig{
			Prefetch:  3,
			StoryHero: "Aadhrith",
			Timeout:   30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path means DefaultPath. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	return load(path, nil)
}

func load(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnvFrom(cfg, EnvPrefix, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/mathworld/config.yaml, falling back to
// ~/.config/mathworld/config.yaml.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, "config.yaml"), nil
}

// ResolveDataDir returns DataDir, or $XDG_DATA_HOME/mathworld, or
// ~/.local/share/mathworld.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, appDir), nil
}

// DBPath returns the database file, creating its directory.
func (c *Config) DBPath() (string, error) {
	p := c.DB
	if p == "" {
		dir, err := c.ResolveDataDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "mathworld.db")
	}
	return p, EnsureDir(p)
}

// LogPath returns the log file, creating its directory.
func (c *Config) LogPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "logs", "mathworld.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	return nil
}

// Duration converts a millisecond setting.
func Duration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
