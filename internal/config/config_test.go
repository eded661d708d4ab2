package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.yaml"), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_Timings(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1500, cfg.Timing.CorrectMs)
	assert.Equal(t, 1000, cfg.Timing.WrongMs)
	assert.Equal(t, 600, cfg.Timing.ResultNarrationMs)
	assert.Equal(t, 300, cfg.Timing.NarrateMs)
	assert.Equal(t, 3500, cfg.Timing.AutoAdvanceMs)
	assert.Equal(t, 1000, cfg.Timing.PracticeAdvanceMs)
	assert.Equal(t, 2000, cfg.Timing.PracticeFinishMs)
	assert.True(t, cfg.Audio.Sound)
	assert.True(t, cfg.Audio.Voice)
	assert.False(t, cfg.LLM.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
audio:
  voice: false
  voice_command: "say -v Samantha"
timing:
  correct_ms: 800
llm:
  enabled: true
  provider: openai
  timeout: 10s
log:
  level: debug
`)
	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)

	assert.True(t, cfg.Audio.Sound, "unset keys keep defaults")
	assert.False(t, cfg.Audio.Voice)
	assert.Equal(t, "say -v Samantha", cfg.Audio.VoiceCommand)
	assert.Equal(t, 800, cfg.Timing.CorrectMs)
	assert.Equal(t, 1000, cfg.Timing.WrongMs)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
timing:
  correct_ms: 800
log:
  level: debug
`)
	cfg, err := load(path, map[string]string{
		"MATHWORLD_TIMING_CORRECT_MS": "200",
		"MATHWORLD_AUDIO_SOUND":       "false",
		"MATHWORLD_LLM_STORY_HERO":    "Maya",
		"MATHWORLD_DB":                "/tmp/x.db",
	})
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Timing.CorrectMs)
	assert.False(t, cfg.Audio.Sound)
	assert.Equal(t, "Maya", cfg.LLM.StoryHero)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level, "file value survives when env is unset")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "timing: [not, a, map")
	_, err := load(path, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_BadEnv(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "none.yaml"), map[string]string{
		"MATHWORLD_TIMING_WRONG_MS": "soon",
	})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/mathworld/config.yaml", p)
}

func TestDBPath(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DataDir = dir

	p, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathworld.db"), p)

	cfg.DB = filepath.Join(dir, "custom", "other.db")
	p, err = cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, cfg.DB, p)
	assert.DirExists(t, filepath.Join(dir, "custom"))
}

func TestResolveDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	p, err := Default().ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/data/mathworld", p)
}

func TestParseEnvFrom(t *testing.T) {
	type target struct {
		Port int `env:"PORT" envDefault:"123"`
	}
	var cfg target
	require.NoError(t, ParseEnvFrom(&cfg, "X_", map[string]string{}))
	assert.Equal(t, 123, cfg.Port)

	require.NoError(t, ParseEnvFrom(&cfg, "X_", map[string]string{"X_PORT": "9"}))
	assert.Equal(t, 9, cfg.Port)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, Duration(1500))
}
