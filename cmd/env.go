package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworld/internal/config"
	"github.com/abhisek/mathworld/internal/llm"
	"github.com/abhisek/mathworld/internal/logging"
	"github.com/abhisek/mathworld/internal/session"
	"github.com/abhisek/mathworld/internal/store"
	"github.com/abhisek/mathworld/internal/tables"
)

// env holds what every command needs: the layered config, a logger and,
// once opened, the store. Close releases everything in reverse order.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	closers []io.Closer
}

// loadEnv resolves config and sets up logging. CLI subcommands pass
// stderr=true so warnings reach the terminal; the TUI logs to file only.
func loadEnv(cmd *cobra.Command, stderr bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	opts := logging.Options{Path: logPath, Level: cfg.Log.Level}
	if stderr {
		opts.Stderr = os.Stderr
	}
	logger, closer, err := logging.Setup(opts)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	return &env{cfg: cfg, logger: logger, closers: []io.Closer{closer}}, nil
}

// openEnv is loadEnv plus the store.
func openEnv(cmd *cobra.Command, stderr bool) (*env, error) {
	e, err := loadEnv(cmd, stderr)
	if err != nil {
		return nil, err
	}
	dbPath, err := e.cfg.DBPath()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closeLater(st)
	e.logger.Debug("store opened", "path", dbPath)
	return e, nil
}

func (e *env) closeLater(c io.Closer) {
	e.closers = append(e.closers, c)
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// provider builds the LLM provider from the environment. It returns nil
// when no API key is configured; the app then runs fully offline.
func (e *env) provider(ctx context.Context) llm.Provider {
	cfg, ok, err := llm.Resolve()
	if err != nil {
		e.logger.Warn("invalid LLM settings, AI features disabled", "error", err)
		return nil
	}
	if e.cfg.LLM.Provider != "" {
		cfg.Provider = e.cfg.LLM.Provider
		ok = cfg.HasKey() || cfg.Provider == "mock"
	}
	if !ok {
		e.logger.Info("no LLM API key found, AI features disabled")
		return nil
	}
	cfg.SetModel(e.cfg.LLM.Model)
	if e.cfg.LLM.Timeout > 0 {
		cfg.Timeout = e.cfg.LLM.Timeout
	}

	var log llm.RequestLog
	if e.store != nil {
		log = e.store.EventRepo()
	}
	p, err := llm.NewProvider(ctx, cfg, log, e.logger)
	if err != nil {
		e.logger.Warn("LLM provider unavailable", "provider", cfg.Provider, "error", err)
		return nil
	}
	return p
}

// loadConfig layers flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		cfg.Audio.Voice = false
	}
	return cfg, nil
}

func sessionConfig(t config.TimingConfig) session.Config {
	cfg := session.DefaultConfig()
	cfg.CorrectDelay = config.Duration(t.CorrectMs)
	cfg.WrongDelay = config.Duration(t.WrongMs)
	cfg.ResultNarrationDelay = config.Duration(t.ResultNarrationMs)
	return cfg
}

func tablesConfig(t config.TimingConfig) tables.Config {
	return tables.Config{
		NarrateDelay:         config.Duration(t.NarrateMs),
		AutoAdvanceDelay:     config.Duration(t.AutoAdvanceMs),
		PracticeAdvanceDelay: config.Duration(t.PracticeAdvanceMs),
		PracticeFinishDelay:  config.Duration(t.PracticeFinishMs),
	}
}
