package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworld/internal/app"
	"github.com/abhisek/mathworld/internal/audio"
	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/screens/quiz"
	"github.com/abhisek/mathworld/internal/story"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-nil start opens the quiz with those selections already made.
func runApp(cmd *cobra.Command, start *quiz.Start) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()
	cfg := e.cfg

	player := audio.NewService(audio.Options{
		Sound:        cfg.Audio.Sound,
		Voice:        cfg.Audio.Voice,
		VoiceCommand: cfg.Audio.VoiceCommand,
		Bell:         os.Stderr,
	}, e.logger)
	e.closeLater(player)
	if mute, _ := cmd.Flags().GetBool("mute"); mute {
		player.SetMuted(true)
	}

	local := problemgen.NewLocal(nil)
	opts := app.Options{
		Session:  sessionConfig(cfg.Timing),
		Tables:   tablesConfig(cfg.Timing),
		Problems: local,
		Scores:   e.store,
		History:  e.store,
		Games:    e.store,
		Audio:    player,
		Muter:    player,
		Logger:   e.logger,
		Start:    start,
	}

	provider := e.provider(ctx)
	opts.Story = story.New(provider, cfg.LLM.StoryHero, e.logger)
	if provider != nil && cfg.LLM.Enabled {
		pcfg := problemgen.DefaultPrefetchConfig()
		if cfg.LLM.Prefetch > 0 {
			pcfg.Buffer = cfg.LLM.Prefetch
		}
		if cfg.LLM.Timeout > 0 {
			pcfg.Timeout = cfg.LLM.Timeout
		}
		gen := problemgen.New(provider, problemgen.DefaultConfig(), nil)
		prefetcher := problemgen.NewPrefetcher(gen, local, pcfg, e.logger)
		e.closeLater(prefetcher)
		if start != nil {
			prefetcher.Warm(start.Operation, start.Difficulty)
		}
		opts.Problems = prefetcher
		e.logger.Info("remote problems enabled", "model", provider.ModelID(), "buffer", pcfg.Buffer)
	}

	if err := app.Run(ctx, opts); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
