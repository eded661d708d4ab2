package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathworld",
	Short: "Arithmetic quizzes and times tables for kids",
	Long: `Math World is a terminal playground where young learners answer picture
arithmetic problems, sing through multiplication tables and listen to
short jungle stories.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides MATHWORLD_DB)")
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mathworld/config.yaml)")
	flags.Bool("mute", false, "Start with sound cues and narration muted")
	flags.Bool("quiet", false, "Turn off spoken narration, keep sound cues")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
