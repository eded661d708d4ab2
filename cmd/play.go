package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/screens/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open Math World at the main menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Jump straight into a quiz",
	Example: `  mathworld quiz --op add --difficulty easy
  mathworld quiz --op mixed --difficulty hard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseStart(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, &start)
	},
}

func init() {
	quizCmd.Flags().String("op", "add", "Operation: add, subtract, multiply, divide or mixed")
	quizCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
}

func parseStart(cmd *cobra.Command) (quiz.Start, error) {
	opVal, _ := cmd.Flags().GetString("op")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	op, err := problemgen.ParseOperation(opVal)
	if err != nil {
		return quiz.Start{}, fmt.Errorf("invalid --op: %w", err)
	}
	diff, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return quiz.Start{}, fmt.Errorf("invalid --difficulty: %w", err)
	}
	return quiz.Start{Operation: op, Difficulty: diff}, nil
}
