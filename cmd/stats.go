package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the high score and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("recent")

		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		high, err := e.store.ReadHighScore(ctx)
		if err != nil {
			return fmt.Errorf("read high score: %w", err)
		}
		perOp, err := e.store.GameStats(ctx)
		if err != nil {
			return fmt.Errorf("query game stats: %w", err)
		}
		recent, err := e.store.RecentGames(ctx, limit)
		if err != nil {
			return fmt.Errorf("query recent games: %w", err)
		}

		p := message.NewPrinter(language.English)
		p.Printf("High score: %d\n", high)

		if len(perOp) == 0 {
			fmt.Println("\nNo quizzes finished yet. Run `mathworld play` to start one!")
			return nil
		}

		fmt.Println()
		fmt.Println("By Operation")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-12s  %6s  %6s  %10s  %9s\n", "Operation", "Games", "Best", "Points", "Accuracy")
		fmt.Println(strings.Repeat("─", 60))

		var games, points int
		for _, st := range perOp {
			p.Printf("%-12s  %6d  %6d  %10d  %8.0f%%\n",
				st.Operation.String(), st.Games, st.BestScore, st.TotalScore, st.Accuracy()*100)
			games += st.Games
			points += st.TotalScore
		}
		fmt.Println(strings.Repeat("─", 60))
		p.Printf("%-12s  %6d  %6s  %10d\n", "TOTAL", games, "", points)

		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent Games")
			fmt.Println(strings.Repeat("─", 60))
			for _, g := range recent {
				star := ""
				if g.NewHighScore {
					star = " ★"
				}
				p.Printf("%-16s  %-14s  %-8s  %3d pts  %d/%d%s\n",
					g.FinishedAt.Local().Format("2006-01-02 15:04"),
					g.Operation.String(),
					g.Difficulty.Label(),
					g.Score, g.Correct, g.Total, star)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 10, "Number of recent games to show")
}
