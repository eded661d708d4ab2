package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworld/internal/llm"
	"github.com/abhisek/mathworld/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for an operation (no database)",
	Long: `Generate problems for an operation and difficulty and answer them on the
command line.

This is a developer tool: no game is saved and the high score is never
touched. With --remote the problems come from the configured LLM instead
of the local generator, and each request is logged with the "preview"
purpose (see "mathworld llm list -p preview").`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("op", "add", "Operation: add, subtract, multiply, divide or mixed")
	previewCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("remote", false, "Generate problems with the LLM")
	previewCmd.Flags().Bool("show", false, "Print answers instead of asking for them")
}

func runPreview(cmd *cobra.Command, args []string) error {
	start, err := parseStart(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	remote, _ := cmd.Flags().GetBool("remote")
	show, _ := cmd.Flags().GetBool("show")

	// The store is only opened to log remote requests.
	open := loadEnv
	if remote {
		open = openEnv
	}
	e, err := open(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	var gen problemgen.Generator = problemgen.NewLocal(nil)
	if remote {
		provider := e.provider(ctx)
		if provider == nil {
			return fmt.Errorf("--remote needs an LLM API key (e.g. GEMINI_API_KEY)")
		}
		gen = problemgen.New(provider, problemgen.DefaultConfig(), nil)
		ctx = llm.WithPurpose(ctx, llm.PurposePreview)
	}

	fmt.Printf("%s · %s (%s)\n", start.Operation.Title(), start.Difficulty.Label(), start.Difficulty.Description())
	fmt.Printf("Generating %d problems...\n\n", count)

	scanner := bufio.NewScanner(os.Stdin)
	var correct, asked int

	for i := 1; i <= count; i++ {
		p, err := gen.Generate(ctx, start.Operation, start.Difficulty)
		if err != nil {
			fmt.Printf("Problem %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Problem %d/%d ──\n", i, count)
		fmt.Println(p.Question)
		fmt.Printf("  %s  %s  %s\n",
			strings.Join(p.FirstVisuals, ""), p.Symbol, strings.Join(p.SecondVisuals, ""))
		for j, o := range p.Options {
			fmt.Printf("  %d) %d\n", j+1, o)
		}
		if p.Hint != "" {
			fmt.Printf("Hint: %s\n", p.Hint)
		}

		if show {
			fmt.Printf("Answer: %d\n\n", p.Answer)
			continue
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}
		asked++

		v, err := strconv.Atoi(text)
		if err == nil && p.IsCorrect(v) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Oops.\033[0m Answer: %d\n", p.Answer)
		}
		fmt.Println()
	}

	if !show {
		fmt.Printf("── Summary: %d/%d correct ──\n", correct, asked)
	}
	return nil
}
