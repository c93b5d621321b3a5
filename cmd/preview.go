package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/kanjiz/internal/kanjidict"
	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/quizgen"
	"github.com/abhisek/kanjiz/internal/textgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and answer quiz questions in the terminal (no database)",
	Long: `Generate and interactively answer questions for a JLPT level.

This is a stateless developer tool — no database and no answer logging.
Useful for evaluating question quality against a backend.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "5", "JLPT level (5-1)")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")

	pool := kanjidict.PoolForLevel(level)
	if len(pool) == 0 {
		return fmt.Errorf("no kanji tagged for JLPT level %q", level)
	}

	// No EventRepo, so backend calls are not logged.
	ctx := context.Background()
	provider, err := textgen.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("text generation backend: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	session := quiz.NewSession(level, gen, nil, nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Level: JLPT N%s (%d kanji in pool)\n", level, len(pool))
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct, answered int

	for i := 1; i <= count; i++ {
		q, err := session.Generate(ctx)
		if err != nil {
			fmt.Printf("Question %d: %s\n\n", i, quiz.FailureMessage(err))
			continue
		}

		fmt.Printf("── Question %d/%d ── [%s  %s]\n", i, count, q.Kanji, session.TaskType())
		fmt.Println(q.Prompt)
		for j, c := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, c)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 1 || idx > len(q.Choices) {
			fmt.Print("(not a choice, skipped)\n\n")
			continue
		}

		result, err := session.SelectChoice(ctx, idx-1)
		if err != nil {
			fmt.Printf("(%v)\n\n", err)
			continue
		}

		answered++
		if result == quiz.ResultCorrect {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
