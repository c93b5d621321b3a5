package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/kanjiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer accuracy per JLPT level",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().AnswerStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%-8s  %-9s  %-8s  %s\n", "Level", "Answered", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 40))
		for _, ls := range stats {
			fmt.Printf("N%-7s  %-9d  %-8d  %.0f%%\n",
				ls.Level, ls.Total, ls.Correct, ls.Accuracy()*100)
		}
		return nil
	},
}
