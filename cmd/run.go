package cmd

import (
	"fmt"

	"github.com/abhisek/kanjiz/internal/app"
	"github.com/abhisek/kanjiz/internal/quizgen"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/textgen"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	provider, err := textgen.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("text generation backend: %w", err)
	}

	level, _ := cmd.Flags().GetString("level")

	return app.Run(app.Options{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		EventRepo: eventRepo,
		Level:     level,
	})
}
