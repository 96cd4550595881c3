package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/progress"
	"github.com/abhisek/sikshya/internal/store"
)

// progressCmd prints the aggregated summary without entering the TUI.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print your progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		tokens := auth.NewTokenCache(st)
		client := api.NewClient(resolveAPIBase(cmd), tokens.Load(ctx))

		session, err := client.Current(ctx)
		if err != nil {
			return fmt.Errorf("check session: %w", err)
		}
		if session == nil {
			fmt.Println("Not logged in. Run sikshya to log in first.")
			return nil
		}

		cat, led, err := client.LoadDashboard(ctx, session.ID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		selected := prefs.NewService(ctx, st).Subjects()
		view := progress.Aggregate(cat, led, selected)
		s := view.Summary

		fmt.Printf("Progress for %s\n\n", session.Name)
		for _, subject := range selected {
			fmt.Printf("  %s\n", subject.DisplayName())
		}
		fmt.Printf("\n  Passed:       %d\n", s.Passed)
		fmt.Printf("  Needs review: %d\n", s.NeedsReview)
		fmt.Printf("  Not started:  %d\n", s.NotStarted)

		if pct, ok := s.Coverage(); ok {
			fmt.Printf("\n  Coverage: %d%% of %d concepts diagnosed\n", pct, s.Total)
		} else {
			fmt.Println("\n  Coverage: no data (no subjects selected)")
		}
		return nil
	},
}
