package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear local preferences and the cached login",
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

		if err := prefs.NewService(ctx, st).Reset(ctx); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
		auth.NewTokenCache(st).Clear(ctx)

		fmt.Println("Local preferences and cached login cleared.")
		return nil
	},
}
