package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/app"
	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/store"
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

	tokens := auth.NewTokenCache(st)
	client := api.NewClient(resolveAPIBase(cmd), tokens.Load(ctx))

	return app.Run(app.Options{
		Client: client,
		Tokens: tokens,
		Prefs:  prefs.NewService(ctx, st),
	})
}
