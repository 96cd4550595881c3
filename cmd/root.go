package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sikshya/internal/store"
)

// defaultAPIBase is the backend used when neither --api nor SIKSHYA_API
// is set.
const defaultAPIBase = "http://localhost:5000"

var rootCmd = &cobra.Command{
	Use:   "sikshya",
	Short: "Progress dashboard for the Sikshya tutoring platform",
	Long:  "Sikshya — terminal dashboard that tracks your diagnosed concepts, subject by subject, and routes you into new diagnostics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SIKSHYA_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides SIKSHYA_API env var)")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SIKSHYA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIBase returns the backend base URL using --api, then
// SIKSHYA_API, then the default.
func resolveAPIBase(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	if u := os.Getenv("SIKSHYA_API"); u != "" {
		return u
	}
	return defaultAPIBase
}
