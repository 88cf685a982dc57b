package cmd

import (
	"context"

	"github.com/codepace/codepace/internal/app"
	"github.com/codepace/codepace/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codepace",
	Short: "Daily coding-practice tracker",
	Long:  "Codepace assigns a set of practice problems each day, carries forward unsolved ones, and levels you up as you solve.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEPACE_DB env var)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CODEPACE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds the application service.
// The returned closer shuts the store down.
func openService(cmd *cobra.Command) (*app.Service, func() error, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.NewService(context.Background(), app.Options{
		ProfileRepo: st.ProfileRepo(),
		EventRepo:   st.EventRepo(),
		CatalogRepo: st.CatalogRepo(),
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, st.Close, nil
}
