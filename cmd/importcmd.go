package cmd

import (
	"fmt"
	"os"

	"github.com/codepace/codepace/internal/ui/theme"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a problem catalog from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}

		n, err := svc.ImportCatalog(cmd.Context(), raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Body.Render(fmt.Sprintf("Imported %d problems.", n)))
		return nil
	},
}
