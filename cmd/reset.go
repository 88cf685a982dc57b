package cmd

import (
	"fmt"

	"github.com/codepace/codepace/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes all learner progress; re-run with --force to confirm")
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := svc.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Body.Render("Learner data reset."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion of all learner progress")
}
