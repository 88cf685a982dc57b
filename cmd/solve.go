package cmd

import (
	"fmt"
	"time"

	"github.com/codepace/codepace/internal/ui/theme"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem-id>",
	Short: "Record a solved problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := svc.Solve(cmd.Context(), args[0], time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		title := args[0]
		if p, ok := svc.Catalog().Get(args[0]); ok {
			title = p.Title
		} else {
			fmt.Fprintln(out, theme.Subtitle.Render("(not in catalog; recorded without mastery update)"))
		}
		fmt.Fprintln(out, theme.Done.Render("Solved: ")+theme.Body.Render(title))

		if res.Transition != nil {
			fmt.Fprintln(out, theme.Emph.Render(fmt.Sprintf(
				"Level up! %s → %s (stage %d)",
				res.Transition.From.Name, res.Transition.To.Name, res.Transition.To.Stage)))
		}
		if res.Today != nil {
			fmt.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf(
				"Today: %d of %d done (%s)", res.Today.Completed, res.Today.TotalTarget, res.Today.Status)))
		}
		return nil
	},
}

var attemptCmd = &cobra.Command{
	Use:   "attempt <problem-id>",
	Short: "Record an unsuccessful attempt on a pending problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		found, err := svc.Attempt(cmd.Context(), args[0], time.Now())
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("problem %q is not pending", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Body.Render("Attempt recorded."))
		return nil
	},
}
