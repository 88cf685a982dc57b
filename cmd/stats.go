package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		snap, err := svc.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lvl := snap.CurrentLevel
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s (stage %d)", lvl.Name, lvl.Stage)))
		fmt.Fprintln(out, theme.Body.Render(fmt.Sprintf(
			"Solved %d problems, %d until next level", lvl.ProblemsSolved, remaining(lvl.ProblemsSolved, lvl.RequiredForNext))))
		if len(lvl.CurrentFocus) > 0 {
			fmt.Fprintln(out, theme.Subtitle.Render("Focus: "+strings.Join(lvl.CurrentFocus, ", ")))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, theme.Body.Render(fmt.Sprintf(
			"Streak: %d days   Active days: %d", snap.CurrentStreak, snap.TotalActiveDays)))

		week, err := svc.WeeklyActivity(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		weekTotal := 0
		for _, dc := range week {
			weekTotal += dc.Count
		}
		fmt.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("Solves in the last 7 days: %d", weekTotal)))
		fmt.Fprintln(out)

		fmt.Fprintln(out, theme.Emph.Render("Difficulty progression"))
		for _, d := range catalog.AllDifficulties() {
			tp := snap.DifficultyProgression[d]
			if tp == nil {
				continue
			}
			fmt.Fprintf(out, "  %-10s %d/%d\n", theme.DifficultyStyle(string(d)).Render(string(d)), tp.Solved, tp.Total)
		}

		if len(snap.TopicMastery) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Emph.Render("Topic mastery"))
			topics := make([]string, 0, len(snap.TopicMastery))
			for t := range snap.TopicMastery {
				topics = append(topics, t)
			}
			sort.Strings(topics)
			for _, t := range topics {
				tm := snap.TopicMastery[t]
				fmt.Fprintf(out, "  %-22s %3.0f%%  (%d/%d)\n", t, tm.Level, tm.ProblemsSolved, tm.TotalProblems)
			}
		}

		if n := len(snap.PendingProblems); n > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Carry.Render(fmt.Sprintf("%d problems pending carry-over", n)))
		}
		return nil
	},
}

func remaining(solved, required int) int {
	if solved >= required {
		return 0
	}
	return required - solved
}
