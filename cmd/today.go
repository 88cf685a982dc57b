package cmd

import (
	"fmt"
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
	"github.com/codepace/codepace/internal/recommend"
	"github.com/codepace/codepace/internal/ui/theme"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's recommended problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		prefs, err := prefsFromFlags(cmd)
		if err != nil {
			return err
		}

		rec, snap, err := svc.Today(cmd.Context(), time.Now(), prefs)
		if err != nil {
			return err
		}

		printRecommendation(cmd, svc.Catalog(), rec, snap)
		return nil
	},
}

func init() {
	todayCmd.Flags().String("pace", "", "Learning pace: slow, medium, or fast")
	todayCmd.Flags().Bool("adaptive", true, "Derive difficulty tiers from solve count")
	todayCmd.Flags().StringSlice("difficulty", nil, "Explicit difficulty tiers (with --adaptive=false)")
}

func prefsFromFlags(cmd *cobra.Command) (recommend.Preferences, error) {
	prefs := recommend.Preferences{}

	if pace, _ := cmd.Flags().GetString("pace"); pace != "" {
		prefs.LearningPace = recommend.ParsePace(pace)
	}
	if cmd.Flags().Changed("adaptive") {
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		prefs.AdaptiveDifficulty = &adaptive
	}
	tiers, _ := cmd.Flags().GetStringSlice("difficulty")
	for _, t := range tiers {
		d, err := catalog.ParseDifficulty(t)
		if err != nil {
			return prefs, err
		}
		prefs.DifficultyPreferences = append(prefs.DifficultyPreferences, d)
	}
	return prefs, nil
}

func printRecommendation(cmd *cobra.Command, cat *catalog.Catalog, rec *profile.DailyRecommendation, snap *profile.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Today's practice for %s", rec.Date)))
	fmt.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("%d of %d done (%s)", rec.Completed, rec.TotalTarget, rec.Status)))
	fmt.Fprintln(out)

	carry := make(map[string]bool, len(rec.CarryOverProblems))
	for _, id := range rec.CarryOverProblems {
		carry[id] = true
	}

	for _, id := range rec.Problems {
		marker := "[ ]"
		if snap.SolvedProblems.Has(id) {
			marker = theme.Done.Render("[x]")
		}

		title, tier, topic := id, "", ""
		if p, ok := cat.Get(id); ok {
			title, tier, topic = p.Title, string(p.Difficulty), p.Category
		}

		line := fmt.Sprintf("%s %s", marker, theme.Body.Render(title))
		if tier != "" {
			line += "  " + theme.DifficultyStyle(tier).Render(tier)
		}
		if topic != "" {
			line += "  " + theme.Subtitle.Render(topic)
		}
		if carry[id] {
			age := 0
			if pend := snap.Pending(id); pend != nil {
				age = pend.DaysCarriedOver
			}
			line += "  " + theme.Carry.Render(fmt.Sprintf("carried %dd", age))
		}
		fmt.Fprintln(out, line)

		if p, ok := cat.Get(id); ok && p.Link != "" {
			fmt.Fprintln(out, "    "+theme.Subtitle.Render(p.Link))
		}
	}
}
