package progress

import (
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
)

// updateTopicMastery folds one solved problem into the running per-topic
// statistics. The mastery level is solve coverage of the topic on a 0-100
// scale.
func (t *Tracker) updateTopicMastery(snap *profile.Snapshot, p catalog.Problem, now time.Time) {
	tm := snap.TopicMastery[p.Category]
	if tm == nil {
		tm = &profile.TopicMastery{
			TotalProblems: t.catalog.CategoryTotal(p.Category),
		}
		snap.TopicMastery[p.Category] = tm
	}

	prevCount := tm.ProblemsSolved
	tm.ProblemsSolved++
	if tm.TotalProblems > 0 {
		tm.Level = float64(tm.ProblemsSolved) / float64(tm.TotalProblems) * 100
		if tm.Level > 100 {
			tm.Level = 100
		}
		tm.SuccessRate = float64(tm.ProblemsSolved) / float64(tm.TotalProblems)
	}
	tm.AverageTime = (tm.AverageTime*float64(prevCount) + float64(p.TimeEstimateMinutes)) / float64(prevCount+1)
	tm.LastPracticed = now.Format(time.RFC3339)

	tm.WeakAreas, tm.StrongPatterns = t.tierCoverage(snap, p.Category)
}

// tierCoverage classifies the topic's difficulty tiers: tiers with no
// solves yet are weak areas, fully covered tiers are strong patterns.
func (t *Tracker) tierCoverage(snap *profile.Snapshot, category string) (weak, strong []string) {
	for _, d := range catalog.AllDifficulties() {
		total, solved := 0, 0
		for _, p := range t.catalog.Problems() {
			if p.Category != category || p.Difficulty != d {
				continue
			}
			total++
			if snap.SolvedProblems.Has(p.ID) {
				solved++
			}
		}
		if total == 0 {
			continue
		}
		switch {
		case solved == 0:
			weak = append(weak, string(d))
		case solved == total:
			strong = append(strong, string(d))
		}
	}
	return weak, strong
}

// updateDifficultyProgression folds one solved problem into the per-tier
// coverage counters.
func (t *Tracker) updateDifficultyProgression(snap *profile.Snapshot, p catalog.Problem) {
	tp := snap.DifficultyProgression[p.Difficulty]
	if tp == nil {
		tp = &profile.TierProgress{}
		snap.DifficultyProgression[p.Difficulty] = tp
	}
	tp.Solved++
	tp.Total = t.catalog.DifficultyTotal(p.Difficulty)
	if tp.Total > 0 {
		tp.SuccessRate = float64(tp.Solved) / float64(tp.Total)
	}
}
