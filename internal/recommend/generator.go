package recommend

import (
	"math"
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
)

// Generator produces one recommendation per calendar day from a learner
// snapshot and the problem catalog. It holds no learner state of its own;
// every call is a deterministic transformation of the snapshot it is given.
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a Generator over the given catalog.
func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{catalog: cat}
}

// Daily returns the recommendation for today, generating and appending it to
// the snapshot's log if the day has not been planned yet. Calling it again
// for the same date returns the existing entry unchanged.
func (g *Generator) Daily(snap *profile.Snapshot, today time.Time, prefs Preferences) *profile.DailyRecommendation {
	snap.EnsureDefaults()
	date := profile.DateKey(today)

	if rec := snap.RecommendationFor(date); rec != nil {
		return rec
	}

	carry := SelectCarryOver(snap.PendingProblems, snap.SolvedProblems)

	target := targetCount(prefs.pace(), snap.CurrentLevel.Name)
	newNeeded := target - len(carry)
	if newNeeded < 0 {
		newNeeded = 0
	}

	eligible := EligibleDifficulties(snap.SolvedProblems.Len(), prefs)
	fresh := PickNew(newNeeded, g.catalog, snap.SolvedProblems, eligible)

	carryIDs := make([]string, len(carry))
	for i, p := range carry {
		carryIDs[i] = p.ProblemID
	}
	freshIDs := make([]string, len(fresh))
	for i, p := range fresh {
		freshIDs[i] = p.ID
	}

	problems := make([]string, 0, len(carryIDs)+len(freshIDs))
	problems = append(problems, carryIDs...)
	problems = append(problems, freshIDs...)

	rec := profile.DailyRecommendation{
		Date:              date,
		Problems:          problems,
		CarryOverProblems: carryIDs,
		NewProblems:       freshIDs,
		// The catalog can run short of the pace target; the recorded
		// target always matches what was actually assigned.
		TotalTarget: len(problems),
		Completed:   0,
		Status:      profile.StatusPending,
	}
	snap.DailyRecommendations = append(snap.DailyRecommendations, rec)

	g.recordAssignments(snap, carryIDs, freshIDs, date)

	return snap.RecommendationFor(date)
}

// recordAssignments updates pending bookkeeping for every problem in
// today's plan: carried entries age by one day and get re-bucketed, new
// problems gain fresh pending entries.
func (g *Generator) recordAssignments(snap *profile.Snapshot, carryIDs, freshIDs []string, date string) {
	for _, id := range carryIDs {
		if p := snap.Pending(id); p != nil {
			p.DaysCarriedOver++
			p.Priority = profile.PriorityFor(p.DaysCarriedOver)
		}
	}
	for _, id := range freshIDs {
		if snap.Pending(id) != nil {
			continue
		}
		snap.PendingProblems = append(snap.PendingProblems, profile.PendingProblem{
			ProblemID:       id,
			AssignedDate:    date,
			DaysCarriedOver: 0,
			Priority:        profile.PriorityLow,
			Reason:          "daily recommendation",
		})
	}
}

// targetCount computes the day's problem-count target from pace and level.
func targetCount(pace Pace, levelName string) int {
	base := paceBase[pace]
	n := int(math.Round(float64(base) * levelMultiplier(levelName)))

	if n < 2 {
		n = 2
	}
	if limit := paceCap[pace]; n > limit {
		n = limit
	}
	return n
}

func levelMultiplier(levelName string) float64 {
	switch levelName {
	case profile.LevelIntermediate:
		return 1.2
	case profile.LevelAdvanced:
		return 1.3
	case profile.LevelExpert:
		return 1.5
	default:
		return 1.0
	}
}
