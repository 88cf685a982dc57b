package recommend

import (
	"sort"

	"github.com/codepace/codepace/internal/profile"
)

// SelectCarryOver picks the pending problems to re-include in today's plan:
// oldest unresolved first, at most CarryOverLimit. Entries whose problem has
// been solved since assignment are excluded. The returned copies carry a
// freshly derived priority bucket; the sort itself is stable, so entries
// tied on age keep their insertion order.
func SelectCarryOver(pending []profile.PendingProblem, solved profile.ProblemSet) []profile.PendingProblem {
	candidates := make([]profile.PendingProblem, 0, len(pending))
	for _, p := range pending {
		if solved.Has(p.ProblemID) {
			continue
		}
		p.Priority = profile.PriorityFor(p.DaysCarriedOver)
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DaysCarriedOver > candidates[j].DaysCarriedOver
	})

	if len(candidates) > CarryOverLimit {
		candidates = candidates[:CarryOverLimit]
	}
	return candidates
}
