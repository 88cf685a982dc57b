package recommend

import (
	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
)

// PickNew fills up to count slots with unsolved catalog problems, preferring
// topic variety. The pool is filtered to the eligible difficulty tiers
// unless doing so leaves fewer than count candidates; difficulty scarcity
// never blocks selection. Returns fewer than count when the catalog runs
// out.
func PickNew(count int, cat *catalog.Catalog, solved profile.ProblemSet, eligible []catalog.Difficulty) []catalog.Problem {
	if count <= 0 || cat == nil {
		return nil
	}

	var unsolved []catalog.Problem
	for _, p := range cat.Problems() {
		if !solved.Has(p.ID) {
			unsolved = append(unsolved, p)
		}
	}

	pool := unsolved
	if len(eligible) > 0 {
		tiers := make(map[catalog.Difficulty]bool, len(eligible))
		for _, d := range eligible {
			tiers[d] = true
		}
		var filtered []catalog.Problem
		for _, p := range unsolved {
			if tiers[p.Difficulty] {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) >= count {
			pool = filtered
		}
	}

	// Pass 1: first problem per not-yet-used topic, maximizing variety.
	picked := make([]catalog.Problem, 0, count)
	usedTopics := make(map[string]bool)
	usedIDs := make(map[string]bool)
	for _, p := range pool {
		if len(picked) == count {
			break
		}
		if usedTopics[p.Category] {
			continue
		}
		usedTopics[p.Category] = true
		usedIDs[p.ID] = true
		picked = append(picked, p)
	}

	// Pass 2: fill remaining slots in pool order.
	for _, p := range pool {
		if len(picked) == count {
			break
		}
		if usedIDs[p.ID] {
			continue
		}
		usedIDs[p.ID] = true
		picked = append(picked, p)
	}

	return picked
}
