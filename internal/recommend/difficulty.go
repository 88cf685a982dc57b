package recommend

import "github.com/codepace/codepace/internal/catalog"

// EligibleDifficulties computes which difficulty tiers are currently
// appropriate for a learner with the given total solved count.
//
// With adaptive difficulty (the default) the tiers ramp with experience.
// Explicit difficulty preferences are honored verbatim when adaptive mode is
// off; absent both, a coarser adaptive rule applies.
func EligibleDifficulties(solvedCount int, prefs Preferences) []catalog.Difficulty {
	if prefs.adaptive() {
		switch {
		case solvedCount < 10:
			return []catalog.Difficulty{catalog.DifficultyEasy}
		case solvedCount < 30:
			return []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium}
		case solvedCount < 60:
			return []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard}
		case solvedCount < 100:
			return []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard, catalog.DifficultyVeryHard}
		default:
			return []catalog.Difficulty{catalog.DifficultyHard, catalog.DifficultyVeryHard}
		}
	}

	if len(prefs.DifficultyPreferences) > 0 {
		out := make([]catalog.Difficulty, len(prefs.DifficultyPreferences))
		copy(out, prefs.DifficultyPreferences)
		return out
	}

	switch {
	case solvedCount < 10:
		return []catalog.Difficulty{catalog.DifficultyEasy}
	case solvedCount < 30:
		return []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium}
	default:
		return []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard}
	}
}
