package recommend

import "github.com/codepace/codepace/internal/catalog"

// Pace is the learner-selected daily problem-count preset.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceMedium Pace = "medium"
	PaceFast   Pace = "fast"
)

// ParsePace converts a string to a Pace, defaulting to slow for anything
// unrecognized or empty.
func ParsePace(s string) Pace {
	switch Pace(s) {
	case PaceMedium:
		return PaceMedium
	case PaceFast:
		return PaceFast
	default:
		return PaceSlow
	}
}

// Preferences are per-invocation learner preferences. The zero value means
// pace slow with adaptive difficulty on.
type Preferences struct {
	LearningPace          Pace
	DailyTimeLimitMinutes int
	DifficultyPreferences []catalog.Difficulty
	// AdaptiveDifficulty defaults to true when nil.
	AdaptiveDifficulty *bool
}

func (p Preferences) pace() Pace {
	return ParsePace(string(p.LearningPace))
}

func (p Preferences) adaptive() bool {
	return p.AdaptiveDifficulty == nil || *p.AdaptiveDifficulty
}

// CarryOverLimit caps how many leftover problems join a day's plan.
const CarryOverLimit = 3

// Per-pace base counts and caps for the daily target.
var (
	paceBase = map[Pace]int{PaceSlow: 2, PaceMedium: 4, PaceFast: 6}
	paceCap  = map[Pace]int{PaceSlow: 3, PaceMedium: 5, PaceFast: 8}
)
