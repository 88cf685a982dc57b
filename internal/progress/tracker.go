package progress

import (
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
)

// Tracker advances learner state on solve events. Like the recommendation
// generator it is stateless between calls; every method is a deterministic
// transformation of the snapshot it is handed.
type Tracker struct {
	catalog *catalog.Catalog
}

// NewTracker creates a Tracker over the given catalog.
func NewTracker(cat *catalog.Catalog) *Tracker {
	return &Tracker{catalog: cat}
}

// LevelTransition describes a stage advance caused by a solve.
type LevelTransition struct {
	From profile.Level
	To   profile.Level
}

// OnProblemSolved records a solve: the id moves from pending to solved,
// level and mastery statistics advance, and today's recommendation entry is
// recounted. A problem id missing from the catalog still records the solve
// and refreshes today's status, but skips level and mastery updates.
// Returns a LevelTransition when the solve crossed a stage threshold, and
// whether the id was newly solved rather than a repeat.
func (t *Tracker) OnProblemSolved(snap *profile.Snapshot, problemID string, now time.Time) (*LevelTransition, bool) {
	snap.EnsureDefaults()

	if snap.SolvedProblems.Has(problemID) {
		// Re-recording a solve must not double-count.
		snap.RemovePending(problemID)
		t.refreshToday(snap, now)
		return nil, false
	}

	snap.SolvedProblems.Add(problemID)
	snap.RemovePending(problemID)
	touchStreak(snap, now)

	var transition *LevelTransition
	if p, ok := t.catalog.Get(problemID); ok {
		transition = t.advanceLevel(snap)
		t.updateTopicMastery(snap, p, now)
		t.updateDifficultyProgression(snap, p)
	}

	t.refreshToday(snap, now)
	return transition, true
}

// RecordAttempt notes an unsuccessful attempt on a pending problem.
// Reports whether a pending entry was found.
func (t *Tracker) RecordAttempt(snap *profile.Snapshot, problemID string, now time.Time) bool {
	snap.EnsureDefaults()
	p := snap.Pending(problemID)
	if p == nil {
		return false
	}
	p.Attempts++
	p.LastAttemptDate = profile.DateKey(now)
	return true
}

// advanceLevel increments the cumulative solve counter and moves the
// learner forward exactly one stage when the threshold is crossed. Stages
// never move backwards and the final stage is terminal.
func (t *Tracker) advanceLevel(snap *profile.Snapshot) *LevelTransition {
	snap.CurrentLevel.ProblemsSolved++

	lvl := &snap.CurrentLevel
	if lvl.Stage >= maxStage || lvl.ProblemsSolved < lvl.RequiredForNext {
		return nil
	}

	from := *lvl
	next := levelAt(lvl.Stage + 1)
	*lvl = newLevel(next, lvl.ProblemsSolved)
	return &LevelTransition{From: from, To: *lvl}
}

func (t *Tracker) refreshToday(snap *profile.Snapshot, now time.Time) {
	if rec := snap.RecommendationFor(profile.DateKey(now)); rec != nil {
		rec.Refresh(snap.SolvedProblems)
	}
}
