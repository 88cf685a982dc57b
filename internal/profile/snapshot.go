package profile

import (
	"time"

	"github.com/codepace/codepace/internal/catalog"
)

// SnapshotVersion is the current wire-format version.
const SnapshotVersion = 1

// Level names in progression order.
const (
	LevelAbsoluteBeginner = "Absolute Beginner"
	LevelBeginner         = "Beginner"
	LevelIntermediate     = "Intermediate"
	LevelAdvanced         = "Advanced"
	LevelExpert           = "Expert"
)

// Priority buckets a pending problem by how long it has carried over.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityFor derives the priority bucket from the carry-over age.
func PriorityFor(daysCarriedOver int) Priority {
	switch {
	case daysCarriedOver >= 3:
		return PriorityHigh
	case daysCarriedOver >= 1:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PendingProblem is a previously assigned, still-unsolved problem.
type PendingProblem struct {
	ProblemID       string   `json:"problemId"`
	AssignedDate    string   `json:"assignedDate"`
	DaysCarriedOver int      `json:"daysCarriedOver"`
	Priority        Priority `json:"priority"`
	Reason          string   `json:"reason,omitempty"`
	Attempts        int      `json:"attempts"`
	LastAttemptDate string   `json:"lastAttemptDate,omitempty"`
}

// RecommendationStatus is the completion state of a day's recommendation.
type RecommendationStatus string

const (
	StatusPending   RecommendationStatus = "pending"
	StatusPartial   RecommendationStatus = "partial"
	StatusCompleted RecommendationStatus = "completed"
)

// StatusFor derives the status from completed count vs the day's target.
func StatusFor(completed, totalTarget int) RecommendationStatus {
	switch {
	case completed == 0:
		return StatusPending
	case completed < totalTarget:
		return StatusPartial
	default:
		return StatusCompleted
	}
}

// DailyRecommendation is one calendar day's problem assignment.
// Problem lists hold catalog ids; the log is append-only, at most one entry
// per date.
type DailyRecommendation struct {
	Date              string               `json:"date"`
	Problems          []string             `json:"problems"`
	CarryOverProblems []string             `json:"carryOverProblems"`
	NewProblems       []string             `json:"newProblems"`
	TotalTarget       int                  `json:"totalTarget"`
	Completed         int                  `json:"completed"`
	Status            RecommendationStatus `json:"status"`
}

// Refresh recounts Completed against the solved set and re-derives Status.
// The Problems list itself never changes after generation.
func (r *DailyRecommendation) Refresh(solved ProblemSet) {
	n := 0
	for _, id := range r.Problems {
		if solved.Has(id) {
			n++
		}
	}
	r.Completed = n
	r.Status = StatusFor(n, r.TotalTarget)
}

// Level is the learner's position in the five-stage progression.
type Level struct {
	Name            string   `json:"name"`
	Stage           int      `json:"stage"`
	ProblemsSolved  int      `json:"problemsSolved"`
	RequiredForNext int      `json:"requiredForNext"`
	SkillAreas      []string `json:"skillAreas"`
	CurrentFocus    []string `json:"currentFocus"`
}

// TierProgress tracks solve coverage for one difficulty tier.
type TierProgress struct {
	Solved      int     `json:"solved"`
	Total       int     `json:"total"`
	SuccessRate float64 `json:"successRate"`
}

// TopicMastery is the running proficiency estimate for one topic.
type TopicMastery struct {
	Level          float64  `json:"level"`
	ProblemsSolved int      `json:"problemsSolved"`
	TotalProblems  int      `json:"totalProblems"`
	AverageTime    float64  `json:"averageTimeMinutes"`
	SuccessRate    float64  `json:"successRate"`
	LastPracticed  string   `json:"lastPracticed,omitempty"`
	WeakAreas      []string `json:"weakAreas,omitempty"`
	StrongPatterns []string `json:"strongPatterns,omitempty"`
}

// Snapshot is the full mutable state for one learner. It is exclusively
// owned by the caller between engine invocations; engine operations read a
// snapshot, apply a deterministic transformation, and hand it back. All
// persistence happens outside this package.
type Snapshot struct {
	Version               int                                  `json:"version"`
	SolvedProblems        ProblemSet                           `json:"solvedProblems"`
	PendingProblems       []PendingProblem                     `json:"pendingProblems"`
	DailyRecommendations  []DailyRecommendation                `json:"dailyRecommendations"`
	CurrentLevel          Level                                `json:"currentLevel"`
	CurrentStreak         int                                  `json:"currentStreak"`
	TotalActiveDays       int                                  `json:"totalActiveDays"`
	LastActiveDate        string                               `json:"lastActiveDate,omitempty"`
	DifficultyProgression map[catalog.Difficulty]*TierProgress `json:"difficultyProgression"`
	TopicMastery          map[string]*TopicMastery             `json:"topicMastery"`
}

// EnsureDefaults makes all container fields usable on a zero or partially
// decoded snapshot. A missing snapshot is a fresh learner, never an error.
func (s *Snapshot) EnsureDefaults() {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	if s.SolvedProblems == nil {
		s.SolvedProblems = NewProblemSet()
	}
	if s.DifficultyProgression == nil {
		s.DifficultyProgression = make(map[catalog.Difficulty]*TierProgress)
	}
	for _, d := range catalog.AllDifficulties() {
		if s.DifficultyProgression[d] == nil {
			s.DifficultyProgression[d] = &TierProgress{}
		}
	}
	if s.TopicMastery == nil {
		s.TopicMastery = make(map[string]*TopicMastery)
	}
}

// RecommendationFor returns the log entry for a date, or nil.
func (s *Snapshot) RecommendationFor(date string) *DailyRecommendation {
	for i := range s.DailyRecommendations {
		if s.DailyRecommendations[i].Date == date {
			return &s.DailyRecommendations[i]
		}
	}
	return nil
}

// Pending returns the pending entry for a problem id, or nil.
func (s *Snapshot) Pending(problemID string) *PendingProblem {
	for i := range s.PendingProblems {
		if s.PendingProblems[i].ProblemID == problemID {
			return &s.PendingProblems[i]
		}
	}
	return nil
}

// RemovePending drops the pending entry for a problem id, preserving the
// order of the remaining entries. Reports whether an entry was removed.
func (s *Snapshot) RemovePending(problemID string) bool {
	for i := range s.PendingProblems {
		if s.PendingProblems[i].ProblemID == problemID {
			s.PendingProblems = append(s.PendingProblems[:i], s.PendingProblems[i+1:]...)
			return true
		}
	}
	return false
}

// DateKey formats a time as the calendar-day key used throughout the
// snapshot. Recommendations are keyed by the caller's local date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// PreviousDateKey returns the key for the day before the given key.
// Malformed keys yield an empty string.
func PreviousDateKey(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return ""
	}
	return DateKey(t.AddDate(0, 0, -1))
}
