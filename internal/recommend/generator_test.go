package recommend

import (
	"reflect"
	"testing"
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
)

func freshSnapshot() *profile.Snapshot {
	s := &profile.Snapshot{
		CurrentLevel: profile.Level{Name: profile.LevelAbsoluteBeginner, Stage: 1, RequiredForNext: 20},
	}
	s.EnsureDefaults()
	return s
}

var day1 = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
var day2 = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func TestDaily_FreshLearnerSlowPace(t *testing.T) {
	g := NewGenerator(catalog.Seed())
	snap := freshSnapshot()

	rec := g.Daily(snap, day1, Preferences{})

	if rec.TotalTarget != 2 {
		t.Errorf("TotalTarget = %d, want 2", rec.TotalTarget)
	}
	if len(rec.CarryOverProblems) != 0 {
		t.Errorf("carry-over = %v, want none", rec.CarryOverProblems)
	}
	if len(rec.NewProblems) != 2 {
		t.Fatalf("new problems = %v, want 2", rec.NewProblems)
	}
	for _, id := range rec.NewProblems {
		p, ok := catalog.Seed().Get(id)
		if !ok {
			t.Fatalf("picked unknown problem %s", id)
		}
		if p.Difficulty != catalog.DifficultyEasy {
			t.Errorf("%s has difficulty %s, want Easy for a fresh learner", id, p.Difficulty)
		}
	}
	if rec.Status != profile.StatusPending || rec.Completed != 0 {
		t.Errorf("status = %s/%d, want pending/0", rec.Status, rec.Completed)
	}

	// Every assigned problem gets a fresh pending entry.
	for _, id := range rec.Problems {
		p := snap.Pending(id)
		if p == nil {
			t.Fatalf("problem %s has no pending entry", id)
		}
		if p.DaysCarriedOver != 0 || p.AssignedDate != "2026-08-30" {
			t.Errorf("pending %s = %+v", id, p)
		}
	}
}

func TestDaily_Idempotent(t *testing.T) {
	g := NewGenerator(catalog.Seed())
	snap := freshSnapshot()

	first := *g.Daily(snap, day1, Preferences{})
	second := *g.Daily(snap, day1, Preferences{})

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same-day calls differ:\n%+v\n%+v", first, second)
	}
	if len(snap.DailyRecommendations) != 1 {
		t.Errorf("log has %d entries, want 1", len(snap.DailyRecommendations))
	}
	for _, p := range snap.PendingProblems {
		if p.DaysCarriedOver != 0 {
			t.Errorf("re-read must not age pending entry %s", p.ProblemID)
		}
	}
}

func TestDaily_CarryOverAges(t *testing.T) {
	g := NewGenerator(catalog.Seed())
	snap := freshSnapshot()
	snap.PendingProblems = []profile.PendingProblem{
		{ProblemID: "two-sum", AssignedDate: "2026-08-28", DaysCarriedOver: 2, Priority: profile.PriorityMedium},
	}

	rec := g.Daily(snap, day2, Preferences{})

	if len(rec.CarryOverProblems) != 1 || rec.CarryOverProblems[0] != "two-sum" {
		t.Fatalf("carry-over = %v, want [two-sum]", rec.CarryOverProblems)
	}
	p := snap.Pending("two-sum")
	if p.DaysCarriedOver != 3 {
		t.Errorf("DaysCarriedOver = %d, want 3", p.DaysCarriedOver)
	}
	if p.Priority != profile.PriorityHigh {
		t.Errorf("Priority = %s, want high", p.Priority)
	}
	if rec.Problems[0] != "two-sum" {
		t.Errorf("carry-over should lead the problems list, got %v", rec.Problems)
	}
	if rec.TotalTarget != len(rec.Problems) {
		t.Errorf("TotalTarget %d != len(problems) %d", rec.TotalTarget, len(rec.Problems))
	}
}

func TestDaily_CarryOverNeverExceedsThree(t *testing.T) {
	g := NewGenerator(catalog.Seed())
	snap := freshSnapshot()
	for _, id := range []string{"two-sum", "valid-anagram", "binary-search", "climbing-stairs", "subsets"} {
		snap.PendingProblems = append(snap.PendingProblems, profile.PendingProblem{
			ProblemID: id, AssignedDate: "2026-08-25", DaysCarriedOver: 5,
		})
	}

	rec := g.Daily(snap, day1, Preferences{LearningPace: PaceFast})
	if len(rec.CarryOverProblems) > CarryOverLimit {
		t.Errorf("carry-over = %d, want at most %d", len(rec.CarryOverProblems), CarryOverLimit)
	}
}

func TestDaily_CatalogExhaustion(t *testing.T) {
	small := testCatalog(t,
		prob("only", "Arrays", catalog.DifficultyEasy),
	)
	g := NewGenerator(small)
	snap := freshSnapshot()

	rec := g.Daily(snap, day1, Preferences{LearningPace: PaceFast})
	if len(rec.Problems) != 1 {
		t.Fatalf("problems = %v, want the single available one", rec.Problems)
	}
	if rec.TotalTarget != 1 {
		t.Errorf("TotalTarget = %d, want 1 (matches what was assigned)", rec.TotalTarget)
	}
}

func TestTargetCount(t *testing.T) {
	tests := []struct {
		pace  Pace
		level string
		want  int
	}{
		{PaceSlow, profile.LevelAbsoluteBeginner, 2},
		{PaceSlow, profile.LevelBeginner, 2},
		{PaceSlow, profile.LevelExpert, 3},         // 2*1.5 = 3, cap 3
		{PaceMedium, profile.LevelBeginner, 4},
		{PaceMedium, profile.LevelIntermediate, 5}, // 4*1.2 = 4.8, rounds to 5
		{PaceMedium, profile.LevelExpert, 5},       // 6 capped at 5
		{PaceFast, profile.LevelAbsoluteBeginner, 6},
		{PaceFast, profile.LevelAdvanced, 8}, // 7.8 rounds to 8
		{PaceFast, profile.LevelExpert, 8},   // 9 capped at 8
	}
	for _, tt := range tests {
		if got := targetCount(tt.pace, tt.level); got != tt.want {
			t.Errorf("targetCount(%s, %s) = %d, want %d", tt.pace, tt.level, got, tt.want)
		}
	}
}

func TestTargetBounds(t *testing.T) {
	bounds := map[Pace][2]int{
		PaceSlow:   {2, 3},
		PaceMedium: {2, 5},
		PaceFast:   {2, 8},
	}
	levels := []string{
		profile.LevelAbsoluteBeginner, profile.LevelBeginner,
		profile.LevelIntermediate, profile.LevelAdvanced, profile.LevelExpert,
	}
	for pace, b := range bounds {
		for _, lvl := range levels {
			got := targetCount(pace, lvl)
			if got < b[0] || got > b[1] {
				t.Errorf("targetCount(%s, %s) = %d, outside [%d, %d]", pace, lvl, got, b[0], b[1])
			}
		}
	}
}
