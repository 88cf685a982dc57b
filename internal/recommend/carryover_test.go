package recommend

import (
	"testing"

	"github.com/codepace/codepace/internal/profile"
)

func pendingEntry(id string, days int) profile.PendingProblem {
	return profile.PendingProblem{ProblemID: id, DaysCarriedOver: days}
}

func TestSelectCarryOver_OldestFirstCapThree(t *testing.T) {
	pending := []profile.PendingProblem{
		pendingEntry("a", 1),
		pendingEntry("b", 4),
		pendingEntry("c", 0),
		pendingEntry("d", 2),
		pendingEntry("e", 4),
	}

	got := SelectCarryOver(pending, profile.NewProblemSet())
	if len(got) != CarryOverLimit {
		t.Fatalf("len = %d, want %d", len(got), CarryOverLimit)
	}
	// b and e tie on age; stable sort keeps insertion order.
	wantOrder := []string{"b", "e", "d"}
	for i, id := range wantOrder {
		if got[i].ProblemID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ProblemID, id)
		}
	}
}

func TestSelectCarryOver_ExcludesSolved(t *testing.T) {
	pending := []profile.PendingProblem{
		pendingEntry("a", 3),
		pendingEntry("b", 2),
	}
	got := SelectCarryOver(pending, profile.NewProblemSet("a"))
	if len(got) != 1 || got[0].ProblemID != "b" {
		t.Errorf("got %v, want just b", got)
	}
}

func TestSelectCarryOver_DerivesPriority(t *testing.T) {
	pending := []profile.PendingProblem{
		pendingEntry("high", 3),
		pendingEntry("medium", 1),
		pendingEntry("low", 0),
	}
	got := SelectCarryOver(pending, profile.NewProblemSet())

	byID := map[string]profile.Priority{}
	for _, p := range got {
		byID[p.ProblemID] = p.Priority
	}
	if byID["high"] != profile.PriorityHigh {
		t.Errorf("high = %s", byID["high"])
	}
	if byID["medium"] != profile.PriorityMedium {
		t.Errorf("medium = %s", byID["medium"])
	}
	if byID["low"] != profile.PriorityLow {
		t.Errorf("low = %s", byID["low"])
	}
}

func TestSelectCarryOver_Empty(t *testing.T) {
	if got := SelectCarryOver(nil, profile.NewProblemSet()); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
