package recommend

import (
	"reflect"
	"testing"

	"github.com/codepace/codepace/internal/catalog"
)

func boolPtr(b bool) *bool { return &b }

func TestEligibleDifficulties_Adaptive(t *testing.T) {
	tests := []struct {
		solved int
		want   []catalog.Difficulty
	}{
		{0, []catalog.Difficulty{catalog.DifficultyEasy}},
		{9, []catalog.Difficulty{catalog.DifficultyEasy}},
		{10, []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium}},
		{29, []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium}},
		{30, []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard}},
		{59, []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard}},
		{60, []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard, catalog.DifficultyVeryHard}},
		{99, []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard, catalog.DifficultyVeryHard}},
		{100, []catalog.Difficulty{catalog.DifficultyHard, catalog.DifficultyVeryHard}},
		{500, []catalog.Difficulty{catalog.DifficultyHard, catalog.DifficultyVeryHard}},
	}
	for _, tt := range tests {
		got := EligibleDifficulties(tt.solved, Preferences{})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("solved=%d: got %v, want %v", tt.solved, got, tt.want)
		}
	}
}

func TestEligibleDifficulties_ExplicitPreferences(t *testing.T) {
	prefs := Preferences{
		AdaptiveDifficulty:    boolPtr(false),
		DifficultyPreferences: []catalog.Difficulty{catalog.DifficultyVeryHard},
	}
	got := EligibleDifficulties(0, prefs)
	want := []catalog.Difficulty{catalog.DifficultyVeryHard}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEligibleDifficulties_CoarseFallback(t *testing.T) {
	prefs := Preferences{AdaptiveDifficulty: boolPtr(false)}

	tests := []struct {
		solved int
		want   []catalog.Difficulty
	}{
		{5, []catalog.Difficulty{catalog.DifficultyEasy}},
		{15, []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium}},
		{75, []catalog.Difficulty{catalog.DifficultyMedium, catalog.DifficultyHard}},
	}
	for _, tt := range tests {
		got := EligibleDifficulties(tt.solved, prefs)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("solved=%d: got %v, want %v", tt.solved, got, tt.want)
		}
	}
}
