package progress

import "github.com/codepace/codepace/internal/profile"

// levelDef is one stage of the five-level progression. RequiredForNext is a
// cumulative solve-count threshold; the final stage is terminal.
type levelDef struct {
	Name            string
	Stage           int
	RequiredForNext int
	SkillAreas      []string
	CurrentFocus    []string
}

// The canonical level table. The thresholds here are the single source of
// truth for stage transitions.
var levels = []levelDef{
	{
		Name:            profile.LevelAbsoluteBeginner,
		Stage:           1,
		RequiredForNext: 20,
		SkillAreas:      []string{"Arrays", "Strings"},
		CurrentFocus:    []string{"Basic iteration", "Two pointers"},
	},
	{
		Name:            profile.LevelBeginner,
		Stage:           2,
		RequiredForNext: 50,
		SkillAreas:      []string{"Arrays", "Strings", "Linked Lists", "Stacks"},
		CurrentFocus:    []string{"Hash maps", "Stack patterns", "List manipulation"},
	},
	{
		Name:            profile.LevelIntermediate,
		Stage:           3,
		RequiredForNext: 120,
		SkillAreas:      []string{"Trees", "Binary Search", "Dynamic Programming"},
		CurrentFocus:    []string{"Tree traversal", "Memoization", "Search-space pruning"},
	},
	{
		Name:            profile.LevelAdvanced,
		Stage:           4,
		RequiredForNext: 250,
		SkillAreas:      []string{"Graphs", "Heaps", "Backtracking"},
		CurrentFocus:    []string{"Graph traversal", "Priority queues", "State-space search"},
	},
	{
		Name:            profile.LevelExpert,
		Stage:           5,
		RequiredForNext: 500,
		SkillAreas:      []string{"Dynamic Programming", "Graphs", "Heaps", "Backtracking"},
		CurrentFocus:    []string{"Hard optimization problems", "Combined techniques"},
	},
}

func levelAt(stage int) levelDef {
	for _, l := range levels {
		if l.Stage == stage {
			return l
		}
	}
	return levels[0]
}

// maxStage is the terminal stage; no transition is modeled beyond it.
const maxStage = 5

func newLevel(def levelDef, problemsSolved int) profile.Level {
	return profile.Level{
		Name:            def.Name,
		Stage:           def.Stage,
		ProblemsSolved:  problemsSolved,
		RequiredForNext: def.RequiredForNext,
		SkillAreas:      append([]string(nil), def.SkillAreas...),
		CurrentFocus:    append([]string(nil), def.CurrentFocus...),
	}
}

// InitialLevel returns the level a fresh learner starts at.
func InitialLevel() profile.Level {
	return newLevel(levels[0], 0)
}

// NewSnapshot creates a fresh learner snapshot with all-zero defaults.
func NewSnapshot() *profile.Snapshot {
	s := &profile.Snapshot{
		Version:      profile.SnapshotVersion,
		CurrentLevel: InitialLevel(),
	}
	s.EnsureDefaults()
	return s
}
