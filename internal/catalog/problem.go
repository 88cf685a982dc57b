package catalog

import "fmt"

// Difficulty represents a problem difficulty tier.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyHard     Difficulty = "Hard"
	DifficultyVeryHard Difficulty = "VeryHard"
)

// AllDifficulties returns the difficulty tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Problem is a single practice problem record.
type Problem struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Category            string     `json:"category"`
	Difficulty          Difficulty `json:"difficulty"`
	Companies           []string   `json:"companies,omitempty"`
	Link                string     `json:"link,omitempty"`
	TimeEstimateMinutes int        `json:"timeEstimateMinutes,omitempty"`
}

// Catalog is an immutable, ordered collection of problems with id lookup.
type Catalog struct {
	problems []Problem
	byID     map[string]*Problem
}

// New builds a catalog from an ordered problem list.
// Returns an error on duplicate ids or invalid difficulty tiers.
func New(problems []Problem) (*Catalog, error) {
	c := &Catalog{
		problems: make([]Problem, len(problems)),
		byID:     make(map[string]*Problem, len(problems)),
	}
	copy(c.problems, problems)
	for i := range c.problems {
		p := &c.problems[i]
		if p.ID == "" {
			return nil, fmt.Errorf("problem %d: empty id", i)
		}
		if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
			return nil, fmt.Errorf("problem %q: %w", p.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate problem id %q", p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// Get returns the problem with the given id, or false if unknown.
func (c *Catalog) Get(id string) (Problem, bool) {
	p, ok := c.byID[id]
	if !ok {
		return Problem{}, false
	}
	return *p, true
}

// Problems returns all problems in catalog order.
func (c *Catalog) Problems() []Problem {
	out := make([]Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

// Len returns the number of problems in the catalog.
func (c *Catalog) Len() int {
	return len(c.problems)
}

// CategoryTotal returns the number of catalog problems in a category.
func (c *Catalog) CategoryTotal(category string) int {
	n := 0
	for i := range c.problems {
		if c.problems[i].Category == category {
			n++
		}
	}
	return n
}

// DifficultyTotal returns the number of catalog problems in a tier.
func (c *Catalog) DifficultyTotal(d Difficulty) int {
	n := 0
	for i := range c.problems {
		if c.problems[i].Difficulty == d {
			n++
		}
	}
	return n
}
