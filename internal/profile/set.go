package profile

import (
	"encoding/json"
	"sort"
)

// ProblemSet is a uniqueness-enforcing set of problem ids with O(1)
// membership checks. Order carries no meaning in memory; the wire form is a
// sorted list so round-trips are deterministic.
type ProblemSet map[string]struct{}

// NewProblemSet builds a set from the given ids.
func NewProblemSet(ids ...string) ProblemSet {
	s := make(ProblemSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an id into the set.
func (s ProblemSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether the id is in the set.
func (s ProblemSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s ProblemSet) Len() int {
	return len(s)
}

// IDs returns the ids in sorted order.
func (s ProblemSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the set as a sorted JSON list.
func (s ProblemSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes a JSON list into the set, dropping duplicates.
func (s *ProblemSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewProblemSet(ids...)
	return nil
}
