package profile

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes a snapshot to its wire form. Set containers serialize as
// sorted lists, so encoding the same snapshot twice yields identical bytes.
func Marshal(s *Snapshot) ([]byte, error) {
	s.EnsureDefaults()
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a snapshot from its wire form and fills in defaults for
// any missing containers. Empty input yields a fresh all-zero snapshot.
func Unmarshal(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot: %w", err)
		}
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", s.Version, SnapshotVersion)
	}
	s.EnsureDefaults()
	return s, nil
}
