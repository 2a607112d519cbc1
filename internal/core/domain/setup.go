package domain

import (
	"fmt"
	"maps"
	"strings"
)

// SetupEntry is one registered detector setup.
type SetupEntry struct {
	ID       string         `yaml:"id"`
	Detector int            `yaml:"detector"`
	Config   DetectorConfig `yaml:"config"`
}

// SetupDict maps setup signatures to their registered entries.
// Within a run it only ever grows.
type SetupDict map[string]SetupEntry

// Lookup returns the entry registered for a signature.
func (d SetupDict) Lookup(signature string) (SetupEntry, bool) {
	e, ok := d[signature]
	return e, ok
}

// Clone returns a shallow copy of the dict.
func (d SetupDict) Clone() SetupDict {
	if d == nil {
		return SetupDict{}
	}
	return maps.Clone(d)
}

// NextID returns the smallest two-digit id not used by d or any of the others.
func (d SetupDict) NextID(others ...SetupDict) string {
	used := make(map[string]struct{})
	for _, dict := range append([]SetupDict{d}, others...) {
		for _, e := range dict {
			used[e.ID] = struct{}{}
		}
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("%02d", n)
		if _, ok := used[id]; !ok {
			return id
		}
	}
}

// GroupKey joins per-detector setup ids with underscores.
func GroupKey(ids []string) string {
	return strings.Join(ids, "_")
}
