package domain

import "slices"

// GroupRecord collects, for one setup group, the files used per frame type and the target
// names of its science and standard members.
type GroupRecord struct {
	Files  map[FrameType][]string
	SciObj []string
	StdObj []string
}

// NewGroupRecord creates an empty record with a file list for every reportable frame type.
func NewGroupRecord() *GroupRecord {
	g := &GroupRecord{Files: make(map[FrameType][]string)}
	for _, t := range FrameTypes {
		if t == FrameDark || t == FrameUnknown {
			continue
		}
		g.Files[t] = []string{}
	}
	return g
}

// AddFile appends filename to the list of type t unless it is already there.
// It reports whether the file was added.
func (g *GroupRecord) AddFile(t FrameType, filename string) bool {
	list, ok := g.Files[t]
	if !ok || slices.Contains(list, filename) {
		return false
	}
	g.Files[t] = append(list, filename)
	return true
}

// GroupRecords maps group keys to their records.
type GroupRecords map[string]*GroupRecord

// Get returns the record for key, creating it on first use.
func (g GroupRecords) Get(key string) *GroupRecord {
	rec, ok := g[key]
	if !ok {
		rec = NewGroupRecord()
		g[key] = rec
	}
	return rec
}
