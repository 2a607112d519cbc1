package masters

import "go.trai.ch/specred/internal/core/domain"

// PlanEntry tells, for one master slot, where its frame comes from.
type PlanEntry struct {
	Exposure int
	Kind     domain.MasterKind
	Detector int
	// Source and SourceKind name the slot whose master is computed and then shared into this one.
	Source     int
	SourceKind domain.MasterKind
	// Empty marks slots whose requirement set matched no frames.
	Empty bool
}

// Shared reports whether the slot reuses a master computed for another slot.
func (p PlanEntry) Shared() bool {
	return !p.Empty && (p.Source != p.Exposure || p.SourceKind != p.Kind)
}

type slot struct {
	exposure int
	kind     domain.MasterKind
}

// Plan walks the exposures in reduction order and reports, without touching pixel data,
// which slots are computed and which receive a shared master.
func Plan(exposures []*domain.ScienceExposure, det int) []PlanEntry {
	assigned := make(map[slot]slot)
	var out []PlanEntry

	for i, e := range exposures {
		for _, kind := range domain.MasterKinds {
			here := slot{exposure: i, kind: kind}
			entry := PlanEntry{Exposure: i, Kind: kind, Detector: det, Source: i, SourceKind: kind}

			req := e.Requirement(kind.Requirement())
			if len(req) == 0 {
				entry.Empty = true
				out = append(out, entry)
				continue
			}

			if src, ok := assigned[here]; ok {
				entry.Source, entry.SourceKind = src.exposure, src.kind
				out = append(out, entry)
				continue
			}
			assigned[here] = here
			out = append(out, entry)

			for j := i + 1; j < len(exposures); j++ {
				planOffer(assigned, exposures[j], slot{exposure: j, kind: kind}, req, here)
			}
			if kind.Type == domain.CalibFlat {
				for j := i; j < len(exposures); j++ {
					planOffer(assigned, exposures[j], slot{exposure: j, kind: kind.OtherFlat()}, req, here)
				}
			}
		}
	}
	return out
}

func planOffer(assigned map[slot]slot, e *domain.ScienceExposure, s slot, req domain.RequirementSet, src slot) {
	if _, ok := assigned[s]; ok || !e.Requirement(s.kind.Requirement()).Equal(req) {
		return
	}
	assigned[s] = src
}
