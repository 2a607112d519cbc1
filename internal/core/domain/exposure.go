package domain

import "go.trai.ch/zerr"

type masterSlot struct {
	kind MasterKind
	det  int
}

// ScienceExposure is the reduction context of one science frame. Requirement sets are fixed at
// construction; each master slot is written once and read many times.
type ScienceExposure struct {
	// Ordinal is the position of the exposure in the reduction order.
	Ordinal int
	// ScienceIndex is the raw frame index of the science frame.
	ScienceIndex int
	Target       string
	SetupID      string
	GroupKey     string
	NDet         int

	requirements CalibrationMatch
	masters      map[masterSlot]*MasterFrame
}

// NewScienceExposure creates an exposure with copies of the given requirement sets.
func NewScienceExposure(ordinal, scienceIndex, ndet int, reqs CalibrationMatch) *ScienceExposure {
	own := make(CalibrationMatch, len(reqs))
	for k, set := range reqs {
		own[k] = NewRequirementSet(set...)
	}
	return &ScienceExposure{
		Ordinal:      ordinal,
		ScienceIndex: scienceIndex,
		NDet:         ndet,
		requirements: own,
		masters:      make(map[masterSlot]*MasterFrame),
	}
}

// Requirement returns the requirement set for a kind. Missing kinds yield an empty set.
func (e *ScienceExposure) Requirement(kind RequirementKind) RequirementSet {
	return NewRequirementSet(e.requirements[kind]...)
}

// HasMaster reports whether the slot holds a master, without copying it.
func (e *ScienceExposure) HasMaster(kind MasterKind, det int) bool {
	_, ok := e.masters[masterSlot{kind: kind, det: det}]
	return ok
}

// Master returns a copy of the master frame held in a slot.
func (e *ScienceExposure) Master(kind MasterKind, det int) (*MasterFrame, bool) {
	m, ok := e.masters[masterSlot{kind: kind, det: det}]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// SetMaster stores a copy of m, tagged as kind, in the slot for kind and det.
// An occupied slot is never overwritten.
func (e *ScienceExposure) SetMaster(m *MasterFrame, kind MasterKind, det int) error {
	slot := masterSlot{kind: kind, det: det}
	if _, ok := e.masters[slot]; ok {
		return zerr.With(zerr.With(ErrMasterSlotOccupied, "kind", kind.String()), "exposure", e.Ordinal)
	}
	e.masters[slot] = m.Retag(kind)
	return nil
}
