// Package masters shares computed master frames between science exposures whose calibration
// requirement sets are identical.
package masters

import (
	"fmt"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
)

// UpdateMasters copies the master of the given type held by exposures[current] into every later
// exposure that needs the exact same requirement set and has no master yet. A flat is also offered
// to the other flat subtype of every exposure from current on, retagged, when that subtype was
// built from the same frames.
func UpdateMasters(
	log ports.Logger,
	exposures []*domain.ScienceExposure,
	current, det int,
	calibType domain.CalibType,
	subtype string,
) error {
	kind, err := domain.ParseMasterKind(calibType, subtype)
	if err != nil {
		log.Error(err)
		return err
	}
	if current < 0 || current >= len(exposures) {
		return zerr.With(domain.ErrMasterMissing, "exposure", current)
	}

	origin := exposures[current]
	master, ok := origin.Master(kind, det)
	if !ok {
		return zerr.With(zerr.With(domain.ErrMasterMissing, "kind", kind.String()), "exposure", current)
	}
	req := origin.Requirement(kind.Requirement())

	shared := 0
	for i := current + 1; i < len(exposures); i++ {
		ok, err := offer(exposures[i], master, kind, det, req)
		if err != nil {
			return err
		}
		if ok {
			shared++
		}
	}

	if kind.Type == domain.CalibFlat {
		other := kind.OtherFlat()
		for i := current; i < len(exposures); i++ {
			ok, err := offer(exposures[i], master, other, det, req)
			if err != nil {
				return err
			}
			if ok {
				shared++
			}
		}
	}

	if shared > 0 {
		log.Info(fmt.Sprintf("master %s of exposure %d shared with %d slot(s)", kind, current, shared))
	}
	return nil
}

// offer stores master in the kind slot of e when that slot is empty and fed by the same frames.
func offer(e *domain.ScienceExposure, master *domain.MasterFrame, kind domain.MasterKind, det int, req domain.RequirementSet) (bool, error) {
	if e.HasMaster(kind, det) || !e.Requirement(kind.Requirement()).Equal(req) {
		return false, nil
	}
	if err := e.SetMaster(master, kind, det); err != nil {
		return false, err
	}
	return true, nil
}
