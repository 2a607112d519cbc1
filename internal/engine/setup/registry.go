// Package setup assigns instrument setup ids to science exposures and checks them against a
// previously written setup file.
package setup

import (
	"fmt"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry resolves detector configurations to setup ids.
type Registry struct {
	hasher ports.Hasher
}

// NewRegistry creates a Registry.
func NewRegistry(hasher ports.Hasher) *Registry {
	return &Registry{hasher: hasher}
}

// InstrSetup returns the setup id of detector det of frame i. A signature already in working keeps
// its id; one known from prior is copied into working with the prior id; anything else is
// registered under the next free id.
func (r *Registry) InstrSetup(idx *domain.FrameIndex, det, i int, working, prior domain.SetupDict) (string, error) {
	f := idx.Frame(i)
	cfg, ok := f.Detector(det)
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrMissingMetadata, "file", f.Filename.String()), "detector", det)
	}
	if cfg.Detector == 0 {
		cfg.Detector = det
	}

	sig := r.hasher.Signature(cfg)
	if e, ok := working.Lookup(sig); ok {
		return e.ID, nil
	}
	if e, ok := prior.Lookup(sig); ok {
		working[sig] = e
		return e.ID, nil
	}

	e := domain.SetupEntry{ID: working.NextID(prior), Detector: det, Config: cfg}
	working[sig] = e
	return e.ID, nil
}

// GroupIDs returns the setup ids of every detector of frame i, in detector order.
func (r *Registry) GroupIDs(idx *domain.FrameIndex, ndet, i int, working, prior domain.SetupDict) ([]string, error) {
	ids := make([]string, 0, ndet)
	for det := 1; det <= ndet; det++ {
		id, err := r.InstrSetup(idx, det, i, working, prior)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Compare checks that every setup computed in this run is recorded identically in the prior dict.
func Compare(working, prior domain.SetupDict) error {
	for sig, e := range working {
		p, ok := prior.Lookup(sig)
		if !ok {
			return zerr.With(zerr.With(domain.ErrSetupMismatch, "setup", e.ID), "detector", e.Detector)
		}
		if p.ID != e.ID || p.Detector != e.Detector {
			return zerr.With(domain.ErrSetupMismatch, "setup", fmt.Sprintf("%s != %s", e.ID, p.ID))
		}
	}
	return nil
}
