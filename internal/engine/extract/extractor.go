package extract

import (
	"context"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"gonum.org/v1/gonum/mat"
)

// Extractor runs boxcar extraction and profile sampling with the extraction settings of a run.
type Extractor struct {
	log         ports.Logger
	countLimit  float64
	parallelism int
}

// NewExtractor creates an Extractor from the run settings.
func NewExtractor(log ports.Logger, settings *domain.Settings) *Extractor {
	return &Extractor{
		log:         log,
		countLimit:  settings.CountLimit,
		parallelism: settings.Parallelism,
	}
}

// Boxcar extracts the jobs concurrently, bounded by the configured parallelism.
func (e *Extractor) Boxcar(ctx context.Context, jobs []BoxcarInput) ([]*mat.Dense, error) {
	return RunBoxcar(ctx, e.log, jobs, e.parallelism)
}

// Profiles samples object profiles. An unset count limit takes the configured one.
func (e *Extractor) Profiles(in ProfileInput) ([]ProfileSamples, error) {
	if in.CountLimit == 0 {
		in.CountLimit = e.countLimit
	}
	return ObjectProfiles(e.log, in)
}
