package ports

import "go.trai.ch/specred/internal/core/domain"

// Hasher defines the interface for computing stable digests of instrument configurations and calibration inputs.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Signature computes the setup signature of a detector configuration.
	Signature(cfg domain.DetectorConfig) string

	// Fingerprint computes an order-independent digest of the raw frames of a requirement set,
	// covering their names and the content of their pixel files under pixelDir.
	Fingerprint(pixelDir string, idx *domain.FrameIndex, set domain.RequirementSet) (string, error)
}
