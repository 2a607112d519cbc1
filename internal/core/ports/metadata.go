package ports

import "go.trai.ch/specred/internal/core/domain"

// MetadataLoader supplies the raw frame table, one entry per raw exposure in ordinal order.
//
//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataLoader interface {
	// Load reads the frame table at path.
	Load(path string) ([]domain.Frame, error)
}
