package ports

import (
	"context"

	"go.trai.ch/specred/internal/core/domain"
	"gonum.org/v1/gonum/mat"
)

// MasterStore defines the interface for storing and retrieving computed master frames.
//
//go:generate mockgen -source=master_store.go -destination=mocks/mock_master_store.go -package=mocks
type MasterStore interface {
	// Get retrieves the master frame stored under key.
	// Returns nil, nil if not found.
	Get(key domain.MasterKey) (*domain.MasterFrame, error)

	// Put stores the master frame.
	Put(frame *domain.MasterFrame) error
}

// MasterBuilder computes a master frame from the raw frames of a requirement set.
type MasterBuilder interface {
	// Build combines the raw frames of the request, read from pixelDir, into the pixel data of a master.
	Build(ctx context.Context, pixelDir string, idx *domain.FrameIndex, req domain.MasterRequest) (*mat.Dense, error)
}

// PixelReader loads raw detector pixels.
type PixelReader interface {
	// Read returns the pixel array of detector det stored for the raw file at path.
	Read(path string, det int) (*mat.Dense, error)
}
