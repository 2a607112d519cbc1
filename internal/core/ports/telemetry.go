package ports

import (
	"context"
	"io"

	"go.trai.ch/specred/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of the reduction as a tree of vertices.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded unit of work, such as resolving a master frame.
type Vertex interface {
	// Stdout returns a writer for progress output.
	Stdout() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished, successfully if err is nil.
	Complete(err error)
	// Cached marks the vertex as satisfied without recomputation.
	Cached()
}
