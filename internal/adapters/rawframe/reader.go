// Package rawframe reads raw detector pixels and stacks them into master frames.
package rawframe

import (
	"encoding/json"
	"os"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

var _ ports.PixelReader = (*Reader)(nil)

// PixelFile represents the structure of a raw pixel file.
type PixelFile struct {
	Detectors []DetectorDTO `json:"detectors"`
}

// DetectorDTO holds the row-major pixels of one detector.
type DetectorDTO struct {
	Detector int       `json:"detector"`
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Data     []float64 `json:"data"`
}

// Reader implements ports.PixelReader for JSON pixel files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the pixels of detector det in the pixel file at path.
func (r *Reader) Read(path string, det int) (*mat.Dense, error) {
	// #nosec G304 -- path is built from the frame table
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPixelReadFailed.Error()), "path", path)
	}

	var file PixelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPixelReadFailed.Error()), "path", path)
	}

	for i, d := range file.Detectors {
		num := d.Detector
		if num == 0 {
			num = i + 1
		}
		if num != det {
			continue
		}
		if d.Rows <= 0 || d.Cols <= 0 || len(d.Data) != d.Rows*d.Cols {
			err := zerr.With(zerr.Wrap(domain.ErrShapeMismatch, domain.ErrPixelReadFailed.Error()), "path", path)
			return nil, zerr.With(err, "detector", det)
		}
		return mat.NewDense(d.Rows, d.Cols, d.Data), nil
	}

	return nil, zerr.With(zerr.With(domain.ErrPixelReadFailed, "path", path), "detector", det)
}
