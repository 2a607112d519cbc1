package domain

import (
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

// Scitrace holds, for one exposure and detector, the traced object centres and the per-object
// pixel weights of the object aperture and the background annulus.
type Scitrace struct {
	// Traces is rows x objects: the spatial centre of each object on each row.
	Traces *mat.Dense
	// Object[o] is the aperture weight image of object o.
	Object []*mat.Dense
	// Background[o] is the background annulus weight image of object o.
	Background []*mat.Dense
}

// NObj returns the number of traced objects.
func (s *Scitrace) NObj() int {
	if s.Traces == nil {
		return 0
	}
	_, n := s.Traces.Dims()
	return n
}

// Trace returns a copy of the centre column of object o.
func (s *Scitrace) Trace(o int) []float64 {
	return mat.Col(nil, o, s.Traces)
}

// Validate checks that every weight image matches the detector shape and that one image pair
// exists per traced object.
func (s *Scitrace) Validate(rows, cols int) error {
	nobj := s.NObj()
	if len(s.Object) != nobj || len(s.Background) != nobj {
		return zerr.With(zerr.With(ErrShapeMismatch, "objects", nobj), "weight_images", len(s.Object))
	}
	if nobj > 0 {
		if r, _ := s.Traces.Dims(); r != rows {
			return zerr.With(ErrShapeMismatch, "trace_rows", r)
		}
	}
	for o := range nobj {
		for _, img := range []*mat.Dense{s.Object[o], s.Background[o]} {
			if img == nil {
				return zerr.With(ErrShapeMismatch, "object", o)
			}
			if r, c := img.Dims(); r != rows || c != cols {
				return zerr.With(zerr.With(ErrShapeMismatch, "object", o), "shape", [2]int{r, c})
			}
		}
	}
	return nil
}
