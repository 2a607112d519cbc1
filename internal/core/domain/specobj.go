package domain

import (
	"math"
	"slices"

	"go.trai.ch/zerr"
)

// MaskFlag is a per-row quality bit of an extracted spectrum.
type MaskFlag uint8

// Quality mask bits raised by extraction.
const (
	// MaskBadPix is set when an aperture pixel is a bad detector pixel.
	MaskBadPix MaskFlag = 1 << 0
	// MaskCR is set when an aperture pixel is flagged as a cosmic ray hit.
	MaskCR MaskFlag = 1 << 1
	// MaskNaN is set when the summed flux came out NaN.
	MaskNaN MaskFlag = 1 << 5
)

// traceTolerance is the largest per-row difference, in pixels, accepted by CheckTrace.
const traceTolerance = 1e-6

// BoxcarResult holds the boxcar extraction of one object, one entry per detector row.
type BoxcarResult struct {
	// Wave is the weight-averaged wavelength in Angstrom.
	Wave   []float64
	Counts []float64
	Var    []float64
	// Sky is the weight-averaged sky level per pixel.
	Sky  []float64
	Mask []MaskFlag
}

// SpecObj is one traced object on one detector of one exposure.
type SpecObj struct {
	ID       string
	Detector int
	// Trace is the expected spatial centre of the aperture for every row.
	Trace  []float64
	boxcar *BoxcarResult
}

// NewSpecObj creates an object with a copy of its expected trace.
func NewSpecObj(id string, det int, trace []float64) *SpecObj {
	return &SpecObj{ID: id, Detector: det, Trace: slices.Clone(trace)}
}

// CheckTrace reports whether trace matches the expected trace of the object.
func (s *SpecObj) CheckTrace(trace []float64) bool {
	if len(trace) != len(s.Trace) {
		return false
	}
	for i := range trace {
		if math.Abs(trace[i]-s.Trace[i]) > traceTolerance {
			return false
		}
	}
	return true
}

// Boxcar returns the boxcar result, or nil before extraction.
func (s *SpecObj) Boxcar() *BoxcarResult {
	return s.boxcar
}

// FillBoxcar stores the boxcar result. It may only be called once per object.
func (s *SpecObj) FillBoxcar(res *BoxcarResult) error {
	if s.boxcar != nil {
		return zerr.With(ErrBoxcarFilled, "object", s.ID)
	}
	s.boxcar = res
	return nil
}

// ReplaceNaNBins overwrites counts and variance of rows whose mask carries MaskNaN.
// Rows without the flag are left untouched; the number of replaced rows is returned.
func (s *SpecObj) ReplaceNaNBins(counts, variance []float64) int {
	if s.boxcar == nil {
		return 0
	}
	n := 0
	for row, m := range s.boxcar.Mask {
		if m&MaskNaN == 0 || row >= len(counts) || row >= len(variance) {
			continue
		}
		s.boxcar.Counts[row] = counts[row]
		s.boxcar.Var[row] = variance[row]
		n++
	}
	return n
}
