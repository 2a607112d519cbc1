// Package extract performs boxcar extraction of traced objects and samples their spatial profiles.
package extract

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

// BoxcarInput holds the detector images of one exposure and detector. BadPix and CRMask may be nil.
type BoxcarInput struct {
	Detector int
	SpecObjs []*domain.SpecObj
	Science  *mat.Dense
	Variance *mat.Dense
	Sky      *mat.Dense
	// Wave is the wavelength image in Angstrom.
	Wave   *mat.Dense
	BadPix *mat.Dense
	CRMask *mat.Dense
	Trace  *domain.Scitrace
}

// Boxcar extracts every traced object of in and stores the result on its SpecObj. It returns the
// fitted background image, set wherever an object or background aperture has weight.
func Boxcar(log ports.Logger, in BoxcarInput) (*mat.Dense, error) {
	rows, cols, err := in.validate()
	if err != nil {
		return nil, err
	}

	nobj := in.Trace.NObj()
	if len(in.SpecObjs) < nobj {
		return nil, zerr.With(zerr.With(domain.ErrTraceMismatch, "objects", nobj), "specobjs", len(in.SpecObjs))
	}
	for o := range nobj {
		if !in.SpecObjs[o].CheckTrace(in.Trace.Trace(o)) {
			return nil, zerr.With(zerr.With(domain.ErrTraceMismatch, "object", in.SpecObjs[o].ID), "detector", in.Detector)
		}
	}

	bgcorr := mat.NewDense(rows, cols, nil)
	zeros := make([]float64, cols)
	keep := make([]float64, cols)
	bgw := make([]float64, cols)
	resid := make([]float64, cols)

	for o := range nobj {
		res := &domain.BoxcarResult{
			Wave:   make([]float64, rows),
			Counts: make([]float64, rows),
			Var:    make([]float64, rows),
			Sky:    make([]float64, rows),
			Mask:   make([]domain.MaskFlag, rows),
		}
		nanRows := 0

		for r := range rows {
			sci := in.Science.RawRowView(r)
			objw := in.Trace.Object[o].RawRowView(r)
			bgRow := in.Trace.Background[o].RawRowView(r)
			cr := rowOrZeros(in.CRMask, r, zeros)
			bad := rowOrZeros(in.BadPix, r, zeros)

			for c := range keep {
				keep[c] = 1 - cr[c]
			}
			vecmath.MulBlock(bgw, bgRow, keep)
			bg := fitBackground(sci, bgw)

			for c := range resid {
				resid[c] = sci[c] - bg[c]
			}
			sumw := vecmath.Sum(objw)

			res.Counts[r] = vecmath.DotProduct(resid, objw)
			res.Var[r] = vecmath.DotProduct(in.Variance.RawRowView(r), objw)
			res.Wave[r] = vecmath.DotProduct(in.Wave.RawRowView(r), objw) / sumw
			res.Sky[r] = vecmath.DotProduct(in.Sky.RawRowView(r), objw) / sumw

			if vecmath.DotProduct(bad, objw) > 0 {
				res.Mask[r] |= domain.MaskBadPix
			}
			if vecmath.DotProduct(cr, objw) > 0 {
				res.Mask[r] |= domain.MaskCR
			}
			if math.IsNaN(res.Counts[r]) || math.IsNaN(res.Var[r]) || math.IsNaN(res.Sky[r]) || math.IsNaN(res.Wave[r]) {
				res.Mask[r] |= domain.MaskNaN
				res.Counts[r], res.Var[r], res.Sky[r] = 0, 0, 0
				nanRows++
			}

			for c := range cols {
				if objw[c]+bgRow[c] > 0 {
					bgcorr.Set(r, c, bg[c])
				}
			}
		}

		if nanRows > 0 {
			log.Warn(fmt.Sprintf("object %s: %d row(s) with NaN flux masked", in.SpecObjs[o].ID, nanRows))
		}
		if err := in.SpecObjs[o].FillBoxcar(res); err != nil {
			return nil, err
		}
	}

	return bgcorr, nil
}

func (in BoxcarInput) validate() (rows, cols int, err error) {
	if in.Science == nil || in.Trace == nil {
		return 0, 0, zerr.With(domain.ErrShapeMismatch, "detector", in.Detector)
	}
	rows, cols = in.Science.Dims()

	images := map[string]*mat.Dense{
		"variance": in.Variance,
		"sky":      in.Sky,
		"wave":     in.Wave,
		"badpix":   in.BadPix,
		"crmask":   in.CRMask,
	}
	for name, img := range images {
		if img == nil {
			if name == "badpix" || name == "crmask" {
				continue
			}
			return 0, 0, zerr.With(domain.ErrShapeMismatch, "missing", name)
		}
		if r, c := img.Dims(); r != rows || c != cols {
			return 0, 0, zerr.With(zerr.With(domain.ErrShapeMismatch, "image", name), "shape", [2]int{r, c})
		}
	}
	if err := in.Trace.Validate(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

func rowOrZeros(m *mat.Dense, r int, zeros []float64) []float64 {
	if m == nil {
		return zeros
	}
	return m.RawRowView(r)
}
