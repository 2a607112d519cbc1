package extract

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

// Row thresholds for spatial profile fitting.
const (
	fullProfileRows    = 50
	minimumProfileRows = 10
)

// ProfileMode is the sampling used for a spatial profile.
type ProfileMode int

const (
	// ProfileUnavailable means too few rows had enough counts.
	ProfileUnavailable ProfileMode = iota
	// ProfileReduced bins samples by integer offset from the trace.
	ProfileReduced
	// ProfileFull keeps every aperture pixel of every good row.
	ProfileFull
)

func (m ProfileMode) String() string {
	switch m {
	case ProfileFull:
		return "full"
	case ProfileReduced:
		return "reduced"
	default:
		return "unavailable"
	}
}

// ProfileInput holds the images used to sample object profiles. CRMask may be nil.
type ProfileInput struct {
	Detector int
	SpecObjs []*domain.SpecObj
	Science  *mat.Dense
	Variance *mat.Dense
	CRMask   *mat.Dense
	Trace    *domain.Scitrace
	// CountLimit is the boxcar count a row must exceed to enter the profile.
	// Zero means domain.DefaultCountLimit.
	CountLimit float64
}

// ProfileSample is one flux-normalized pixel at spatial offset X from the trace.
type ProfileSample struct {
	X   float64
	Y   float64
	Var float64
}

// ProfileSamples is the sampled spatial profile of one object.
type ProfileSamples struct {
	Object   string
	Mode     ProfileMode
	GoodRows []int
	Samples  []ProfileSample
	// Err is set when the profile of this object could not be sampled.
	Err error
}

// ObjectProfiles samples the spatial profile of every boxcar-extracted object. Objects with too
// few good rows carry domain.ErrProfileUnavailable in their result and do not stop the others.
func ObjectProfiles(log ports.Logger, in ProfileInput) ([]ProfileSamples, error) {
	if in.Science == nil || in.Variance == nil || in.Trace == nil {
		return nil, zerr.With(domain.ErrShapeMismatch, "detector", in.Detector)
	}
	rows, cols := in.Science.Dims()
	if r, c := in.Variance.Dims(); r != rows || c != cols {
		return nil, zerr.With(zerr.With(domain.ErrShapeMismatch, "image", "variance"), "shape", [2]int{r, c})
	}
	if err := in.Trace.Validate(rows, cols); err != nil {
		return nil, err
	}
	if len(in.SpecObjs) < in.Trace.NObj() {
		return nil, zerr.With(domain.ErrTraceMismatch, "specobjs", len(in.SpecObjs))
	}
	if in.CountLimit == 0 {
		in.CountLimit = domain.DefaultCountLimit
	}

	out := make([]ProfileSamples, in.Trace.NObj())
	for o := range out {
		so := in.SpecObjs[o]
		out[o] = in.sample(o, so)
		if out[o].Err != nil {
			log.Warn(fmt.Sprintf("object %s: %s", so.ID, out[o].Err))
			continue
		}
		log.Info(fmt.Sprintf("object %s: %s profile from %d rows", so.ID, out[o].Mode, len(out[o].GoodRows)))
	}
	return out, nil
}

func (in ProfileInput) sample(o int, so *domain.SpecObj) ProfileSamples {
	res := ProfileSamples{Object: so.ID}
	box := so.Boxcar()
	if box == nil {
		res.Err = zerr.With(zerr.With(domain.ErrProfileUnavailable, "object", so.ID), "reason", "not extracted")
		return res
	}

	for r, counts := range box.Counts {
		if counts > in.CountLimit && box.Mask[r]&domain.MaskNaN == 0 {
			res.GoodRows = append(res.GoodRows, r)
		}
	}

	switch n := len(res.GoodRows); {
	case n > fullProfileRows:
		res.Mode = ProfileFull
	case n >= minimumProfileRows:
		res.Mode = ProfileReduced
	default:
		res.Err = zerr.With(zerr.With(domain.ErrProfileUnavailable, "object", so.ID), "good_rows", n)
		return res
	}

	trace := in.Trace.Trace(o)
	weights := in.Trace.Object[o]
	_, cols := in.Science.Dims()
	for _, r := range res.GoodRows {
		counts := box.Counts[r]
		for c := range cols {
			if weights.At(r, c) <= 0 || (in.CRMask != nil && in.CRMask.At(r, c) > 0) {
				continue
			}
			res.Samples = append(res.Samples, ProfileSample{
				X:   float64(c) - trace[r],
				Y:   in.Science.At(r, c) / counts,
				Var: in.Variance.At(r, c) / (counts * counts),
			})
		}
	}

	slices.SortStableFunc(res.Samples, func(a, b ProfileSample) int {
		return cmp.Compare(a.X, b.X)
	})
	if res.Mode == ProfileReduced {
		res.Samples = binByOffset(res.Samples)
	}
	return res
}

// binByOffset averages samples that share the same rounded offset. The input must be sorted by X.
func binByOffset(samples []ProfileSample) []ProfileSample {
	var out []ProfileSample
	for start := 0; start < len(samples); {
		key := math.Round(samples[start].X)
		end := start
		var sum ProfileSample
		for end < len(samples) && math.Round(samples[end].X) == key {
			sum.Y += samples[end].Y
			sum.Var += samples[end].Var
			end++
		}
		n := float64(end - start)
		out = append(out, ProfileSample{X: key, Y: sum.Y / n, Var: sum.Var / (n * n)})
		start = end
	}
	return out
}
