// Package matcher pairs science frames with calibration frames taken in the same instrument setup.
package matcher

import (
	"cmp"
	"math"
	"slices"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CalibrationMatcher = (*Matcher)(nil)

// Matcher implements ports.CalibrationMatcher. A calibration frame matches a science frame when
// every detector reports the same setup signature; matches are ranked by closeness in time.
type Matcher struct {
	hasher ports.Hasher
}

// NewMatcher creates a new Matcher.
func NewMatcher(hasher ports.Hasher) *Matcher {
	return &Matcher{hasher: hasher}
}

type candidate struct {
	index int
	delta float64
}

// Match returns the requirement sets of every science frame in idx.
func (m *Matcher) Match(
	idx *domain.FrameIndex,
	sel map[domain.RequirementKind]domain.CalibrationSelection,
) (map[int]domain.CalibrationMatch, error) {
	signatures := make([][]string, idx.Len())
	for i := range idx.Len() {
		frame := idx.Frame(i)
		if len(frame.Detectors) == 0 {
			return nil, zerr.With(zerr.With(domain.ErrMissingMetadata, "field", "detectors"), "file", idx.Filename(i))
		}
		signatures[i] = make([]string, len(frame.Detectors))
		for d, cfg := range frame.Detectors {
			signatures[i][d] = m.hasher.Signature(cfg)
		}
	}

	out := make(map[int]domain.CalibrationMatch)
	for _, sci := range idx.ByType(domain.FrameScience) {
		match := make(domain.CalibrationMatch, len(domain.RequirementKinds))
		for _, kind := range domain.RequirementKinds {
			match[kind] = m.selectFrames(idx, signatures, sci, kind, sel[kind])
		}
		out[sci] = match
	}
	return out, nil
}

func (m *Matcher) selectFrames(
	idx *domain.FrameIndex,
	signatures [][]string,
	sci int,
	kind domain.RequirementKind,
	sel domain.CalibrationSelection,
) domain.RequirementSet {
	mjd := idx.Frame(sci).MJD

	var cands []candidate
	for _, i := range idx.ByType(kind.SourceFrameType()) {
		if i == sci || !slices.Equal(signatures[i], signatures[sci]) {
			continue
		}
		delta := math.Abs(idx.Frame(i).MJD - mjd)
		if sel.MaxDeltaDays > 0 && delta > sel.MaxDeltaDays {
			continue
		}
		cands = append(cands, candidate{index: i, delta: delta})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.delta, b.delta)
	})
	if sel.Number > 0 && len(cands) > sel.Number {
		cands = cands[:sel.Number]
	}

	indices := make([]int, len(cands))
	for i, c := range cands {
		indices[i] = c.index
	}
	slices.Sort(indices)
	return domain.NewRequirementSet(indices...)
}
