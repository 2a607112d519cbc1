package domain

import "slices"

// RequirementKind names a calibration product a science exposure needs.
type RequirementKind int

const (
	// ReqArc is the arc lamp requirement.
	ReqArc RequirementKind = iota
	// ReqBias is the bias requirement.
	ReqBias
	// ReqReadNoise is the read noise requirement.
	ReqReadNoise
	// ReqTrace is the slit-tracing flat requirement.
	ReqTrace
	// ReqPixelFlat is the pixel flat requirement.
	ReqPixelFlat
	// ReqStandard is the standard star requirement.
	ReqStandard
)

// RequirementKinds lists every requirement kind in reduction order.
var RequirementKinds = []RequirementKind{ReqArc, ReqBias, ReqReadNoise, ReqTrace, ReqPixelFlat, ReqStandard}

var requirementNames = map[RequirementKind]string{
	ReqArc:       "arc",
	ReqBias:      "bias",
	ReqReadNoise: "readnoise",
	ReqTrace:     "trace",
	ReqPixelFlat: "pixelflat",
	ReqStandard:  "standard",
}

// String returns the requirement name used in settings and logs.
func (k RequirementKind) String() string {
	if n, ok := requirementNames[k]; ok {
		return n
	}
	return "invalid"
}

// ParseRequirementKind converts a settings key into a RequirementKind.
func ParseRequirementKind(s string) (RequirementKind, bool) {
	for k, n := range requirementNames {
		if n == s {
			return k, true
		}
	}
	return 0, false
}

// SourceFrameType returns the raw frame label whose frames feed this requirement.
// Read noise is estimated from bias frames.
func (k RequirementKind) SourceFrameType() FrameType {
	switch k {
	case ReqArc:
		return FrameArc
	case ReqBias, ReqReadNoise:
		return FrameBias
	case ReqTrace:
		return FrameTrace
	case ReqPixelFlat:
		return FramePixelFlat
	case ReqStandard:
		return FrameStandard
	default:
		return 0
	}
}

// RequirementSet is the unordered set of raw frame indices combined into one calibration product.
type RequirementSet []int

// NewRequirementSet copies the given indices into a set.
func NewRequirementSet(indices ...int) RequirementSet {
	return RequirementSet(slices.Clone(indices))
}

// Sorted returns the indices in ascending order without modifying the set.
func (r RequirementSet) Sorted() []int {
	out := slices.Clone([]int(r))
	slices.Sort(out)
	return out
}

// Equal reports exact, order-independent equality. Overlap or containment is not equality.
func (r RequirementSet) Equal(o RequirementSet) bool {
	if len(r) != len(o) {
		return false
	}
	return slices.Equal(r.Sorted(), o.Sorted())
}

// CalibrationMatch holds the requirement sets matched to one science frame.
type CalibrationMatch map[RequirementKind]RequirementSet
