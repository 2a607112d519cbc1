// Package domain contains the core types of the reduction pipeline: raw frames and their
// classification, instrument setups, calibration requirement sets, master frames and the
// per-object extraction containers.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// FrameType is a set of frame-type labels. A raw frame may carry several labels at once.
type FrameType uint16

const (
	// FrameScience marks a science exposure.
	FrameScience FrameType = 1 << iota
	// FrameStandard marks a standard star exposure.
	FrameStandard
	// FrameBias marks a bias frame.
	FrameBias
	// FrameArc marks an arc lamp frame.
	FrameArc
	// FrameTrace marks a flat used to trace the slit edges.
	FrameTrace
	// FramePixelFlat marks a flat used for pixel-to-pixel flat-fielding.
	FramePixelFlat
	// FrameDark marks a dark frame. It is a diagnostic bucket and excludes every other label.
	FrameDark
	// FrameUnknown marks a frame that could not be classified. It excludes every other label.
	FrameUnknown
)

// FrameTypes lists every single label in index order.
var FrameTypes = []FrameType{
	FrameScience, FrameStandard, FrameBias, FrameArc, FrameTrace, FramePixelFlat, FrameDark, FrameUnknown,
}

var frameTypeNames = map[FrameType]string{
	FrameScience:   "science",
	FrameStandard:  "standard",
	FrameBias:      "bias",
	FrameArc:       "arc",
	FrameTrace:     "trace",
	FramePixelFlat: "pixelflat",
	FrameDark:      "dark",
	FrameUnknown:   "unknown",
}

// ParseFrameType converts a single label to its FrameType.
func ParseFrameType(label string) (FrameType, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for t, name := range frameTypeNames {
		if name == label {
			return t, true
		}
	}
	return 0, false
}

// Has reports whether every label in o is present in t.
func (t FrameType) Has(o FrameType) bool {
	return o != 0 && t&o == o
}

// With returns t with the labels of o added.
func (t FrameType) With(o FrameType) FrameType {
	return t | o
}

// IsZero reports whether the set is empty.
func (t FrameType) IsZero() bool {
	return t == 0
}

// Exclusive reports whether the set holds a diagnostic label (dark or unknown) combined with anything else.
func (t FrameType) Exclusive() bool {
	for _, d := range []FrameType{FrameDark, FrameUnknown} {
		if t.Has(d) && t != d {
			return true
		}
	}
	return false
}

// Labels returns the single labels held by the set, in index order.
func (t FrameType) Labels() []FrameType {
	var out []FrameType
	for _, ft := range FrameTypes {
		if t.Has(ft) {
			out = append(out, ft)
		}
	}
	return out
}

// String returns the comma separated label names.
func (t FrameType) String() string {
	labels := t.Labels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = frameTypeNames[l]
	}
	return strings.Join(names, ",")
}

// MarshalText implements encoding.TextMarshaler.
func (t FrameType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for comma separated label lists.
func (t *FrameType) UnmarshalText(text []byte) error {
	var out FrameType
	for _, part := range strings.Split(string(text), ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ft, ok := ParseFrameType(part)
		if !ok {
			return zerr.With(zerr.New("unknown frame type"), "label", part)
		}
		out = out.With(ft)
	}
	*t = out
	return nil
}
