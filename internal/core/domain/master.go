package domain

import (
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

// CalibType is the family of a master calibration frame.
type CalibType string

// Calibration types.
const (
	CalibArc       CalibType = "arc"
	CalibBias      CalibType = "bias"
	CalibReadNoise CalibType = "readnoise"
	CalibFlat      CalibType = "flat"
	CalibStandard  CalibType = "standard"
)

// Flat subtypes. Plain types carry an empty subtype.
const (
	SubtypeTrace     = "trace"
	SubtypePixelFlat = "pixelflat"
)

// MasterKind identifies a master product by type and subtype.
type MasterKind struct {
	Type    CalibType
	Subtype string
}

// MasterKinds lists every master product in the order they are resolved for an exposure.
var MasterKinds = []MasterKind{
	{Type: CalibBias},
	{Type: CalibReadNoise},
	{Type: CalibArc},
	{Type: CalibFlat, Subtype: SubtypeTrace},
	{Type: CalibFlat, Subtype: SubtypePixelFlat},
	{Type: CalibStandard},
}

// ParseMasterKind validates a type/subtype pair. Subtypes are ignored for plain types.
func ParseMasterKind(calibType CalibType, subtype string) (MasterKind, error) {
	switch calibType {
	case CalibArc, CalibBias, CalibReadNoise, CalibStandard:
		return MasterKind{Type: calibType}, nil
	case CalibFlat:
		if subtype == SubtypeTrace || subtype == SubtypePixelFlat {
			return MasterKind{Type: calibType, Subtype: subtype}, nil
		}
		return MasterKind{}, zerr.With(zerr.With(ErrUnknownCalibType, "type", string(calibType)), "subtype", subtype)
	default:
		return MasterKind{}, zerr.With(ErrUnknownCalibType, "type", string(calibType))
	}
}

// String returns "type" or "type/subtype".
func (k MasterKind) String() string {
	if k.Subtype == "" {
		return string(k.Type)
	}
	return string(k.Type) + "/" + k.Subtype
}

// Name returns the name used in progress and log messages: the subtype for flats, the type otherwise.
func (k MasterKind) Name() string {
	if k.Subtype != "" {
		return k.Subtype
	}
	return string(k.Type)
}

// Requirement returns the requirement kind whose set feeds this master.
func (k MasterKind) Requirement() RequirementKind {
	switch k.Type {
	case CalibArc:
		return ReqArc
	case CalibBias:
		return ReqBias
	case CalibReadNoise:
		return ReqReadNoise
	case CalibStandard:
		return ReqStandard
	}
	if k.Subtype == SubtypePixelFlat {
		return ReqPixelFlat
	}
	return ReqTrace
}

// OtherFlat returns the opposite flat subtype. It is only meaningful for flats.
func (k MasterKind) OtherFlat() MasterKind {
	if k.Subtype == SubtypeTrace {
		return MasterKind{Type: CalibFlat, Subtype: SubtypePixelFlat}
	}
	return MasterKind{Type: CalibFlat, Subtype: SubtypeTrace}
}

// MasterKey addresses a stored master frame.
type MasterKey struct {
	Kind        MasterKind
	Detector    int
	Setup       string
	Fingerprint string
}

// MasterFrame is a computed calibration product for one detector.
type MasterFrame struct {
	Kind        MasterKind
	Detector    int
	Setup       string
	Fingerprint string
	Data        *mat.Dense
}

// Key returns the store key of the frame.
func (m *MasterFrame) Key() MasterKey {
	return MasterKey{Kind: m.Kind, Detector: m.Detector, Setup: m.Setup, Fingerprint: m.Fingerprint}
}

// Clone returns a deep copy; the pixel data is never shared.
func (m *MasterFrame) Clone() *MasterFrame {
	c := *m
	if m.Data != nil {
		c.Data = mat.DenseCopyOf(m.Data)
	}
	return &c
}

// Retag returns a deep copy labelled as another kind.
func (m *MasterFrame) Retag(kind MasterKind) *MasterFrame {
	c := m.Clone()
	c.Kind = kind
	return c
}

// MasterRequest describes one master frame to resolve for a science exposure.
type MasterRequest struct {
	Kind     MasterKind
	Detector int
	Setup    string
	Set      RequirementSet
}

// Key returns the store key of the requested master for the given set fingerprint.
func (r MasterRequest) Key(fingerprint string) MasterKey {
	return MasterKey{Kind: r.Kind, Detector: r.Detector, Setup: r.Setup, Fingerprint: fingerprint}
}
