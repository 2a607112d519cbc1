package domain

import "slices"

// DetectorConfig is the instrument configuration seen by one detector during one exposure.
// Two exposures whose configs agree on every field are calibration-interchangeable.
type DetectorConfig struct {
	Detector  int    `yaml:"detector"`
	Disperser string `yaml:"disperser"`
	Filter    string `yaml:"filter"`
	Dichroic  string `yaml:"dichroic"`
	Decker    string `yaml:"decker"`
	SlitWidth string `yaml:"slitwidth"`
	Binning   string `yaml:"binning"`
	Amp       string `yaml:"amp"`
}

// Frame is the metadata of one raw exposure.
type Frame struct {
	Filename InternedString
	Target   InternedString
	// Hints are the frame-type labels suggested by the instrument headers.
	Hints     []string
	MJD       float64
	ExpTime   float64
	Detectors []DetectorConfig
}

// Detector returns the config of the 1-based detector number, or false if the frame lacks it.
func (f *Frame) Detector(det int) (DetectorConfig, bool) {
	if det < 1 || det > len(f.Detectors) {
		return DetectorConfig{}, false
	}
	return f.Detectors[det-1], true
}

// FrameIndex is the classified table of raw frames for one run, keyed by raw ordinal.
// It is immutable once built.
type FrameIndex struct {
	frames []Frame
	types  []FrameType
	byType map[FrameType][]int
}

// NewFrameIndex builds the index. types[i] holds the labels of frames[i].
func NewFrameIndex(frames []Frame, types []FrameType) *FrameIndex {
	idx := &FrameIndex{
		frames: slices.Clone(frames),
		types:  slices.Clone(types),
		byType: make(map[FrameType][]int, len(FrameTypes)),
	}
	for i, t := range idx.types {
		for _, label := range t.Labels() {
			idx.byType[label] = append(idx.byType[label], i)
		}
	}
	return idx
}

// Len returns the number of raw frames.
func (x *FrameIndex) Len() int {
	return len(x.frames)
}

// Frame returns the raw frame at index i.
func (x *FrameIndex) Frame(i int) Frame {
	return x.frames[i]
}

// Types returns the labels assigned to frame i.
func (x *FrameIndex) Types(i int) FrameType {
	return x.types[i]
}

// ByType returns the raw indices labelled t, in ordinal order.
func (x *FrameIndex) ByType(t FrameType) []int {
	return slices.Clone(x.byType[t])
}

// Filename returns the filename of frame i.
func (x *FrameIndex) Filename(i int) string {
	return x.frames[i].Filename.String()
}

// Target returns the target name of frame i.
func (x *FrameIndex) Target(i int) string {
	return x.frames[i].Target.String()
}
