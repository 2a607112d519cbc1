// Package metadata loads the raw frame table of a night.
package metadata

import (
	"os"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.MetadataLoader = (*Loader)(nil)

// FrameTable represents the structure of the frame table file.
type FrameTable struct {
	Frames []FrameDTO `yaml:"frames"`
}

// FrameDTO represents one raw frame in the frame table.
type FrameDTO struct {
	Filename  string                  `yaml:"filename"`
	Target    string                  `yaml:"target"`
	Types     []string                `yaml:"types"`
	MJD       float64                 `yaml:"mjd"`
	ExpTime   float64                 `yaml:"exptime"`
	Detectors []domain.DetectorConfig `yaml:"detectors"`
}

// Loader implements ports.MetadataLoader using a YAML frame table.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the frame table at path. Frames keep their table order, which is their raw ordinal.
// Detector numbers omitted in the table are filled from the position in the list.
func (l *Loader) Load(path string) ([]domain.Frame, error) {
	// #nosec G304 -- path comes from the settings file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFrameTableReadFailed.Error()), "path", path)
	}

	var table FrameTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFrameTableParseFailed.Error()), "path", path)
	}

	frames := make([]domain.Frame, 0, len(table.Frames))
	for _, dto := range table.Frames {
		frames = append(frames, toFrame(dto))
	}
	return frames, nil
}

func toFrame(dto FrameDTO) domain.Frame {
	frame := domain.Frame{
		Hints:     append([]string(nil), dto.Types...),
		MJD:       dto.MJD,
		ExpTime:   dto.ExpTime,
		Detectors: make([]domain.DetectorConfig, len(dto.Detectors)),
	}
	if dto.Filename != "" {
		frame.Filename = domain.NewInternedString(dto.Filename)
	}
	if dto.Target != "" {
		frame.Target = domain.NewInternedString(dto.Target)
	}
	for i, det := range dto.Detectors {
		if det.Detector == 0 {
			det.Detector = i + 1
		}
		frame.Detectors[i] = det
	}
	return frame
}
