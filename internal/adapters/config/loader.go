// Package config provides the settings loader for specred.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path, applies defaults for omitted values and validates the result.
// Relative frame table and pixel paths are resolved against the settings file directory.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	var file Settingsfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(err, "path", path)
		}
		l.Logger.Info(fmt.Sprintf("no %s found at %s, using defaults", domain.SettingsFileName, path))
	}

	settings := domain.DefaultSettings()
	root := filepath.Dir(path)

	settings.CalCheck = file.Run.CalCheck
	if file.Run.RedName != "" {
		settings.RedName = file.Run.RedName
	}
	if file.Run.Frames != "" {
		settings.FrameTable = file.Run.Frames
	}
	if file.Run.Pixels != "" {
		settings.PixelDir = file.Run.Pixels
	}
	settings.FrameTable = resolvePath(root, settings.FrameTable)
	settings.PixelDir = resolvePath(root, settings.PixelDir)

	settings.Setups = slices.Clone(file.Reduce.Setup)
	settings.ReuseMasters = file.Reduce.Masters.Reuse
	settings.JSONLogs = file.Output.JSONLogs

	if file.Mosaic.NDet != nil {
		settings.NDet = *file.Mosaic.NDet
	}
	if file.Extraction.CountLimit != nil {
		settings.CountLimit = *file.Extraction.CountLimit
	}
	if file.Extraction.Parallelism != nil {
		settings.Parallelism = *file.Extraction.Parallelism
	}

	if err := l.applyCalibrations(settings, file.Calibrations); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := validate(settings); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return settings, nil
}

func (l *Loader) applyCalibrations(settings *domain.Settings, dtos map[string]*CalibrationDTO) error {
	keys := make([]string, 0, len(dtos))
	for k := range dtos {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		kind, ok := domain.ParseRequirementKind(key)
		if !ok {
			l.Logger.Warn(fmt.Sprintf("ignoring unknown calibration type %q in %s", key, domain.SettingsFileName))
			continue
		}
		dto := dtos[key]
		if dto == nil {
			continue
		}
		if dto.Number < 0 {
			return zerr.With(zerr.With(domain.ErrConfigInvalid, "calibration", key), "number", dto.Number)
		}
		if dto.MaxDeltaDays < 0 {
			return zerr.With(zerr.With(domain.ErrConfigInvalid, "calibration", key), "max_dt_days", dto.MaxDeltaDays)
		}
		settings.Calibrations[kind] = domain.CalibrationSelection{
			Number:       dto.Number,
			MaxDeltaDays: dto.MaxDeltaDays,
		}
	}
	return nil
}

func validate(settings *domain.Settings) error {
	if settings.NDet < 1 {
		return zerr.With(domain.ErrConfigInvalid, "ndet", settings.NDet)
	}
	if settings.CountLimit < 0 {
		return zerr.With(domain.ErrConfigInvalid, "count_limit", settings.CountLimit)
	}
	if settings.Parallelism < 1 {
		return zerr.With(domain.ErrConfigInvalid, "parallelism", settings.Parallelism)
	}
	for _, id := range settings.Setups {
		if id == "" {
			return zerr.With(domain.ErrConfigInvalid, "setup", id)
		}
	}
	return nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
