// Package setupfile persists the setup registry and the group records as YAML files named after
// the run.
package setupfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.SetupStore  = (*Store)(nil)
	_ ports.GroupWriter = (*Store)(nil)
)

// Setupfile represents the structure of the setup file.
type Setupfile struct {
	Setups []SetupDTO `yaml:"setups"`
}

// SetupDTO represents one registered setup.
type SetupDTO struct {
	ID        string                `yaml:"id"`
	Signature string                `yaml:"signature"`
	Detector  int                   `yaml:"detector"`
	Config    domain.DetectorConfig `yaml:"config"`
}

// Groupfile represents the structure of the group file.
type Groupfile struct {
	Groups map[string]GroupDTO `yaml:"groups"`
}

// GroupDTO represents the files and targets of one setup group.
type GroupDTO struct {
	Files  map[string][]string `yaml:"files"`
	SciObj []string            `yaml:"sciobj"`
	StdObj []string            `yaml:"stdobj"`
}

// Store implements ports.SetupStore and ports.GroupWriter on the file system.
type Store struct {
	dir string
}

// NewStore creates a Store writing its files into dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// SetupFile returns the setup file path of the run and whether it exists.
func (s *Store) SetupFile(redName string) (string, bool) {
	path := filepath.Join(s.dir, domain.SetupFilePath(redName))
	info, err := os.Stat(path)
	return path, err == nil && !info.IsDir()
}

// Load reads the setup dict of the run.
func (s *Store) Load(redName string) (domain.SetupDict, error) {
	path, _ := s.SetupFile(redName)
	// #nosec G304 -- path is built from the configured run name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.SetupDict{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSetupReadFailed.Error()), "path", path)
	}

	var file Setupfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSetupReadFailed.Error()), "path", path)
	}

	setups := make(domain.SetupDict, len(file.Setups))
	for _, dto := range file.Setups {
		if dto.Signature == "" || dto.ID == "" {
			return nil, zerr.With(zerr.With(domain.ErrSetupReadFailed, "path", path), "id", dto.ID)
		}
		setups[dto.Signature] = domain.SetupEntry{ID: dto.ID, Detector: dto.Detector, Config: dto.Config}
	}
	return setups, nil
}

// Save writes the setup dict of the run, ordered by id.
func (s *Store) Save(redName string, setups domain.SetupDict) error {
	file := Setupfile{Setups: make([]SetupDTO, 0, len(setups))}
	for sig, e := range setups {
		file.Setups = append(file.Setups, SetupDTO{ID: e.ID, Signature: sig, Detector: e.Detector, Config: e.Config})
	}
	slices.SortFunc(file.Setups, func(a, b SetupDTO) int {
		if a.ID != b.ID {
			if a.ID < b.ID {
				return -1
			}
			return 1
		}
		return a.Detector - b.Detector
	})

	path, _ := s.SetupFile(redName)
	return s.write(path, &file)
}

// GroupFile returns the group file path of the run.
func (s *Store) GroupFile(redName string) string {
	return filepath.Join(s.dir, domain.GroupFilePath(redName))
}

// SaveGroups writes the group records of the run.
func (s *Store) SaveGroups(redName string, groups domain.GroupRecords) error {
	file := Groupfile{Groups: make(map[string]GroupDTO, len(groups))}
	for key, rec := range groups {
		dto := GroupDTO{
			Files:  make(map[string][]string, len(rec.Files)),
			SciObj: slices.Clone(rec.SciObj),
			StdObj: slices.Clone(rec.StdObj),
		}
		for t, files := range rec.Files {
			dto.Files[t.String()] = slices.Clone(files)
		}
		file.Groups[key] = dto
	}
	return s.write(s.GroupFile(redName), &file)
}

func (s *Store) write(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSetupWriteFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSetupWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // Path is built from the configured run name
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSetupWriteFailed.Error()), "path", path)
	}
	return nil
}
