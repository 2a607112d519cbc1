// Package cas implements content addressable storage of master calibration frames.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

var _ ports.MasterStore = (*Store)(nil)

// Store implements ports.MasterStore using a file-per-master strategy.
type Store struct {
	dir string
}

// NewStore creates a new MasterStore backed by the directory at the given path.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// record is the on-disk form of a master frame.
type record struct {
	Type        string    `json:"type"`
	Subtype     string    `json:"subtype,omitempty"`
	Detector    int       `json:"detector"`
	Setup       string    `json:"setup"`
	Fingerprint string    `json:"fingerprint"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	Data        []float64 `json:"data"`
}

// Get retrieves the master frame stored under key. A missing frame is not an error.
func (s *Store) Get(key domain.MasterKey) (*domain.MasterFrame, error) {
	filename := s.getFilename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	if rec.Rows <= 0 || rec.Cols <= 0 || len(rec.Data) != rec.Rows*rec.Cols {
		return nil, zerr.With(zerr.Wrap(domain.ErrShapeMismatch, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	kind, err := domain.ParseMasterKind(domain.CalibType(rec.Type), rec.Subtype)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &domain.MasterFrame{
		Kind:        kind,
		Detector:    rec.Detector,
		Setup:       rec.Setup,
		Fingerprint: rec.Fingerprint,
		Data:        mat.NewDense(rec.Rows, rec.Cols, rec.Data),
	}, nil
}

// Put stores the master frame under its key.
func (s *Store) Put(frame *domain.MasterFrame) error {
	if frame.Data == nil {
		return zerr.With(domain.ErrStoreMarshalFailed, "kind", frame.Kind.String())
	}
	rows, cols := frame.Data.Dims()
	rec := record{
		Type:        string(frame.Kind.Type),
		Subtype:     frame.Kind.Subtype,
		Detector:    frame.Detector,
		Setup:       frame.Setup,
		Fingerprint: frame.Fingerprint,
		Rows:        rows,
		Cols:        cols,
		Data:        mat.DenseCopyOf(frame.Data).RawMatrix().Data,
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	filename := s.getFilename(frame.Key())
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(key domain.MasterKey) string {
	name := fmt.Sprintf("%s/%02d/%s/%s", key.Kind.String(), key.Detector, key.Setup, key.Fingerprint)
	hash := sha256.Sum256([]byte(name))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
