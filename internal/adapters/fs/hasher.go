// Package fs provides hashing of instrument setups and calibration frame sets.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes setup signatures and requirement set fingerprints with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Signature hashes every field of a detector config. Configs that agree on every field share a
// signature.
func (h *Hasher) Signature(cfg domain.DetectorConfig) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(strconv.Itoa(cfg.Detector))
	_, _ = hasher.Write([]byte{0}) // Separator

	for _, field := range []string{
		cfg.Disperser,
		cfg.Filter,
		cfg.Dichroic,
		cfg.Decker,
		cfg.SlitWidth,
		cfg.Binning,
		cfg.Amp,
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is built from the frame table
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint hashes the names and pixel contents of the frames of a requirement set. Frames are
// taken in filename order, so the result does not depend on their position in the frame table.
func (h *Hasher) Fingerprint(pixelDir string, idx *domain.FrameIndex, set domain.RequirementSet) (string, error) {
	names := make([]string, 0, len(set))
	for _, i := range set {
		names = append(names, idx.Filename(i))
	}
	slices.Sort(names)

	hasher := xxhash.New()
	buf := make([]byte, 8)
	for _, name := range names {
		sum, err := h.ComputeFileHash(domain.PixelFilePath(pixelDir, name))
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrPixelReadFailed.Error())
		}

		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf, sum)
		_, _ = hasher.Write(buf)
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
