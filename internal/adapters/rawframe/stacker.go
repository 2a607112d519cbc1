package rawframe

import (
	"context"

	"github.com/cwbudde/algo-vecmath"
	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
)

var _ ports.MasterBuilder = (*Stacker)(nil)

// Stacker implements ports.MasterBuilder by averaging the raw frames of a requirement set.
type Stacker struct {
	reader ports.PixelReader
}

// NewStacker creates a Stacker reading pixels through reader.
func NewStacker(reader ports.PixelReader) *Stacker {
	return &Stacker{reader: reader}
}

// Build averages, pixel by pixel, the frames of the request as seen by its detector.
func (s *Stacker) Build(ctx context.Context, pixelDir string, idx *domain.FrameIndex, req domain.MasterRequest) (*mat.Dense, error) {
	indices := req.Set.Sorted()
	if len(indices) == 0 {
		return nil, zerr.With(domain.ErrEmptyRequirementSet, "kind", req.Kind.String())
	}

	var (
		sum        []float64
		rows, cols int
	)
	for _, i := range indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := domain.PixelFilePath(pixelDir, idx.Filename(i))
		pix, err := s.reader.Read(path, req.Detector)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMasterBuildFailed.Error()), "kind", req.Kind.String())
		}

		r, c := pix.Dims()
		if sum == nil {
			rows, cols = r, c
			sum = make([]float64, r*c)
		} else if r != rows || c != cols {
			err := zerr.With(zerr.Wrap(domain.ErrShapeMismatch, domain.ErrMasterBuildFailed.Error()), "file", idx.Filename(i))
			return nil, zerr.With(err, "shape", [2]int{r, c})
		}
		vecmath.AddBlockInPlace(sum, mat.DenseCopyOf(pix).RawMatrix().Data)
	}

	vecmath.ScaleBlockInPlace(sum, 1/float64(len(indices)))
	return mat.NewDense(rows, cols, sum), nil
}
