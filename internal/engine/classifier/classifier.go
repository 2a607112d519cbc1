// Package classifier assigns frame-type labels to raw frames.
package classifier

import (
	"fmt"
	"strings"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/zerr"
)

// hintAliases maps header vocabulary that is not a label name to labels.
var hintAliases = map[string]domain.FrameType{
	"object": domain.FrameScience,
	"std":    domain.FrameStandard,
	"zero":   domain.FrameBias,
	"comp":   domain.FrameArc,
	"lamp":   domain.FrameArc,
	"flat":   domain.FrameTrace | domain.FramePixelFlat,
}

// Classifier builds the frame index of a run.
type Classifier struct {
	log ports.Logger
}

// New creates a Classifier.
func New(log ports.Logger) *Classifier {
	return &Classifier{log: log}
}

// Classify labels every frame from its hints and returns the immutable index.
// Frames without a usable label become unknown when the run buckets bad frames,
// and fail the run otherwise.
func (c *Classifier) Classify(rc *domain.RunContext, frames []domain.Frame) (*domain.FrameIndex, error) {
	ndet := rc.Settings.NDet
	types := make([]domain.FrameType, len(frames))

	for i := range frames {
		f := &frames[i]
		if f.Filename.IsZero() {
			return nil, zerr.With(zerr.With(domain.ErrMissingMetadata, "frame", i), "field", "filename")
		}
		if len(f.Detectors) < ndet {
			return nil, zerr.With(zerr.With(domain.ErrMissingMetadata, "file", f.Filename.String()), "detectors", len(f.Detectors))
		}

		ft := labelsFromHints(f.Hints)
		if ft.IsZero() || ft.Exclusive() {
			if !rc.BadToUnknown {
				err := zerr.With(domain.ErrUnclassifiedFrame, "file", f.Filename.String())
				return nil, zerr.With(err, "hints", strings.Join(f.Hints, ","))
			}
			c.log.Warn(fmt.Sprintf("%s could not be classified, marking as unknown", f.Filename))
			ft = domain.FrameUnknown
		}
		types[i] = ft
	}

	idx := domain.NewFrameIndex(frames, types)
	for _, t := range domain.FrameTypes {
		if n := len(idx.ByType(t)); n > 0 {
			c.log.Info(fmt.Sprintf("%d %s frame(s)", n, t))
		}
	}
	return idx, nil
}

func labelsFromHints(hints []string) domain.FrameType {
	var ft domain.FrameType
	for _, h := range hints {
		if t, ok := domain.ParseFrameType(h); ok {
			ft = ft.With(t)
			continue
		}
		if t, ok := hintAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			ft = ft.With(t)
		}
	}
	return ft
}
