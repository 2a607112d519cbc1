package ports

import "go.trai.ch/specred/internal/core/domain"

// CalibrationMatcher pairs science frames with the calibration frames usable for them.
//
//go:generate mockgen -source=matcher.go -destination=mocks/mock_matcher.go -package=mocks
type CalibrationMatcher interface {
	// Match returns, keyed by the raw index of every science frame, the requirement sets
	// matched to it.
	Match(idx *domain.FrameIndex, sel map[domain.RequirementKind]domain.CalibrationSelection) (map[int]domain.CalibrationMatch, error)
}
