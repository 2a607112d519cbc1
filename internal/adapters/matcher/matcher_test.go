package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/specred/internal/adapters/fs"
	"go.trai.ch/specred/internal/adapters/matcher"
	"go.trai.ch/specred/internal/core/domain"
)

func frame(name string, mjd float64, disperser string) domain.Frame {
	return domain.Frame{
		Filename:  domain.NewInternedString(name),
		MJD:       mjd,
		Detectors: []domain.DetectorConfig{{Detector: 1, Disperser: disperser}},
	}
}

func buildIndex() *domain.FrameIndex {
	frames := []domain.Frame{
		frame("sci1", 100.0, "600"),   // 0
		frame("arc1", 99.0, "600"),    // 1
		frame("arc2", 100.1, "600"),   // 2
		frame("arc3", 100.0, "300"),   // 3 other setup
		frame("bias1", 90.0, "600"),   // 4
		frame("bias2", 100.5, "600"),  // 5
		frame("flat1", 100.2, "600"),  // 6
		frame("std1", 100.3, "600"),   // 7
		frame("scistd", 100.4, "600"), // 8 science and standard
	}
	types := []domain.FrameType{
		domain.FrameScience,
		domain.FrameArc,
		domain.FrameArc,
		domain.FrameArc,
		domain.FrameBias,
		domain.FrameBias,
		domain.FrameTrace.With(domain.FramePixelFlat),
		domain.FrameStandard,
		domain.FrameScience.With(domain.FrameStandard),
	}
	return domain.NewFrameIndex(frames, types)
}

func TestMatcher_Match_SameSetupOnly(t *testing.T) {
	t.Parallel()

	m := matcher.NewMatcher(fs.NewHasher())
	got, err := m.Match(buildIndex(), nil)
	require.NoError(t, err)

	require.Contains(t, got, 0)
	require.Contains(t, got, 8)
	sci := got[0]
	assert.Equal(t, domain.RequirementSet{1, 2}, sci[domain.ReqArc])
	assert.Equal(t, domain.RequirementSet{4, 5}, sci[domain.ReqBias])
	assert.Equal(t, domain.RequirementSet{4, 5}, sci[domain.ReqReadNoise])
	assert.Equal(t, domain.RequirementSet{6}, sci[domain.ReqTrace])
	assert.Equal(t, domain.RequirementSet{6}, sci[domain.ReqPixelFlat])
	assert.Equal(t, domain.RequirementSet{7, 8}, sci[domain.ReqStandard])

	// A frame never calibrates itself.
	assert.Equal(t, domain.RequirementSet{7}, got[8][domain.ReqStandard])
}

func TestMatcher_Match_NumberKeepsClosest(t *testing.T) {
	t.Parallel()

	m := matcher.NewMatcher(fs.NewHasher())
	got, err := m.Match(buildIndex(), map[domain.RequirementKind]domain.CalibrationSelection{
		domain.ReqArc:  {Number: 1},
		domain.ReqBias: {MaxDeltaDays: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RequirementSet{2}, got[0][domain.ReqArc])
	assert.Equal(t, domain.RequirementSet{5}, got[0][domain.ReqBias])
	assert.Equal(t, domain.RequirementSet{4, 5}, got[0][domain.ReqReadNoise])
}

func TestMatcher_Match_MissingDetectors(t *testing.T) {
	t.Parallel()

	idx := domain.NewFrameIndex(
		[]domain.Frame{{Filename: domain.NewInternedString("x")}},
		[]domain.FrameType{domain.FrameScience},
	)
	_, err := matcher.NewMatcher(fs.NewHasher()).Match(idx, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingMetadata.Error())
}
