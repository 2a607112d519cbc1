package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/specred/internal/core/domain"
	"gonum.org/v1/gonum/mat"
)

var (
	biasKind  = domain.MasterKind{Type: domain.CalibBias}
	traceKind = domain.MasterKind{Type: domain.CalibFlat, Subtype: domain.SubtypeTrace}
	pixelKind = domain.MasterKind{Type: domain.CalibFlat, Subtype: domain.SubtypePixelFlat}
)

func TestScienceExposure_Requirements(t *testing.T) {
	t.Parallel()

	in := domain.CalibrationMatch{domain.ReqArc: domain.NewRequirementSet(1, 2)}
	exp := domain.NewScienceExposure(0, 5, 1, in)

	in[domain.ReqArc][0] = 99
	assert.Equal(t, domain.RequirementSet{1, 2}, exp.Requirement(domain.ReqArc))
	assert.Empty(t, exp.Requirement(domain.ReqBias))
}

func TestScienceExposure_MasterSlots(t *testing.T) {
	t.Parallel()

	exp := domain.NewScienceExposure(0, 0, 2, nil)
	m := &domain.MasterFrame{Kind: traceKind, Detector: 1, Data: mat.NewDense(1, 2, []float64{1, 2})}

	assert.False(t, exp.HasMaster(traceKind, 1))
	require.NoError(t, exp.SetMaster(m, traceKind, 1))
	assert.True(t, exp.HasMaster(traceKind, 1))
	assert.False(t, exp.HasMaster(traceKind, 2))

	// The slot holds a copy.
	m.Data.Set(0, 0, 42)
	got, ok := exp.Master(traceKind, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, got.Data.At(0, 0), 1e-12)

	// Readers get copies too.
	got.Data.Set(0, 1, 42)
	again, _ := exp.Master(traceKind, 1)
	assert.InDelta(t, 2.0, again.Data.At(0, 1), 1e-12)

	err := exp.SetMaster(m, traceKind, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMasterSlotOccupied.Error())
}

func TestScienceExposure_SetMasterRetags(t *testing.T) {
	t.Parallel()

	exp := domain.NewScienceExposure(0, 0, 1, nil)
	m := &domain.MasterFrame{Kind: traceKind, Detector: 1, Data: mat.NewDense(1, 1, []float64{3})}
	require.NoError(t, exp.SetMaster(m, pixelKind, 1))

	got, ok := exp.Master(pixelKind, 1)
	require.True(t, ok)
	assert.Equal(t, pixelKind, got.Kind)
	assert.Equal(t, traceKind, m.Kind)
}

func TestParseMasterKind(t *testing.T) {
	t.Parallel()

	k, err := domain.ParseMasterKind(domain.CalibBias, "ignored")
	require.NoError(t, err)
	assert.Equal(t, biasKind, k)

	k, err = domain.ParseMasterKind(domain.CalibFlat, domain.SubtypePixelFlat)
	require.NoError(t, err)
	assert.Equal(t, pixelKind, k)
	assert.Equal(t, traceKind, k.OtherFlat())
	assert.Equal(t, domain.ReqPixelFlat, k.Requirement())
	assert.Equal(t, "flat/pixelflat", k.String())
	assert.Equal(t, "pixelflat", k.Name())

	_, err = domain.ParseMasterKind(domain.CalibFlat, "illum")
	require.ErrorContains(t, err, domain.ErrUnknownCalibType.Error())

	_, err = domain.ParseMasterKind("wavecal", "")
	require.ErrorContains(t, err, domain.ErrUnknownCalibType.Error())
}
