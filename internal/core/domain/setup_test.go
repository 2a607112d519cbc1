package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/specred/internal/core/domain"
)

func TestSetupDict_NextID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01", domain.SetupDict{}.NextID())

	working := domain.SetupDict{"a": {ID: "01"}, "b": {ID: "03"}}
	prior := domain.SetupDict{"c": {ID: "02"}}
	assert.Equal(t, "04", working.NextID(prior))
	assert.Equal(t, "02", working.NextID())
}

func TestSetupDict_Clone(t *testing.T) {
	t.Parallel()

	var nilDict domain.SetupDict
	assert.NotNil(t, nilDict.Clone())

	d := domain.SetupDict{"a": {ID: "01"}}
	c := d.Clone()
	c["b"] = domain.SetupEntry{ID: "02"}
	assert.Len(t, d, 1)

	e, ok := d.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "01", e.ID)
}

func TestGroupKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01", domain.GroupKey([]string{"01"}))
	assert.Equal(t, "01_02_01", domain.GroupKey([]string{"01", "02", "01"}))
}

func TestGroupRecord_AddFile(t *testing.T) {
	t.Parallel()

	rec := domain.NewGroupRecord()
	assert.True(t, rec.AddFile(domain.FrameArc, "a1"))
	assert.True(t, rec.AddFile(domain.FrameArc, "a2"))
	assert.False(t, rec.AddFile(domain.FrameArc, "a1"))
	assert.False(t, rec.AddFile(domain.FrameUnknown, "u1"))
	assert.Equal(t, []string{"a1", "a2"}, rec.Files[domain.FrameArc])
	assert.NotContains(t, rec.Files, domain.FrameDark)

	groups := domain.GroupRecords{}
	g1 := groups.Get("01")
	assert.Same(t, g1, groups.Get("01"))
}

func TestRunContext(t *testing.T) {
	t.Parallel()

	settings := domain.DefaultSettings()
	rc := domain.NewRunContext(settings)
	assert.False(t, rc.BadToUnknown)
	assert.False(t, rc.Restricted())
	assert.True(t, rc.SetupAllowed("07"))

	settings.CalCheck = true
	settings.Setups = []string{"01"}
	rc = domain.NewRunContext(settings)
	assert.True(t, rc.BadToUnknown)
	assert.True(t, rc.Restricted())
	assert.True(t, rc.SetupAllowed("01"))
	assert.False(t, rc.SetupAllowed("02"))
}
