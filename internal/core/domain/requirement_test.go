package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/specred/internal/core/domain"
)

func TestRequirementSet_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b domain.RequirementSet
		want bool
	}{
		{"same order", domain.NewRequirementSet(1, 2, 3), domain.NewRequirementSet(1, 2, 3), true},
		{"permuted", domain.NewRequirementSet(3, 1, 2), domain.NewRequirementSet(1, 2, 3), true},
		{"subset", domain.NewRequirementSet(1, 2), domain.NewRequirementSet(1, 2, 3), false},
		{"overlap", domain.NewRequirementSet(1, 2), domain.NewRequirementSet(2, 3), false},
		{"both empty", domain.NewRequirementSet(), domain.RequirementSet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestRequirementSet_SortedDoesNotMutate(t *testing.T) {
	t.Parallel()

	set := domain.NewRequirementSet(5, 2, 9)
	assert.Equal(t, []int{2, 5, 9}, set.Sorted())
	assert.Equal(t, domain.RequirementSet{5, 2, 9}, set)
}

func TestRequirementKind(t *testing.T) {
	t.Parallel()

	for _, k := range domain.RequirementKinds {
		got, ok := domain.ParseRequirementKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := domain.ParseRequirementKind("flux")
	assert.False(t, ok)

	assert.Equal(t, domain.FrameBias, domain.ReqReadNoise.SourceFrameType())
	assert.Equal(t, domain.FramePixelFlat, domain.ReqPixelFlat.SourceFrameType())
	assert.Equal(t, domain.FrameStandard, domain.ReqStandard.SourceFrameType())
}
