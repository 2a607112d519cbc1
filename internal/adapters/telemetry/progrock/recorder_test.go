package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/specred/internal/adapters/telemetry/progrock"
	"go.trai.ch/specred/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Vertices(t *testing.T) {
	t.Parallel()

	recorder := progrock.New()
	ctx := context.Background()

	_, built := recorder.Record(ctx, "exposure 0 det 01 bias")
	_, err := built.Stdout().Write([]byte("stacking 3 frames\n"))
	require.NoError(t, err)
	built.Log(domain.LogLevelInfo, "stored")
	built.Complete(nil)

	_, shared := recorder.Record(ctx, "exposure 1 det 01 bias")
	shared.Cached()
	shared.Complete(nil)

	_, failed := recorder.Record(ctx, "exposure 1 det 01 arc")
	failed.Log(domain.LogLevelError, "no frames")
	failed.Complete(errors.New("no calibration frames matched"))

	require.NoError(t, recorder.Close())
}
