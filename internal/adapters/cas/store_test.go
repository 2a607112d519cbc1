package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/specred/internal/adapters/cas"
	"go.trai.ch/specred/internal/core/domain"
	"gonum.org/v1/gonum/mat"
)

func testFrame() *domain.MasterFrame {
	return &domain.MasterFrame{
		Kind:        domain.MasterKind{Type: domain.CalibFlat, Subtype: domain.SubtypeTrace},
		Detector:    1,
		Setup:       "01",
		Fingerprint: "abc",
		Data:        mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	store := cas.NewStore(filepath.Join(tmpDir, "masters"))

	frame := testFrame()

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(frame))

		got, err := store.Get(frame.Key())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, frame.Kind, got.Kind)
		assert.Equal(t, frame.Setup, got.Setup)
		assert.Equal(t, frame.Fingerprint, got.Fingerprint)
		assert.True(t, mat.Equal(frame.Data, got.Data))
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		key := frame.Key()
		key.Fingerprint = "other"
		got, err := store.Get(key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_KeysAreDistinct(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())
	trace := testFrame()
	pixel := testFrame()
	pixel.Kind = domain.MasterKind{Type: domain.CalibFlat, Subtype: domain.SubtypePixelFlat}
	pixel.Data = mat.NewDense(1, 1, []float64{9})

	require.NoError(t, store.Put(trace))
	require.NoError(t, store.Put(pixel))

	got, err := store.Get(trace.Key())
	require.NoError(t, err)
	assert.True(t, mat.Equal(trace.Data, got.Data))

	got, err = store.Get(pixel.Key())
	require.NoError(t, err)
	assert.True(t, mat.Equal(pixel.Data, got.Data))
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	store := cas.NewStore(tmpDir)
	require.NoError(t, store.Put(testFrame()))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // 0644 is fine for test
	err = os.WriteFile(filepath.Join(tmpDir, entries[0].Name()), []byte("{ invalid json"), 0o600)
	require.NoError(t, err)

	_, err = store.Get(testFrame().Key())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutWithoutData(t *testing.T) {
	t.Parallel()

	frame := testFrame()
	frame.Data = nil
	err := cas.NewStore(t.TempDir()).Put(frame)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreMarshalFailed.Error())
}
