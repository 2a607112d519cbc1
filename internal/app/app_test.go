package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/specred/internal/adapters/cas"
	"go.trai.ch/specred/internal/adapters/fs"
	"go.trai.ch/specred/internal/adapters/matcher"
	"go.trai.ch/specred/internal/adapters/setupfile"
	"go.trai.ch/specred/internal/app"
	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/specred/internal/core/ports/mocks"
	"go.trai.ch/specred/internal/engine/classifier"
	"go.trai.ch/specred/internal/engine/science"
	"go.trai.ch/specred/internal/engine/setup"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/mat"
)

type harness struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	frames   *mocks.MockMetadataLoader
	store    *mocks.MockMasterStore
	builder  *mocks.MockMasterBuilder
	settings *domain.Settings
}

func frame(name, target, hint string, mjd float64) domain.Frame {
	return domain.Frame{
		Filename:  domain.NewInternedString(name),
		Target:    domain.NewInternedString(target),
		Hints:     []string{hint},
		MJD:       mjd,
		Detectors: []domain.DetectorConfig{{Detector: 1, Disperser: "600/5000"}},
	}
}

func rawFrames() []domain.Frame {
	return []domain.Frame{
		frame("sci1.fits", "M31", "science", 100.0),
		frame("sci2.fits", "M31", "science", 100.1),
		frame("arc1.fits", "", "arc", 100.0),
		frame("bias1.fits", "", "bias", 100.0),
		frame("flat1.fits", "", "flat", 100.0),
	}
}

func writePixels(t *testing.T, dir string, frames []domain.Frame) {
	t.Helper()
	for _, f := range frames {
		content := []byte(`{"detectors":[{"detector":1,"rows":1,"cols":1,"data":[1]}],"file":"` + f.Filename.String() + `"}`)
		require.NoError(t, os.WriteFile(domain.PixelFilePath(dir, f.Filename.String()), content, domain.FilePerm))
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	hs := newHarnessWithStore(t, nil)
	hs.frames.EXPECT().Load(hs.settings.FrameTable).Return(rawFrames(), nil).AnyTimes()
	return hs
}

// newHarnessWithStore wires the app to store, or to a mock store when store is nil.
func newHarnessWithStore(t *testing.T, store ports.MasterStore) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	telemetry.EXPECT().Close().Return(nil).AnyTimes()

	h := fs.NewHasher()
	files := setupfile.NewStore(t.TempDir())
	sci := science.NewBuilder(log, classifier.New(log), setup.NewRegistry(h), matcher.NewMatcher(h), files, files)

	hs := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		frames:   mocks.NewMockMetadataLoader(ctrl),
		store:    mocks.NewMockMasterStore(ctrl),
		builder:  mocks.NewMockMasterBuilder(ctrl),
		settings: domain.DefaultSettings(),
	}
	if store == nil {
		store = hs.store
	}
	hs.settings.PixelDir = t.TempDir()
	writePixels(t, hs.settings.PixelDir, rawFrames())
	hs.app = app.New(hs.loader, hs.frames, sci, store, hs.builder, h, log, telemetry)

	hs.loader.EXPECT().Load("specred.yaml").Return(hs.settings, nil).AnyTimes()
	return hs
}

func pixels() *mat.Dense {
	return mat.NewDense(1, 1, []float64{1})
}

func TestApp_Run_SharesMasters(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)

	var built []domain.MasterKind
	hs.builder.EXPECT().Build(gomock.Any(), hs.settings.PixelDir, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ *domain.FrameIndex, req domain.MasterRequest) (*mat.Dense, error) {
			built = append(built, req.Kind)
			return pixels(), nil
		}).Times(4)
	hs.store.EXPECT().Put(gomock.Any()).Return(nil).Times(4)

	sum, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)

	assert.Equal(t, app.Summary{Exposures: 2, Computed: 4, Shared: 6}, sum)
	assert.Equal(t, []domain.MasterKind{
		{Type: domain.CalibBias},
		{Type: domain.CalibReadNoise},
		{Type: domain.CalibArc},
		{Type: domain.CalibFlat, Subtype: domain.SubtypeTrace},
	}, built)
}

func TestApp_Run_ReusesStoredMasters(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)
	hs.settings.ReuseMasters = true

	hs.store.EXPECT().Get(gomock.Any()).DoAndReturn(func(key domain.MasterKey) (*domain.MasterFrame, error) {
		return &domain.MasterFrame{Kind: key.Kind, Detector: key.Detector, Setup: key.Setup, Fingerprint: key.Fingerprint, Data: pixels()}, nil
	}).Times(4)
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	sum, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Loaded)
	assert.Equal(t, 0, sum.Computed)
}

func TestApp_Run_NoReuseOverridesSettings(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)
	hs.settings.ReuseMasters = true

	hs.store.EXPECT().Get(gomock.Any()).Times(0)
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pixels(), nil).Times(4)
	hs.store.EXPECT().Put(gomock.Any()).Return(nil).Times(4)

	_, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml", NoReuse: true})
	require.NoError(t, err)
}

func TestApp_Run_ReorderedFrameTableReusesMasters(t *testing.T) {
	t.Parallel()

	hs := newHarnessWithStore(t, cas.NewStore(t.TempDir()))
	hs.settings.ReuseMasters = true

	reordered := rawFrames()
	slices.Reverse(reordered)
	gomock.InOrder(
		hs.frames.EXPECT().Load(hs.settings.FrameTable).Return(rawFrames(), nil),
		hs.frames.EXPECT().Load(hs.settings.FrameTable).Return(reordered, nil),
	)
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pixels(), nil).Times(4)

	first, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 4, first.Computed)

	second, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 4, second.Loaded)
	assert.Equal(t, 0, second.Computed)
}

func TestApp_Run_ReplacedFrameAtSameOrdinalRebuilds(t *testing.T) {
	t.Parallel()

	hs := newHarnessWithStore(t, cas.NewStore(t.TempDir()))
	hs.settings.ReuseMasters = true

	replaced := rawFrames()
	replaced[3] = frame("bias2.fits", "", "bias", 100.0)
	writePixels(t, hs.settings.PixelDir, replaced[3:4])

	gomock.InOrder(
		hs.frames.EXPECT().Load(hs.settings.FrameTable).Return(rawFrames(), nil),
		hs.frames.EXPECT().Load(hs.settings.FrameTable).Return(replaced, nil),
	)

	var rebuilt []domain.MasterKind
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ *domain.FrameIndex, req domain.MasterRequest) (*mat.Dense, error) {
			rebuilt = append(rebuilt, req.Kind)
			return pixels(), nil
		}).Times(6)

	_, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)
	rebuilt = nil

	sum, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Computed)
	assert.Equal(t, 2, sum.Loaded)
	assert.Equal(t, []domain.MasterKind{
		{Type: domain.CalibBias},
		{Type: domain.CalibReadNoise},
	}, rebuilt)
}

func TestApp_Run_CalCheck(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	sum, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml", CalCheck: true})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Exposures)
}

func TestApp_Run_BuildFailure(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)
	buildErr := errors.New("disk on fire")
	hs.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, buildErr)

	_, err := hs.app.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.ErrorIs(t, err, domain.ErrReductionFailed)
	assert.ErrorIs(t, err, buildErr)
}

func TestApp_Run_LogsRunID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	var messages []string
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { messages = append(messages, msg) }).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	h := fs.NewHasher()
	files := setupfile.NewStore(t.TempDir())
	sci := science.NewBuilder(log, classifier.New(log), setup.NewRegistry(h), matcher.NewMatcher(h), files, files)

	settings := domain.DefaultSettings()
	settings.CalCheck = true
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("specred.yaml").Return(settings, nil)
	frames := mocks.NewMockMetadataLoader(ctrl)
	frames.EXPECT().Load(settings.FrameTable).Return(rawFrames(), nil)

	a := app.New(loader, frames, sci, nil, nil, h, log, nil)
	_, err := a.Run(context.Background(), app.RunOptions{ConfigPath: "specred.yaml"})
	require.NoError(t, err)

	var id string
	for _, msg := range messages {
		if rest, ok := strings.CutPrefix(msg, "starting run "); ok {
			id, _, _ = strings.Cut(rest, " ")
		}
	}
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestApp_Run_ConfigError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrConfigParseFailed)

	a := app.New(loader, nil, nil, nil, nil, nil, nil, nil)
	_, err := a.Run(context.Background(), app.RunOptions{ConfigPath: "bad.yaml"})
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Extractor(t *testing.T) {
	t.Parallel()

	hs := newHarness(t)
	e, err := hs.app.Extractor("specred.yaml")
	require.NoError(t, err)
	assert.NotNil(t, e)

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrConfigParseFailed)
	_, err = app.New(loader, nil, nil, nil, nil, nil, nil, nil).Extractor("bad.yaml")
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Clean(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(2)

	masters := filepath.Join(dir, domain.DefaultMastersPath())
	require.NoError(t, os.MkdirAll(masters, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(masters, "x.json"), []byte("{}"), domain.FilePerm))

	a := app.New(nil, nil, nil, nil, nil, nil, log, nil)
	require.NoError(t, a.Clean(context.Background()))

	_, err := os.Stat(masters)
	assert.True(t, os.IsNotExist(err))
}
