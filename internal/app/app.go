// Package app implements the application layer for specred.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/specred/internal/engine/extract"
	"go.trai.ch/specred/internal/engine/masters"
	"go.trai.ch/specred/internal/engine/science"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	frames       ports.MetadataLoader
	science      *science.Builder
	store        ports.MasterStore
	builder      ports.MasterBuilder
	hasher       ports.Hasher
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	frames ports.MetadataLoader,
	sci *science.Builder,
	store ports.MasterStore,
	builder ports.MasterBuilder,
	hasher ports.Hasher,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		frames:       frames,
		science:      sci,
		store:        store,
		builder:      builder,
		hasher:       hasher,
		logger:       log,
		telemetry:    telemetry,
	}
}

// RunOptions configuration for the Run method. Set fields override the settings file.
type RunOptions struct {
	ConfigPath string
	CalCheck   bool
	Setups     []string
	JSONLogs   bool
	NoReuse    bool
}

// Summary counts what a run did with its master slots.
type Summary struct {
	Exposures int
	Computed  int
	Loaded    int
	Shared    int
}

// Run reduces the science exposures described by the settings: it classifies the raw frames,
// assigns setups and then resolves every master frame each exposure needs, sharing masters
// between exposures with identical requirement sets.
func (a *App) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	// 1. Load settings
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return Summary{}, zerr.Wrap(err, "failed to load settings")
	}
	applyOptions(settings, opts)

	if settings.JSONLogs {
		if jl, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			jl.SetJSON(true)
		}
	}

	// 2. Load the frame table
	frames, err := a.frames.Load(settings.FrameTable)
	if err != nil {
		return Summary{}, zerr.Wrap(err, "failed to load frame table")
	}

	// 3. Science setup
	rc := domain.NewRunContext(settings)
	a.logger.Info(fmt.Sprintf("starting run %s (%s)", rc.ID, settings.RedName))
	idx, exposures, err := a.science.SetupScience(ctx, rc, frames)
	if errors.Is(err, domain.ErrCalCheckComplete) {
		a.reportPlan(exposures, settings.NDet)
		a.logger.Info("calibration check complete")
		return Summary{Exposures: len(exposures)}, nil
	}
	if err != nil {
		return Summary{}, err
	}

	// 4. Resolve masters
	defer func() {
		_ = a.telemetry.Close()
	}()

	sum := Summary{Exposures: len(exposures)}
	for i, e := range exposures {
		for det := 1; det <= settings.NDet; det++ {
			for _, kind := range domain.MasterKinds {
				if err := a.resolveMaster(ctx, settings, idx, exposures, i, det, kind, &sum); err != nil {
					return sum, errors.Join(domain.ErrReductionFailed, err)
				}
			}
		}
		a.logger.Info(fmt.Sprintf("exposure %d (%s) ready", e.Ordinal, e.Target))
	}

	a.logger.Info(fmt.Sprintf("run %s: %d exposure(s), %d master(s) computed, %d loaded, %d shared",
		rc.ID, sum.Exposures, sum.Computed, sum.Loaded, sum.Shared))
	return sum, nil
}

func applyOptions(s *domain.Settings, opts RunOptions) {
	if opts.CalCheck {
		s.CalCheck = true
	}
	if len(opts.Setups) > 0 {
		s.Setups = opts.Setups
	}
	if opts.JSONLogs {
		s.JSONLogs = true
	}
	if opts.NoReuse {
		s.ReuseMasters = false
	}
}

//nolint:cyclop // resolution order is slot, store, build
func (a *App) resolveMaster(
	ctx context.Context,
	settings *domain.Settings,
	idx *domain.FrameIndex,
	exposures []*domain.ScienceExposure,
	i, det int,
	kind domain.MasterKind,
	sum *Summary,
) (err error) {
	e := exposures[i]
	set := e.Requirement(kind.Requirement())
	if len(set) == 0 {
		return nil
	}

	ctx, v := a.telemetry.Record(ctx, fmt.Sprintf("exposure %d det %02d %s", e.Ordinal, det, kind.Name()))
	defer func() {
		v.Complete(err)
	}()

	if e.HasMaster(kind, det) {
		v.Cached()
		sum.Shared++
		return nil
	}

	req := domain.MasterRequest{Kind: kind, Detector: det, Setup: e.SetupID, Set: set}
	fp, err := a.hasher.Fingerprint(settings.PixelDir, idx, set)
	if err != nil {
		return err
	}
	key := req.Key(fp)

	var master *domain.MasterFrame
	if settings.ReuseMasters {
		master, err = a.store.Get(key)
		if err != nil {
			return err
		}
	}

	if master != nil {
		v.Cached()
		v.Log(domain.LogLevelInfo, "loaded from master store")
		sum.Loaded++
	} else {
		data, err := a.builder.Build(ctx, settings.PixelDir, idx, req)
		if err != nil {
			return err
		}
		master = &domain.MasterFrame{
			Kind:        kind,
			Detector:    det,
			Setup:       e.SetupID,
			Fingerprint: key.Fingerprint,
			Data:        data,
		}
		if err := a.store.Put(master); err != nil {
			return err
		}
		sum.Computed++
	}

	if err := e.SetMaster(master, kind, det); err != nil {
		return err
	}
	return masters.UpdateMasters(a.logger, exposures, i, det, kind.Type, kind.Subtype)
}

func (a *App) reportPlan(exposures []*domain.ScienceExposure, ndet int) {
	for det := 1; det <= ndet; det++ {
		for _, p := range masters.Plan(exposures, det) {
			e := exposures[p.Exposure]
			var what string
			switch {
			case p.Empty:
				what = "no frames"
			case p.Shared():
				what = fmt.Sprintf("shared from exposure %d %s", p.Source, p.SourceKind.Name())
			default:
				what = "computed"
			}
			a.logger.Info(fmt.Sprintf("exposure %d (%s) det %02d %s: %s", e.Ordinal, e.Target, det, p.Kind.Name(), what))
		}
	}
}

// Extractor loads the settings at configPath and returns an extractor using their count limit
// and parallelism.
func (a *App) Extractor(configPath string) (*extract.Extractor, error) {
	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	return extract.NewExtractor(a.logger, settings), nil
}

// Clean removes the master frame store.
func (a *App) Clean(_ context.Context) error {
	path := domain.DefaultMastersPath()
	a.logger.Info("removing master frame store...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove master frame store"), "path", path)
	}
	a.logger.Info("removed master frame store")
	return nil
}
