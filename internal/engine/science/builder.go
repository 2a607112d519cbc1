// Package science classifies the raw frames of a run and builds its science exposures.
package science

import (
	"context"
	"fmt"

	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/specred/internal/engine/classifier"
	"go.trai.ch/specred/internal/engine/setup"
	"go.trai.ch/zerr"
)

// Builder runs the science setup phase.
type Builder struct {
	log        ports.Logger
	classifier *classifier.Classifier
	registry   *setup.Registry
	matcher    ports.CalibrationMatcher
	setups     ports.SetupStore
	groups     ports.GroupWriter
}

// NewBuilder creates a Builder.
func NewBuilder(
	log ports.Logger,
	cls *classifier.Classifier,
	registry *setup.Registry,
	matcher ports.CalibrationMatcher,
	setups ports.SetupStore,
	groups ports.GroupWriter,
) *Builder {
	return &Builder{
		log:        log,
		classifier: cls,
		registry:   registry,
		matcher:    matcher,
		setups:     setups,
		groups:     groups,
	}
}

// SetupScience classifies frames, matches calibrations, assigns setups and returns one exposure per
// science frame that passes the setup filter. The setup and group files are written or verified
// on the way. In calibration-check mode it returns domain.ErrCalCheckComplete after persisting.
func (b *Builder) SetupScience(
	ctx context.Context,
	rc *domain.RunContext,
	frames []domain.Frame,
) (*domain.FrameIndex, []*domain.ScienceExposure, error) {
	idx, err := b.classifier.Classify(rc, frames)
	if err != nil {
		return nil, nil, err
	}

	if err := b.loadPrior(rc); err != nil {
		return nil, nil, err
	}

	matches, err := b.matcher.Match(idx, rc.Settings.Calibrations)
	if err != nil {
		return nil, nil, err
	}

	var exposures []*domain.ScienceExposure
	for _, sci := range idx.ByType(domain.FrameScience) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		// Skipped frames must not register setups in the working dict.
		id, err := b.registry.InstrSetup(idx, 1, sci, rc.Setups.Clone(), rc.PriorSetups)
		if err != nil {
			return nil, nil, err
		}
		if !rc.SetupAllowed(id) {
			b.log.Info(fmt.Sprintf("skipping %s, setup %s not selected", idx.Filename(sci), id))
			continue
		}

		ids, err := b.registry.GroupIDs(idx, rc.Settings.NDet, sci, rc.Setups, rc.PriorSetups)
		if err != nil {
			return nil, nil, err
		}

		exp := domain.NewScienceExposure(len(exposures), sci, rc.Settings.NDet, matches[sci])
		exp.Target = idx.Target(sci)
		exp.SetupID = id
		exp.GroupKey = domain.GroupKey(ids)
		addToGroup(rc.Groups.Get(exp.GroupKey), idx, exp)

		exposures = append(exposures, exp)
	}

	if err := b.persist(rc); err != nil {
		return nil, nil, err
	}

	if rc.Settings.CalCheck {
		b.log.Info(fmt.Sprintf("setup file: %s", rc.SetupFile))
		b.log.Info(fmt.Sprintf("group file: %s", b.groups.GroupFile(rc.Settings.RedName)))
		return idx, exposures, domain.ErrCalCheckComplete
	}
	if len(exposures) == 0 {
		return nil, nil, domain.ErrNoScienceFrames
	}
	return idx, exposures, nil
}

func (b *Builder) loadPrior(rc *domain.RunContext) error {
	path, exists := b.setups.SetupFile(rc.Settings.RedName)
	rc.SetupFile = path
	rc.SetupFileExists = exists

	if !exists {
		if rc.Restricted() {
			return zerr.With(domain.ErrNoSetupFile, "path", path)
		}
		return nil
	}

	prior, err := b.setups.Load(rc.Settings.RedName)
	if err != nil {
		return err
	}
	rc.PriorSetups = prior
	b.log.Info(fmt.Sprintf("using setup file %s", path))
	return nil
}

// persist writes the setup file on the first run and checks it on later ones.
func (b *Builder) persist(rc *domain.RunContext) error {
	if rc.SetupFileExists {
		if err := setup.Compare(rc.Setups, rc.PriorSetups); err != nil {
			return err
		}
	} else {
		if err := b.setups.Save(rc.Settings.RedName, rc.Setups); err != nil {
			return err
		}
		b.log.Info(fmt.Sprintf("wrote setup file %s", rc.SetupFile))
	}
	return b.groups.SaveGroups(rc.Settings.RedName, rc.Groups)
}

func addToGroup(rec *domain.GroupRecord, idx *domain.FrameIndex, exp *domain.ScienceExposure) {
	sci := exp.ScienceIndex
	rec.AddFile(domain.FrameScience, idx.Filename(sci))
	rec.SciObj = append(rec.SciObj, idx.Target(sci))

	for _, kind := range domain.RequirementKinds {
		ft := kind.SourceFrameType()
		for _, i := range exp.Requirement(kind).Sorted() {
			added := rec.AddFile(ft, idx.Filename(i))
			if added && ft == domain.FrameStandard {
				rec.StdObj = append(rec.StdObj, idx.Target(i))
			}
		}
	}
}
