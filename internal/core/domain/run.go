package domain

import (
	"slices"

	"github.com/google/uuid"
)

// RunContext is the mutable state of one reduction run. It is passed explicitly through the
// pipeline stages instead of living in package globals.
type RunContext struct {
	ID       uuid.UUID
	Settings *Settings
	// BadToUnknown buckets unclassifiable frames as unknown instead of failing.
	BadToUnknown bool
	// SetupFileExists reports whether a setup file from a previous run was found.
	SetupFileExists bool
	SetupFile       string
	// PriorSetups is the setup dict loaded from the setup file, empty when none exists.
	PriorSetups SetupDict
	// Setups is the working setup dict built during this run.
	Setups SetupDict
	Groups GroupRecords
}

// NewRunContext creates the run state for the given settings.
// Calibration-check mode buckets unclassifiable frames as unknown.
func NewRunContext(settings *Settings) *RunContext {
	return &RunContext{
		ID:           uuid.New(),
		Settings:     settings,
		BadToUnknown: settings.CalCheck,
		PriorSetups:  SetupDict{},
		Setups:       SetupDict{},
		Groups:       GroupRecords{},
	}
}

// Restricted reports whether reduction is limited to a subset of setups.
func (rc *RunContext) Restricted() bool {
	return len(rc.Settings.Setups) > 0
}

// SetupAllowed reports whether exposures of the setup should be reduced.
func (rc *RunContext) SetupAllowed(id string) bool {
	return !rc.Restricted() || slices.Contains(rc.Settings.Setups, id)
}
