package ports

import "go.trai.ch/specred/internal/core/domain"

// SetupStore persists the setup registry between runs. Files are named after the run name.
//
//go:generate mockgen -source=setup_store.go -destination=mocks/mock_setup_store.go -package=mocks
type SetupStore interface {
	// SetupFile returns the setup file path of the run and whether it exists.
	SetupFile(redName string) (string, bool)

	// Load reads the setup dict from the setup file.
	Load(redName string) (domain.SetupDict, error)

	// Save writes the setup dict to the setup file.
	Save(redName string, setups domain.SetupDict) error
}

// GroupWriter persists the group records of a run.
type GroupWriter interface {
	// GroupFile returns the group file path of the run.
	GroupFile(redName string) string

	// SaveGroups writes the group records to the group file.
	SaveGroups(redName string, groups domain.GroupRecords) error
}
