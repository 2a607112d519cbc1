package domain

// CalibrationSelection limits which matched frames enter a requirement set.
type CalibrationSelection struct {
	// Number is the maximum number of frames; zero keeps every match.
	Number int
	// MaxDeltaDays is the largest allowed |MJD difference| to the science frame; zero disables the cut.
	MaxDeltaDays float64
}

// Settings is the validated reduction configuration.
type Settings struct {
	CalCheck bool
	// RedName is the run name; setup and group files are named after it.
	RedName string
	// FrameTable is the path of the raw frame metadata table.
	FrameTable string
	// PixelDir holds the raw pixel arrays.
	PixelDir string
	// Setups restricts reduction to these setup ids when non-empty.
	Setups       []string
	ReuseMasters bool
	NDet         int
	Calibrations map[RequirementKind]CalibrationSelection
	CountLimit   float64
	Parallelism  int
	JSONLogs     bool
}

// Default settings values.
const (
	DefaultRedName     = "specred"
	DefaultFrameTable  = "frames.yaml"
	DefaultPixelDir    = "raw"
	DefaultNDet        = 1
	DefaultCountLimit  = 15.0
	DefaultParallelism = 4
)

// DefaultSettings returns the settings used when the settings file omits a value.
func DefaultSettings() *Settings {
	cal := make(map[RequirementKind]CalibrationSelection, len(RequirementKinds))
	for _, k := range RequirementKinds {
		cal[k] = CalibrationSelection{}
	}
	return &Settings{
		RedName:      DefaultRedName,
		FrameTable:   DefaultFrameTable,
		PixelDir:     DefaultPixelDir,
		NDet:         DefaultNDet,
		Calibrations: cal,
		CountLimit:   DefaultCountLimit,
		Parallelism:  DefaultParallelism,
	}
}
