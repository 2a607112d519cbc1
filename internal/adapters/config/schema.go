package config

// Settingsfile represents the structure of the specred.yaml settings file.
type Settingsfile struct {
	Version      string                     `yaml:"version"`
	Run          RunDTO                     `yaml:"run"`
	Reduce       ReduceDTO                  `yaml:"reduce"`
	Mosaic       MosaicDTO                  `yaml:"mosaic"`
	Calibrations map[string]*CalibrationDTO `yaml:"calibrations"`
	Extraction   ExtractionDTO              `yaml:"extraction"`
	Output       OutputDTO                  `yaml:"output"`
}

// RunDTO holds the run-level settings.
type RunDTO struct {
	CalCheck bool   `yaml:"calcheck"`
	RedName  string `yaml:"redname"`
	Frames   string `yaml:"frames"`
	Pixels   string `yaml:"pixels"`
}

// ReduceDTO holds the reduction scope settings.
type ReduceDTO struct {
	Setup   []string   `yaml:"setup"`
	Masters MastersDTO `yaml:"masters"`
}

// MastersDTO holds the master frame settings.
type MastersDTO struct {
	Reuse bool `yaml:"reuse"`
}

// MosaicDTO describes the detector mosaic.
type MosaicDTO struct {
	NDet *int `yaml:"ndet"`
}

// CalibrationDTO limits the frames matched for one calibration type.
type CalibrationDTO struct {
	Number       int     `yaml:"number"`
	MaxDeltaDays float64 `yaml:"max_dt_days"`
}

// ExtractionDTO holds the extraction settings.
type ExtractionDTO struct {
	CountLimit  *float64 `yaml:"count_limit"`
	Parallelism *int     `yaml:"parallelism"`
}

// OutputDTO holds the output settings.
type OutputDTO struct {
	JSONLogs bool `yaml:"json_logs"`
}
