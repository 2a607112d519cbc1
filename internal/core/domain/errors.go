package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingMetadata is returned when a raw frame lacks a field required for classification.
	ErrMissingMetadata = zerr.New("missing required frame metadata")

	// ErrUnclassifiedFrame is returned when a frame cannot be assigned a frame type and
	// unclassifiable frames are not being bucketed as unknown.
	ErrUnclassifiedFrame = zerr.New("frame could not be classified")

	// ErrNoSetupFile is returned when a setup restriction is requested but no setup file exists.
	ErrNoSetupFile = zerr.New("no setup file provided, cannot restrict reduction to setups")

	// ErrSetupMismatch is returned when the setups computed for this run disagree with the setup file.
	ErrSetupMismatch = zerr.New("existing setup file does not match the computed setups, regenerate the setup file")

	// ErrNoScienceFrames is returned when no science exposure survives classification and filtering.
	ErrNoScienceFrames = zerr.New("no science frames to reduce")

	// ErrCalCheckComplete is returned by the science setup phase in calibration-check mode.
	// It signals a successful early exit, not a failure.
	ErrCalCheckComplete = zerr.New("calibration check complete")

	// ErrUnknownCalibType is returned when a master frame update names an unrecognized type or subtype.
	ErrUnknownCalibType = zerr.New("unrecognized calibration type")

	// ErrMasterSlotOccupied is returned when a master frame is assigned to a slot that already holds one.
	ErrMasterSlotOccupied = zerr.New("master frame already set")

	// ErrMasterMissing is returned when a master frame is requested from an empty slot.
	ErrMasterMissing = zerr.New("master frame not set")

	// ErrEmptyRequirementSet is returned when a master frame is requested for an empty requirement set.
	ErrEmptyRequirementSet = zerr.New("no calibration frames matched")

	// ErrTraceMismatch is returned when a traced object does not match its spectrum container.
	ErrTraceMismatch = zerr.New("bad match to specobj in boxcar")

	// ErrBoxcarFilled is returned when boxcar results are written twice for one object.
	ErrBoxcarFilled = zerr.New("boxcar extraction already populated")

	// ErrShapeMismatch is returned when extraction inputs do not share the detector shape.
	ErrShapeMismatch = zerr.New("array shape mismatch")

	// ErrProfileUnavailable is returned when too few rows have enough counts to build a spatial profile.
	ErrProfileUnavailable = zerr.New("spatial profile unavailable")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrConfigInvalid is returned when a settings value is out of range.
	ErrConfigInvalid = zerr.New("invalid settings value")

	// ErrFrameTableReadFailed is returned when the frame table cannot be read.
	ErrFrameTableReadFailed = zerr.New("failed to read frame table")

	// ErrFrameTableParseFailed is returned when the frame table cannot be parsed.
	ErrFrameTableParseFailed = zerr.New("failed to parse frame table")

	// ErrSetupReadFailed is returned when the setup file cannot be read.
	ErrSetupReadFailed = zerr.New("failed to read setup file")

	// ErrSetupWriteFailed is returned when the setup or group file cannot be written.
	ErrSetupWriteFailed = zerr.New("failed to write setup file")

	// ErrStoreCreateFailed is returned when the master frame store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create master frame store directory")

	// ErrStoreReadFailed is returned when a stored master frame cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read master frame")

	// ErrStoreUnmarshalFailed is returned when a stored master frame cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal master frame")

	// ErrStoreMarshalFailed is returned when a master frame cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal master frame")

	// ErrStoreWriteFailed is returned when a master frame cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write master frame")

	// ErrPixelReadFailed is returned when raw pixel data cannot be read.
	ErrPixelReadFailed = zerr.New("failed to read raw pixel data")

	// ErrMasterBuildFailed is returned when a master frame cannot be built from its raw frames.
	ErrMasterBuildFailed = zerr.New("failed to build master frame")

	// ErrReductionFailed wraps any fatal error raised while reducing science exposures.
	ErrReductionFailed = zerr.New("reduction failed")
)
