package domain

import "path/filepath"

const (
	// WorkDirName is the name of the internal working directory.
	WorkDirName = ".specred"

	// MastersDirName is the name of the master frame store directory.
	MastersDirName = "masters"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = "specred.yaml"

	// SetupFileExt is the extension of the setup file written next to the run name.
	SetupFileExt = ".setup"

	// GroupFileExt is the extension of the group file written next to the run name.
	GroupFileExt = ".group"

	// PixelFileExt is the extension of raw pixel array files.
	PixelFileExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultMastersPath returns the default path for the master frame store.
// It joins .specred and masters.
func DefaultMastersPath() string {
	return filepath.Join(WorkDirName, MastersDirName)
}

// SetupFilePath returns the setup file path for a run name.
func SetupFilePath(redName string) string {
	return redName + SetupFileExt
}

// GroupFilePath returns the group file path for a run name.
func GroupFilePath(redName string) string {
	return redName + GroupFileExt
}

// PixelFilePath returns the path of the pixel file of a raw frame.
func PixelFilePath(pixelDir, filename string) string {
	return filepath.Join(pixelDir, filename+PixelFileExt)
}
