package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsContent = `version: "1"
run:
  redname: night1
  frames: frames.yaml
  pixels: raw
`

const framesContent = `frames:
  - filename: sci1.fits
    target: M31
    types: [science]
    mjd: 60000.10
    detectors: [{disperser: "600/5000", decker: long_1.0}]
  - filename: sci2.fits
    target: M31
    types: [science]
    mjd: 60000.12
    detectors: [{disperser: "600/5000", decker: long_1.0}]
  - filename: arc1.fits
    types: [arc]
    mjd: 60000.05
    detectors: [{disperser: "600/5000", decker: long_1.0}]
  - filename: bias1.fits
    types: [bias]
    mjd: 60000.01
    detectors: [{disperser: "600/5000", decker: long_1.0}]
  - filename: flat1.fits
    types: [trace, pixelflat]
    mjd: 60000.02
    detectors: [{disperser: "600/5000", decker: long_1.0}]
`

const pixelContent = `{"detectors": [{"detector": 1, "rows": 2, "cols": 2, "data": [1, 2, 3, 4]}]}`

func writeNight(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "specred.yaml"), []byte(settingsContent), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frames.yaml"), []byte(framesContent), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "raw"), 0o750))
	for _, name := range []string{"sci1", "sci2", "arc1", "bias1", "flat1"} {
		path := filepath.Join(dir, "raw", name+".fits.json")
		require.NoError(t, os.WriteFile(path, []byte(pixelContent), 0o600))
	}
}

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	writeNight(t, tmpDir)
	t.Chdir(tmpDir)

	os.Args = []string{"specred", "run"}
	assert.Equal(t, 0, run())

	_, err := os.Stat(filepath.Join(tmpDir, "night1.setup"))
	require.NoError(t, err, "setup file written")
	_, err = os.Stat(filepath.Join(tmpDir, "night1.group"))
	require.NoError(t, err, "group file written")

	entries, err := os.ReadDir(filepath.Join(tmpDir, ".specred", "masters"))
	require.NoError(t, err)
	assert.Len(t, entries, 4, "bias, readnoise, arc and one flat are computed")
}

func TestRun_CalCheck(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	writeNight(t, tmpDir)
	t.Chdir(tmpDir)

	os.Args = []string{"specred", "run", "--calcheck"}
	assert.Equal(t, 0, run())

	_, err := os.Stat(filepath.Join(tmpDir, "night1.setup"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, ".specred"))
	assert.True(t, os.IsNotExist(err), "no masters are built in calibration-check mode")
}

func TestRun_MissingFrameTable(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "specred.yaml"), []byte(settingsContent), 0o600))
	t.Chdir(tmpDir)

	os.Args = []string{"specred", "run"}
	assert.Equal(t, 1, run())
}

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"specred", "version"}
	assert.Equal(t, 0, run())
}
