package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/cvrptw/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, int64(config.DefaultCapacityPenalty), cfg.CapacityPenalty)
	assert.Equal(t, int64(config.DefaultTimeWarpPenalty), cfg.TimeWarpPenalty)
	assert.Equal(t, config.DefaultCheckEvery, cfg.CheckEvery)
	require.NoError(t, cfg.Validate())
}

func TestNew_AppliesOptionsOverDefaults(t *testing.T) {
	cfg := config.New(
		config.WithCapacityPenalty(20),
		config.WithTimeWarpPenalty(6),
		config.WithCheckEvery(512),
	)

	assert.Equal(t, int64(20), cfg.CapacityPenalty)
	assert.Equal(t, int64(6), cfg.TimeWarpPenalty)
	assert.Equal(t, 512, cfg.CheckEvery)
}

func TestWithCapacityPenalty_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithCapacityPenalty(0) })
	assert.Panics(t, func() { config.WithCapacityPenalty(-1) })
}

func TestWithTimeWarpPenalty_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithTimeWarpPenalty(0) })
}

func TestWithCheckEvery_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithCheckEvery(0) })
}

func TestLoad_ParsesYAMLAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacityPenalty: 20\ntimeWarpPenalty: 6\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(20), cfg.CapacityPenalty)
	assert.Equal(t, int64(6), cfg.TimeWarpPenalty)
	// checkEvery is absent from the file; Load seeds defaults before
	// unmarshalling so the zero value never survives into the result.
	assert.Equal(t, config.DefaultCheckEvery, cfg.CheckEvery)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacityPenalty: -1\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewPenaltyManager_UsesConfiguredCoefficients(t *testing.T) {
	cfg := config.New(config.WithCapacityPenalty(20), config.WithTimeWarpPenalty(6))
	mgr := cfg.NewPenaltyManager()

	assert.Equal(t, int64(20), mgr.CapacityCoeff())
	assert.Equal(t, int64(6), mgr.TimeWarpCoeff())
}
