package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "pendulum", cfg.Model)
	assert.Equal(t, DefaultGconst, cfg.Gconst)
	assert.Equal(t, DefaultBodies, cfg.Bodies)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	in := &Config{
		Model:     "mascon",
		Gconst:    1.5,
		Masses:    []float64{1.1},
		Positions: [][]float64{{1, 2, 3}},
		Omega:     []float64{0, 0, 3},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.Model, out.Model)
	assert.Equal(t, in.Gconst, out.Gconst)
	assert.Equal(t, in.Positions, out.Positions)
	assert.Equal(t, in.Omega, out.Omega)
}

func TestBuildSystem(t *testing.T) {
	cfg := DefaultConfig()
	sys, err := cfg.BuildSystem()
	require.NoError(t, err)
	assert.Equal(t, 2, sys.StateDim())

	cfg = &Config{Model: "nbody", Bodies: 3, Gconst: 1}
	sys, err = cfg.BuildSystem()
	require.NoError(t, err)
	assert.Equal(t, 18, sys.StateDim())

	cfg = &Config{Model: "rotating", Omega: []float64{0, 0, 3}}
	sys, err = cfg.BuildSystem()
	require.NoError(t, err)
	assert.Equal(t, 6, sys.StateDim())

	cfg = &Config{Model: "warp_drive"}
	_, err = cfg.BuildSystem()
	require.Error(t, err)
}

func TestBuildEnergyAndPotential(t *testing.T) {
	cfg := &Config{
		Model:     "fixed_centres",
		Gconst:    1.5,
		Masses:    []float64{1.1},
		Positions: [][]float64{{1, 2, 3}},
	}

	pot, err := cfg.BuildPotential()
	require.NoError(t, err)
	en, err := cfg.BuildEnergy()
	require.NoError(t, err)
	assert.Greater(t, len(en.String()), len(pot.String()))

	// the pendulum has an energy but no standalone potential
	cfg = DefaultConfig()
	_, err = cfg.BuildEnergy()
	require.NoError(t, err)
	_, err = cfg.BuildPotential()
	require.Error(t, err)
}

func TestBuildSystemValidationPropagates(t *testing.T) {
	cfg := &Config{
		Model:     "mascon",
		Gconst:    1,
		Masses:    []float64{1},
		Positions: [][]float64{{1, 2, 3, 4}},
	}
	_, err := cfg.BuildSystem()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the number of columns must be 3, but it is 4 instead")
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "earth")
	require.NotNil(t, cfg)
	assert.Equal(t, 9.81, cfg.Gconst)

	assert.Nil(t, GetPreset("pendulum", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "earth"))

	assert.NotEmpty(t, ListPresets("nbody"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestPresetsBuild(t *testing.T) {
	for modelName, group := range Presets {
		for name, cfg := range group {
			_, err := cfg.BuildSystem()
			assert.NoError(t, err, "%s/%s", modelName, name)
		}
	}
}
