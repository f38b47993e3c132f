package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, physics.DefaultParams(), cfg.Physics)
	assert.Equal(t, physics.DefaultSpawnParams(), cfg.Spawn)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
name: custom
seed: 9
width: 800
physics:
  gravity: 400
taps:
  - {tick: 3, x: 10, y: 20}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, 400.0, cfg.Physics.Gravity)
	assert.Equal(t, physics.DefaultBounceFactor, cfg.Physics.BounceFactor)
	assert.Equal(t, []TapConfig{{Tick: 3, X: 10, Y: 20}}, cfg.Taps)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Resolve("moon", "")
	require.NoError(t, err)
	assert.Equal(t, GetPreset("moon"), cfg)

	_, err = Resolve("nope", "")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0644))
	cfg, err = Resolve("", path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Name)

	_, err = Resolve("moon", path)
	assert.ErrorIs(t, err, ErrConflictingSources)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("rain")

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"zero dt", func(c *Config) { c.Physics.Dt = 0 }, sim.ErrInvalidDt},
		{"zero ticks", func(c *Config) { c.Ticks = 0 }, sim.ErrInvalidTicks},
		{"negative width", func(c *Config) { c.Width = -1 }, sim.ErrInvalidBounds},
		{"zero radius", func(c *Config) { c.Spawn.MinRadius = 0 }, sim.ErrInvalidSpawn},
		{"inverted radius", func(c *Config) { c.Spawn.MaxRadius = 10 }, sim.ErrInvalidSpawn},
		{"no balls", func(c *Config) { c.Spawn.MinCount = 0 }, sim.ErrInvalidSpawn},
		{"inverted count", func(c *Config) { c.Spawn.MaxCount = 2 }, sim.ErrInvalidSpawn},
		{"negative speed", func(c *Config) { c.Spawn.MaxSpeedX = -1 }, sim.ErrInvalidSpawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	zero := DefaultConfig()
	zero.Width, zero.Height = 0, 0
	assert.NoError(t, zero.Validate(), "zero bounds are allowed")
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Taps = []TapConfig{{Tick: 4, X: 1, Y: 2}}

	sc := cfg.SimConfig()

	assert.Equal(t, cfg.Ticks, sc.Ticks)
	assert.Equal(t, cfg.Physics, sc.Params)
	require.Len(t, sc.Taps, 1)
	assert.Equal(t, 4, sc.Taps[0].Tick)
	assert.Equal(t, 1.0, sc.Taps[0].Point.X)
	assert.Equal(t, cfg.Width, cfg.World().Bounds.Width)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("moon")
	require.NotNil(t, cfg)
	assert.Equal(t, 130.0, cfg.Physics.Gravity)

	cfg.Physics.Gravity = 1
	assert.Equal(t, 130.0, GetPreset("moon").Physics.Gravity, "presets are copied")

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	names := ListPresets()

	assert.Equal(t, []string{"bouncy", "default", "drop", "moon", "pile", "rain"}, names)
	for _, name := range names {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}
}
