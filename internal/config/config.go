package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName   = "default"
	DefaultTicks  = 600
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
	DefaultSeed   = 1
)

var (
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrConflictingSources indicates both a preset and a config file were
	// named.
	ErrConflictingSources = errors.New("config: preset and config file are mutually exclusive")
)

type Config struct {
	Name          string              `yaml:"name"`
	Seed          int64               `yaml:"seed"`
	Ticks         int                 `yaml:"ticks"`
	Width         float64             `yaml:"width"`
	Height        float64             `yaml:"height"`
	ValidateState bool                `yaml:"validate_state"`
	Physics       physics.Params      `yaml:"physics"`
	Spawn         physics.SpawnParams `yaml:"spawn"`
	Taps          []TapConfig         `yaml:"taps"`
}

// TapConfig schedules a spawn at (X, Y) before the given tick.
type TapConfig struct {
	Tick int     `yaml:"tick"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:          DefaultName,
		Seed:          DefaultSeed,
		Ticks:         DefaultTicks,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ValidateState: true,
		Physics:       physics.DefaultParams(),
		Spawn:         physics.DefaultSpawnParams(),
		Taps: []TapConfig{
			{Tick: 0, X: DefaultWidth / 2, Y: DefaultHeight / 4},
		},
	}
}

// Load reads a YAML file over DefaultConfig, so omitted keys keep defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the scenario named by at most one of preset and path. With
// neither it returns DefaultConfig.
func Resolve(preset, path string) (*Config, error) {
	switch {
	case preset != "" && path != "":
		return nil, fmt.Errorf("%w: --preset %s, --config %s", ErrConflictingSources, preset, path)
	case path != "":
		return Load(path)
	case preset != "":
		cfg := GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
		return cfg, nil
	}
	return DefaultConfig(), nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the physics core assumes but never checks.
func (c *Config) Validate() error {
	if err := sim.ValidateConfig(c.SimConfig()); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 || math.IsNaN(c.Width) || math.IsNaN(c.Height) {
		return fmt.Errorf("%w, got %gx%g", sim.ErrInvalidBounds, c.Width, c.Height)
	}
	s := c.Spawn
	switch {
	case s.MinCount < 1:
		return fmt.Errorf("%w: min_count %d < 1", sim.ErrInvalidSpawn, s.MinCount)
	case s.MaxCount < s.MinCount:
		return fmt.Errorf("%w: max_count %d < min_count %d", sim.ErrInvalidSpawn, s.MaxCount, s.MinCount)
	case s.MinRadius <= 0:
		return fmt.Errorf("%w: min_radius must be positive", sim.ErrInvalidSpawn)
	case s.MaxRadius < s.MinRadius:
		return fmt.Errorf("%w: max_radius < min_radius", sim.ErrInvalidSpawn)
	case s.MaxSpeedX < 0 || s.MaxUpSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", sim.ErrInvalidSpawn)
	}
	return nil
}

func (c *Config) SimConfig() sim.Config {
	taps := make([]sim.Tap, len(c.Taps))
	for i, t := range c.Taps {
		taps[i] = sim.Tap{Tick: t.Tick, Point: vmath.V(t.X, t.Y)}
	}
	return sim.Config{
		Ticks:         c.Ticks,
		Params:        c.Physics,
		Taps:          taps,
		ValidateState: c.ValidateState,
	}
}

func (c *Config) World() world.World {
	return world.New(c.Width, c.Height)
}
