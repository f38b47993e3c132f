package config

import "sort"

var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"drop": func() *Config {
		c := DefaultConfig()
		c.Name = "drop"
		c.Spawn.MinCount, c.Spawn.MaxCount = 1, 1
		c.Taps = []TapConfig{{Tick: 0, X: c.Width / 2, Y: 50}}
		return c
	},
	"pile": func() *Config {
		c := DefaultConfig()
		c.Name = "pile"
		c.Ticks = 1200
		c.Taps = nil
		for i := 0; i < 10; i++ {
			c.Taps = append(c.Taps, TapConfig{Tick: i * 20, X: c.Width / 2, Y: c.Height / 3})
		}
		return c
	},
	"rain": func() *Config {
		c := DefaultConfig()
		c.Name = "rain"
		c.Ticks = 1800
		c.Taps = nil
		for i := 0; i < 12; i++ {
			x := c.Width * (float64(i%6) + 0.5) / 6
			c.Taps = append(c.Taps, TapConfig{Tick: i * 45, X: x, Y: 60})
		}
		return c
	},
	"bouncy": func() *Config {
		c := DefaultConfig()
		c.Name = "bouncy"
		c.Ticks = 1200
		c.Physics.BounceFactor = 0.9
		c.Physics.Restitution = 0.9
		c.Physics.AirFriction = 0.995
		c.Physics.MinimumVelocity = 2
		return c
	},
	"moon": func() *Config {
		c := DefaultConfig()
		c.Name = "moon"
		c.Ticks = 1800
		c.Physics.Gravity = 130
		return c
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
