package gui

import (
	"image/color"
	"testing"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	cfg := config.DefaultConfig()
	cfg.Spawn.MinCount, cfg.Spawn.MaxCount = 2, 2
	cfg.Taps = nil
	return NewApp(cfg, nil)
}

func TestApp_ResizesToWindow(t *testing.T) {
	a := newTestApp()
	a.Apply(Input{Width: 800, Height: 600})

	assert.Equal(t, world.Bounds{Width: 800, Height: 600}, a.World.Bounds)
	assert.Equal(t, 1, a.World.Tick)

	// a minimized window reports zero and keeps the last bounds
	a.Apply(Input{})
	assert.Equal(t, world.Bounds{Width: 800, Height: 600}, a.World.Bounds)
}

func TestApp_ClickSpawns(t *testing.T) {
	a := newTestApp()
	at := vmath.V(300, 200)

	a.Apply(Input{Width: 1280, Height: 720, SpawnAt: &at})

	require.Equal(t, 2, a.World.Len())
	assert.Len(t, a.telemetry, 1)
}

func TestApp_PauseResetClear(t *testing.T) {
	a := newTestApp()
	a.Apply(Input{SpawnCentre: true})
	require.Equal(t, 2, a.World.Len())

	a.Apply(Input{TogglePause: true})
	assert.False(t, a.Running)
	tick := a.World.Tick
	a.Apply(Input{})
	assert.Equal(t, tick, a.World.Tick)

	a.Apply(Input{Clear: true})
	assert.Equal(t, 0, a.World.Len())

	a.Apply(Input{Reset: true})
	assert.True(t, a.Running)
	assert.Equal(t, 1, a.World.Tick)
	assert.Len(t, a.telemetry, 1)
}

func TestApp_ReplaysScriptScaled(t *testing.T) {
	cfg := config.GetPreset("drop")
	cfg.Spawn.MaxSpeedX = 0
	a := NewApp(cfg, nil)

	a.Apply(Input{Width: cfg.Width / 2, Height: cfg.Height / 2})

	require.Equal(t, 1, a.World.Len())
	assert.InDelta(t, cfg.Width/4, a.World.Balls[0].Position.X, 1e-9)
}

func TestTelemetryPoints(t *testing.T) {
	assert.Nil(t, telemetryPoints([]float64{1}, 0, 0, 100, 10))

	pts := telemetryPoints([]float64{0, 5, 10}, 10, 20, 90, 60)
	require.Len(t, pts, 3)
	assert.Equal(t, float32(10), pts[0].X)
	assert.Equal(t, float32(80), pts[0].Y)
	assert.Equal(t, float32(50), pts[1].Y)
	assert.Equal(t, float32(20), pts[2].Y)

	flat := telemetryPoints([]float64{3, 3}, 0, 0, 10, 10)
	assert.Equal(t, float32(10), flat[1].Y)
}

func TestToColor(t *testing.T) {
	c := toColor(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, uint8(1), c.R)
	assert.Equal(t, uint8(255), c.A)
}
