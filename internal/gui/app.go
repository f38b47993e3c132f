package gui

import (
	"math/rand"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
	"go.uber.org/zap"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const maxTelemetry = 200

// App owns the world for a windowed session. Each frame it reads the input,
// resizes the world to the window, advances one tick and draws.
type App struct {
	Name    string
	World   world.World
	Params  physics.Params
	Spawner *physics.Spawner
	Running bool

	script       []sim.Tap
	pending      []sim.Tap
	scriptBounds world.Bounds
	telemetry    []float64
	log          *zap.Logger
}

// Input is one frame's worth of user intent.
type Input struct {
	Width, Height float64
	SpawnAt       *vmath.Vec2
	TogglePause   bool
	Reset         bool
	Clear         bool
	SpawnCentre   bool
}

func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	taps := cfg.SimConfig().Taps
	sort.SliceStable(taps, func(i, j int) bool { return taps[i].Tick < taps[j].Tick })
	return &App{
		Name:         cfg.Name,
		World:        cfg.World(),
		Params:       cfg.Physics,
		Spawner:      physics.NewSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.Spawn),
		Running:      true,
		script:       taps,
		pending:      taps,
		scriptBounds: world.Bounds{Width: cfg.Width, Height: cfg.Height},
		telemetry:    make([]float64, 0, maxTelemetry),
		log:          log,
	}
}

// Run opens a resizable window sized to cfg and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "ballsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(cfg, log)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Apply(readInput())
		a.Draw()
	}
}

func readInput() Input {
	in := Input{
		Width:       float64(rl.GetScreenWidth()),
		Height:      float64(rl.GetScreenHeight()),
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
		Reset:       rl.IsKeyPressed(rl.KeyR),
		Clear:       rl.IsKeyPressed(rl.KeyC),
		SpawnCentre: rl.IsKeyPressed(rl.KeyS),
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		m := rl.GetMousePosition()
		p := vmath.V(float64(m.X), float64(m.Y))
		in.SpawnAt = &p
	}
	return in
}

// Apply handles one frame of input and, unless paused, advances the world.
func (a *App) Apply(in Input) {
	if in.Width > 0 && in.Height > 0 {
		a.World = a.World.WithBounds(in.Width, in.Height)
	}
	if in.TogglePause {
		a.Running = !a.Running
	}
	if in.Reset {
		a.World = a.World.Reset()
		a.pending = a.script
		a.telemetry = a.telemetry[:0]
		a.Running = true
		a.log.Info("reset", zap.String("scenario", a.Name))
	}
	if in.Clear {
		a.World.Balls = nil
	}
	if in.SpawnCentre {
		a.spawn(a.World.Center())
	}
	if in.SpawnAt != nil {
		a.spawn(*in.SpawnAt)
	}
	if !a.Running {
		return
	}

	for len(a.pending) > 0 && a.pending[0].Tick <= a.World.Tick {
		a.spawn(a.scriptPoint(a.pending[0].Point))
		a.pending = a.pending[1:]
	}
	a.World = a.World.Step(a.Params)

	a.telemetry = append(a.telemetry, a.World.KineticEnergy())
	if len(a.telemetry) > maxTelemetry {
		a.telemetry = a.telemetry[1:]
	}
}

func (a *App) spawn(at vmath.Vec2) {
	batch := a.Spawner.Spawn(at)
	a.World = a.World.Append(batch)
	a.log.Debug("spawn",
		zap.Int("tick", a.World.Tick),
		zap.Float64("x", at.X),
		zap.Float64("y", at.Y),
		zap.Int("count", len(batch)))
}

// scriptPoint rescales a scripted tap from the configured size to the
// current window.
func (a *App) scriptPoint(p vmath.Vec2) vmath.Vec2 {
	if a.scriptBounds.Width <= 0 || a.scriptBounds.Height <= 0 {
		return p
	}
	return vmath.V(
		p.X*a.World.Bounds.Width/a.scriptBounds.Width,
		p.Y*a.World.Bounds.Height/a.scriptBounds.Height,
	)
}
