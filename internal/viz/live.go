package viz

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/vmath"
	"github.com/san-kum/ballsim/internal/world"
	"go.uber.org/zap"
)

const (
	// DefaultScale is the number of world units per braille dot.
	DefaultScale = 8.0

	historyCapacity = 300
	frameInterval   = 16 * time.Millisecond
	statsWidth      = 40
	canvasPadX      = 2
	canvasPadY      = 1
	minCols         = 10
	minRows         = 4
)

type TickMsg time.Time

// Options configures a live Model.
type Options struct {
	Name    string
	Params  physics.Params
	Spawner *physics.Spawner
	// Taps are replayed as the clock reaches them. Their points are given
	// in ScriptBounds and rescaled to whatever the terminal allows.
	Taps         []sim.Tap
	ScriptBounds world.Bounds
	Scale        float64
	Log          *zap.Logger
}

// Model drives a world at the terminal's frame rate and renders it on a
// braille canvas. Clicking inside the canvas spawns a batch at the pointer.
type Model struct {
	name         string
	world        world.World
	params       physics.Params
	spawner      *physics.Spawner
	script       []sim.Tap
	pending      []sim.Tap
	scriptBounds world.Bounds
	scale        float64
	canvas       *Canvas
	running      bool
	showHelp     bool
	theme        Theme
	spawned      int

	energyHistory     []float64
	populationHistory []float64

	log *zap.Logger
}

func NewModel(opts Options) Model {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Spawner == nil {
		opts.Spawner = physics.NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())), physics.DefaultSpawnParams())
	}
	script := make([]sim.Tap, len(opts.Taps))
	copy(script, opts.Taps)
	sort.SliceStable(script, func(i, j int) bool { return script[i].Tick < script[j].Tick })

	m := Model{
		name:              opts.Name,
		params:            opts.Params,
		spawner:           opts.Spawner,
		script:            script,
		pending:           script,
		scriptBounds:      opts.ScriptBounds,
		scale:             opts.Scale,
		running:           true,
		theme:             ThemeCyberpunk,
		energyHistory:     make([]float64, 0, historyCapacity),
		populationHistory: make([]float64, 0, historyCapacity),
		log:               opts.Log,
	}
	m.resize(80, 24)
	return m
}

// FromConfig builds a live model that replays cfg's taps with cfg's physics.
func FromConfig(cfg *config.Config, log *zap.Logger) Model {
	return NewModel(Options{
		Name:         cfg.Name,
		Params:       cfg.Physics,
		Spawner:      physics.NewSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.Spawn),
		Taps:         cfg.SimConfig().Taps,
		ScriptBounds: world.Bounds{Width: cfg.Width, Height: cfg.Height},
		Log:          log,
	})
}

func (m Model) World() world.World { return m.world }
func (m Model) Running() bool      { return m.running }

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.showHelp {
			if p, ok := m.cellToWorld(msg.X, msg.Y); ok {
				m.spawn(p)
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "c":
			m.world.Balls = nil
		case "s":
			m.spawn(m.world.Center())
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// resize fits the canvas to a terminal of cols x rows cells and resizes the
// world to match.
func (m *Model) resize(cols, rows int) {
	w := max(cols-statsWidth-2*canvasPadX, minCols)
	h := max(rows-2*canvasPadY, minRows)
	m.canvas = NewCanvas(w, h)
	dw, dh := m.canvas.Dots()
	m.world = m.world.WithBounds(float64(dw)*m.scale, float64(dh)*m.scale)
}

// cellToWorld maps a terminal cell to the world point under its centre.
func (m *Model) cellToWorld(x, y int) (vmath.Vec2, bool) {
	col, row := x-canvasPadX, y-canvasPadY
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return vmath.Vec2{}, false
	}
	return vmath.V((float64(col)+0.5)*2*m.scale, (float64(row)+0.5)*4*m.scale), true
}

func (m *Model) scriptPoint(p vmath.Vec2) vmath.Vec2 {
	if m.scriptBounds.Width <= 0 || m.scriptBounds.Height <= 0 {
		return p
	}
	return vmath.V(
		p.X*m.world.Bounds.Width/m.scriptBounds.Width,
		p.Y*m.world.Bounds.Height/m.scriptBounds.Height,
	)
}

func (m *Model) spawn(at vmath.Vec2) {
	batch := m.spawner.Spawn(at)
	m.world = m.world.Append(batch)
	m.spawned += len(batch)
	m.log.Debug("spawn",
		zap.Int("tick", m.world.Tick),
		zap.Float64("x", at.X),
		zap.Float64("y", at.Y),
		zap.Int("count", len(batch)),
		zap.Int("population", m.world.Len()))
}

// step replays due taps, then advances the world one tick.
func (m *Model) step() {
	for len(m.pending) > 0 && m.pending[0].Tick <= m.world.Tick {
		m.spawn(m.scriptPoint(m.pending[0].Point))
		m.pending = m.pending[1:]
	}
	m.world = m.world.Step(m.params)

	m.energyHistory = appendCapped(m.energyHistory, m.world.KineticEnergy())
	m.populationHistory = appendCapped(m.populationHistory, float64(m.world.Len()))
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) reset() {
	m.world = m.world.Reset()
	m.pending = m.script
	m.spawned = 0
	m.energyHistory = m.energyHistory[:0]
	m.populationHistory = m.populationHistory[:0]
	m.log.Info("reset", zap.String("scenario", m.name))
}

// floorColor marks the bottom dot row, where the world's floor sits.
var floorColor = color.RGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}

func (m *Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Dots()
	m.canvas.DrawLine(0, h-1, w-1, h-1, floorColor)
	for _, b := range m.world.Balls {
		m.canvas.FillCircle(b.Position.X/m.scale, b.Position.Y/m.scale, b.Radius/m.scale, b.Color)
	}
}

func (m Model) View() string {
	m.draw()
	st := newStyles(m.theme)
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.name)) + "\n")
	if m.running {
		s.WriteString(st.running.Render("RUNNING") + "\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(statsWidth-14), asciigraph.Caption("kinetic energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	n := m.world.Len()
	asleep := m.world.Sleeping(m.params)
	ratio := 0.0
	if n > 0 {
		ratio = float64(asleep) / float64(n)
	}
	s.WriteString(st.label.Render("Balls") + st.value.Render(fmt.Sprintf("%d", n)) + "\n")
	s.WriteString(st.label.Render("Asleep") + ProgressBar(ratio, 12, m.theme) + st.value.Render(fmt.Sprintf(" %d", asleep)) + "\n")
	s.WriteString(st.label.Render("Spawned") + st.value.Render(fmt.Sprintf("%d", m.spawned)) + "\n")
	s.WriteString(st.label.Render("Tick") + st.value.Render(fmt.Sprintf("%d", m.world.Tick)) + "\n")
	s.WriteString(st.label.Render("Time") + st.value.Render(fmt.Sprintf("%.2fs", m.world.Time)) + "\n")
	s.WriteString(st.label.Render("Energy") + st.value.Render(fmt.Sprintf("%.0f", m.world.KineticEnergy())) + "\n")
	s.WriteString(st.label.Render("World") + st.value.Render(fmt.Sprintf("%.0fx%.0f", m.world.Bounds.Width, m.world.Bounds.Height)) + "\n")
	s.WriteString(st.label.Render("Pop") + st.value.Render(SparklineChart(m.populationHistory, statsWidth-18)) + "\n")

	s.WriteString(st.help.Render(
		st.key.Render("click") + " spawn  " + st.key.Render("s") + " centre  " + st.key.Render("spc") + " pause\n" +
			st.key.Render("r") + " reset  " + st.key.Render("c") + " clear  " + st.key.Render("?") + " help  " + st.key.Render("q") + " quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Click    - Spawn balls at pointer   ║
║  S        - Spawn balls at centre    ║
║  Space    - Pause/Resume             ║
║  N        - Single step when paused  ║
║  R        - Reset and replay script  ║
║  C        - Clear all balls          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
