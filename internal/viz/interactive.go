package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ballsim/internal/config"
	"go.uber.org/zap"
)

var presetInfo = map[string]string{
	"default": "one burst near the top",
	"drop":    "a single ball falls",
	"pile":    "ten bursts stack up",
	"rain":    "bursts across the width",
	"bouncy":  "lively restitution",
	"moon":    "low gravity",
}

const (
	stateMenu = iota
	stateSim
)

// App shows a preset menu and then runs the chosen preset live.
type App struct {
	state, cursor int
	presets       []string
	seed          int64
	width, height int
	live          Model
	log           *zap.Logger
}

// NewApp lists the registered presets. A non-zero seed overrides each
// preset's own.
func NewApp(seed int64, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		presets: config.ListPresets(),
		seed:    seed,
		width:   80,
		height:  24,
		log:     log,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = size.Width, size.Height
	}
	switch a.state {
	case stateMenu:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a.menuKey(key)
		}
		return a, nil
	default:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.state = stateMenu
			return a, nil
		}
		live, cmd := a.live.Update(msg)
		a.live = live.(Model)
		return a, cmd
	}
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		cmd := a.start()
		return a, cmd
	}
	return a, nil
}

func (a *App) start() tea.Cmd {
	cfg := config.GetPreset(a.presets[a.cursor])
	if a.seed != 0 {
		cfg.Seed = a.seed
	}
	a.log.Info("start preset", zap.String("preset", cfg.Name), zap.Int64("seed", cfg.Seed))
	a.live = FromConfig(cfg, a.log)
	a.live.resize(a.width, a.height)
	a.state = stateSim
	return a.live.Init()
}

func (a App) View() string {
	if a.state == stateSim {
		return a.live.View()
	}

	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	b.WriteString("\n\n    " + h.Render("BALLSIM") + "\n    " + sub.Render("bouncing ball sandbox") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range a.presets {
		desc := presetInfo[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	key, hint := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	b.WriteString("\n    " + key.Render("j/k") + hint.Render(" navigate  ") + key.Render("enter") + hint.Render(" start  ") + key.Render("esc") + hint.Render(" back  ") + key.Render("q") + hint.Render(" quit") + "\n")
	return b.String()
}

func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// RunInteractive opens the preset menu.
func RunInteractive(seed int64, log *zap.Logger) error {
	_, err := tea.NewProgram(NewApp(seed, log), programOptions()...).Run()
	return err
}

// RunLive runs cfg directly, skipping the menu.
func RunLive(cfg *config.Config, log *zap.Logger) error {
	_, err := tea.NewProgram(FromConfig(cfg, log), programOptions()...).Run()
	return err
}
