package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for _, b := range a.World.Balls {
		center := rl.NewVector2(float32(b.Position.X), float32(b.Position.Y))
		rl.DrawCircleV(center, float32(b.Radius), toColor(b.Color))
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	w, h := int32(a.World.Bounds.Width), int32(a.World.Bounds.Height)

	rl.DrawText("ballsim", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", a.Name), 140, 34, 16, ColText)
	rl.DrawText(fmt.Sprintf("balls %d  asleep %d  t %.2fs", a.World.Len(), a.World.Sleeping(a.Params), a.World.Time), 30, 60, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, w-130, 30, 16, col)

	a.DrawTelemetry(30, h-120, 400, 60)
	rl.DrawText("[CLICK] SPAWN  [S] CENTRE  [SPACE] PAUSE  [R] RESET  [C] CLEAR  [Q] QUIT", 30, h-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), w-100, h-40, 14, ColTextDim)
}

// DrawTelemetry plots the kinetic energy history as a line strip.
func (a *App) DrawTelemetry(x, y, width, height int32) {
	points := telemetryPoints(a.telemetry, float32(x), float32(y), float32(width), float32(height))
	if points == nil {
		return
	}
	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("E: %.2e", a.telemetry[len(a.telemetry)-1]), x+width+10, y+height-10, 14, ColText)
}

// telemetryPoints normalizes values into the rectangle at (x, y), higher
// values drawn nearer the top.
func telemetryPoints(values []float64, x, y, width, height float32) []rl.Vector2 {
	if len(values) < 2 {
		return nil
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(values))
	for i, val := range values {
		px := x + float32(i)/float32(len(values))*width
		norm := (val - minVal) / (maxVal - minVal)
		points[i] = rl.NewVector2(px, y+height-float32(norm)*height)
	}
	return points
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
