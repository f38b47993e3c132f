package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/world"
)

// WorldToSVG draws every ball as a filled circle on a background of the
// world's size. A zero-sized world produces a 1x1 image.
func WorldToSVG(w world.World, background string) string {
	width := max(w.Bounds.Width, 1)
	height := max(w.Bounds.Height, 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	for _, b := range w.Balls {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>
`, b.Position.X, b.Position.Y, b.Radius, HexColor(b.Color)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// EnergyToSVG plots kinetic energy against time for a run's samples.
func EnergyToSVG(samples []sim.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := samples[0].Time, samples[len(samples)-1].Time
	minY, maxY := samples[0].Energy, samples[0].Energy
	for _, s := range samples {
		if s.Energy < minY {
			minY = s.Energy
		}
		if s.Energy > maxY {
			maxY = s.Energy
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range samples {
		x := (s.Time - minX) / rangeX * float64(width)
		y := float64(height) - (s.Energy-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// HexColor formats c as #rrggbb, dropping alpha.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
