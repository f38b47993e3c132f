package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	require.Equal(t, 8, w)
	require.Equal(t, 8, h)

	c.Set(3, 5, red)
	assert.True(t, c.IsSet(3, 5))
	assert.False(t, c.IsSet(2, 5))
	assert.Equal(t, rune(blank|0x10), c.Grid[1][1])
	assert.Equal(t, red, c.Colors[1][1])

	// out of range is ignored
	c.Set(-1, 0, red)
	c.Set(8, 0, red)
	c.Set(0, 8, red)

	c.Clear()
	assert.False(t, c.IsSet(3, 5))
	assert.Equal(t, rune(blank), c.Grid[1][1])
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3, red)

	assert.True(t, c.IsSet(10, 10))
	assert.True(t, c.IsSet(12, 10))
	assert.True(t, c.IsSet(9, 8))
	assert.False(t, c.IsSet(14, 10))
	assert.False(t, c.IsSet(10, 15))
}

func TestCanvas_FillCircle_TinyAndClipped(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillCircle(2.2, 3.7, 0.1, red)
	assert.True(t, c.IsSet(2, 3))

	assert.NotPanics(t, func() {
		c.FillCircle(-100, -100, 500, red)
		c.FillCircle(1e9, 1e9, 3, red)
	})
	assert.True(t, c.IsSet(7, 7))
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, red)

	out := c.Render()
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, string(rune(blank|0x1)))
	assert.Contains(t, out, string(rune(blank)))
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 2)

	c.DrawLine(0, 7, 7, 7, red)
	for x := 0; x < 8; x++ {
		assert.True(t, c.IsSet(x, 7), "x=%d", x)
		assert.False(t, c.IsSet(x, 6), "x=%d", x)
	}

	c.Clear()
	c.DrawLine(5, 5, 0, 0, red)
	for i := 0; i <= 5; i++ {
		assert.True(t, c.IsSet(i, i), "i=%d", i)
	}
	assert.False(t, c.IsSet(0, 5))

	assert.NotPanics(t, func() { c.DrawLine(-3, -3, 20, 20, red) })
}

func TestSparklineChart(t *testing.T) {
	assert.Equal(t, "───", SparklineChart(nil, 3))
	assert.Equal(t, "▁▁", SparklineChart([]float64{5, 5}, 4))
	assert.Equal(t, "▁█", SparklineChart([]float64{9, 0, 10}, 2))
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, ThemeRetroGreen, NextTheme(ThemeCyberpunk))
	assert.Equal(t, ThemeCyberpunk, NextTheme(ThemeOcean))
	assert.Equal(t, ThemeCyberpunk, GetTheme("nope"))
}
