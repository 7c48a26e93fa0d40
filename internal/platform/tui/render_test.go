package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/sleighride/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "ho", core.ColorGold)
	s.DrawTextColored(2, 0, "ho", core.ColorIce)
	s.DrawTextColored(0, 1, "sleigh", core.ColorCrimson)

	out := ansi.Strip(RenderScreen(s))
	assert.Equal(t, "hoho        \nsleigh      ", out)
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPink; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}

func TestRenderMeters(t *testing.T) {
	meters := []core.Meter{
		{Label: "Stamina", Value: 100, Max: 200, Color: core.ColorBrightCyan},
		{Label: "Stability", Value: 100, Max: 100, Color: core.ColorGold},
	}

	out := ansi.Strip(RenderMeters(meters, 100))
	assert.Contains(t, out, "Stamina")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "100%")
	assert.LessOrEqual(t, ansi.StringWidth(out), 100)

	narrow := ansi.Strip(RenderMeters(meters, 20))
	assert.Contains(t, narrow, "Stability")

	assert.Empty(t, RenderMeters(nil, 80))
}
