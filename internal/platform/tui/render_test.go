package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neblox/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz", core.ColorBrown)

	got := ansi.Strip(RenderScreen(s))
	assert.Equal(t, "abcd  \nxyz   ", got)
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColor(1, 0, '#', core.Color(200))

	assert.Equal(t, " # ", ansi.Strip(RenderScreen(s)))
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrown; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d has no style", c)
	}
}
