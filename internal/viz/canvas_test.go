package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)

	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("expected dot 1 in cell 0, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("expected dot 8 in cell 1, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 0) {
		t.Error("IsSet disagrees with Set")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 1)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		c.Set(p[0], p[1])
	}

	if got := c.String(); got != strings.Repeat(string(rune(blank)), 2)+"\n" {
		t.Errorf("expected a blank canvas, got %q", got)
	}
}

func TestCanvasFor(t *testing.T) {
	c := NewCanvasFor(128, 64)
	if c.Width != 64 || c.Height != 16 {
		t.Errorf("expected 64x16 cells, got %dx%d", c.Width, c.Height)
	}

	c = NewCanvasFor(5, 5)
	if c.Width != 3 || c.Height != 2 {
		t.Errorf("expected 3x2 cells, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(1, 2)
	c.Clear()
	if c.IsSet(1, 2) {
		t.Error("expected clear canvas")
	}
}
