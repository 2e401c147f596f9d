package viz

import (
	"github.com/san-kum/threebody/internal/display"
)

// TermDisplay is a Display that shows in a terminal. Drawing goes to an
// off-screen framebuffer; Flush copies it onto the Braille canvas, so the
// canvas always holds the last complete frame.
type TermDisplay struct {
	*display.Framebuffer
	canvas *Canvas
}

func NewTermDisplay(width, height int) *TermDisplay {
	return &TermDisplay{
		Framebuffer: display.NewFramebuffer(width, height),
		canvas:      NewCanvasFor(width, height),
	}
}

func (t *TermDisplay) Flush() {
	t.canvas.Clear()
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if t.Pixel(x, y) {
				t.canvas.Set(x, y)
			}
		}
	}
	t.Framebuffer.Flush()
}

func (t *TermDisplay) Canvas() *Canvas { return t.canvas }

func (t *TermDisplay) String() string { return t.canvas.String() }
