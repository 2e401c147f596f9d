// Package render projects simulation coordinates onto the display and draws
// the body markers and trails.
package render

import (
	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/trail"
)

// Renderer owns the display for the lifetime of the loop.
type Renderer struct {
	dev     display.Display
	proj    Projection
	samples trail.IndexSet
}

func NewRenderer(dev display.Display, proj Projection, samples trail.IndexSet) *Renderer {
	return &Renderer{dev: dev, proj: proj, samples: samples}
}

func (r *Renderer) Projection() Projection { return r.proj }

// Draw renders g centred on p and reports whether anything was drawn.
//
// Only the centre is checked against the display bounds. A glyph whose
// centre sits on the edge still sends its full runs, and the device trims
// whatever falls outside.
func (r *Renderer) Draw(g Glyph, p dynamo.Vec2) bool {
	x, y := r.proj.ProjectVec(p)
	if !r.proj.InBounds(x, y) {
		return false
	}
	if len(g.Runs) == 0 {
		r.dev.SetPixel(x, y)
		return true
	}
	// TODO: clip each run against the bounds instead of leaving it to the device.
	for _, run := range g.Runs {
		r.dev.HLine(x+run.DX, y+run.DY, run.Length)
	}
	return true
}

// Trail draws a pixel for every recorded sample at the configured depths.
// It returns the number of samples drawn.
func (r *Renderer) Trail(buf *trail.Buffer) int {
	n := 0
	buf.Samples(r.samples, func(_ int, p dynamo.Vec2) {
		if r.Draw(Pixel, p) {
			n++
		}
	})
	return n
}

// Frame draws one complete frame: clear, the three body markers, every
// trail, then flush.
func (r *Renderer) Frame(bodies dynamo.Bodies, trails [3]*trail.Buffer) {
	r.dev.Clear()
	for _, b := range bodies {
		r.Draw(GlyphFor(b.Role), b.Position)
	}
	for _, buf := range trails {
		if buf != nil {
			r.Trail(buf)
		}
	}
	r.dev.Flush()
}
