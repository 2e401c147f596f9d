package render

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
)

// Design values for a 128×64 panel showing the orbit's [-1.2, 1.2]×[-0.8, 0.8]
// extent.
const (
	DefaultWidth  = 128
	DefaultHeight = 64
	DefaultXScale = 2.4
	DefaultYScale = 1.6
)

// offScreen is returned for coordinates that cannot be represented as a
// pixel (NaN, Inf, or far beyond any panel).
const offScreen = math.MinInt32

// Projection is a fixed affine map from simulation space to device pixels.
type Projection struct {
	Width, Height  int
	XScale, YScale float64
}

func DefaultProjection() Projection {
	return Projection{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XScale: DefaultXScale,
		YScale: DefaultYScale,
	}
}

// Project maps (x, y) to pixel coordinates:
//
//	px = round(x/XScale·W + W/2 − 1)
//	py = round(y/YScale·H + H/2)
//
// Halves round to even. Non-finite input lands off-screen.
func (p Projection) Project(x, y float64) (px, py int) {
	w, h := float64(p.Width), float64(p.Height)
	return toPixel(x/p.XScale*w + w/2 - 1), toPixel(y/p.YScale*h + h/2)
}

// ProjectVec is Project for a Vec2.
func (p Projection) ProjectVec(v dynamo.Vec2) (px, py int) {
	return p.Project(v.X, v.Y)
}

// InBounds is the clip rule shared by every draw primitive.
func (p Projection) InBounds(px, py int) bool {
	return px >= 0 && px < p.Width && py >= 0 && py < p.Height
}

func toPixel(f float64) int {
	if math.IsNaN(f) || f < -(1<<30) || f > 1<<30 {
		return offScreen
	}
	return int(math.RoundToEven(f))
}
