package render

import "github.com/san-kum/threebody/internal/dynamo"

// Run is one horizontal span of a glyph relative to its centre.
type Run struct {
	DX, DY, Length int
}

// Glyph is a small bitmap drawn as horizontal runs around a centre point.
// A glyph with no runs is a single pixel.
type Glyph struct {
	Name string
	Runs []Run
}

var (
	// Square is a filled 5×5 block.
	Square = Glyph{Name: "square", Runs: []Run{
		{-2, -2, 5},
		{-2, -1, 5},
		{-2, 0, 5},
		{-2, 1, 5},
		{-2, 2, 5},
	}}

	// Circle is a 5×5 lens with trimmed corners.
	Circle = Glyph{Name: "circle", Runs: []Run{
		{-1, -2, 3},
		{-2, -1, 5},
		{-2, 0, 5},
		{-2, 1, 5},
		{-1, 2, 3},
	}}

	// Triangle has its apex on top: widths 1, 1, 3, 3, 5.
	Triangle = Glyph{Name: "triangle", Runs: []Run{
		{0, -2, 1},
		{0, -1, 1},
		{-1, 0, 3},
		{-1, 1, 3},
		{-2, 2, 5},
	}}

	// Pixel is a single point, used for trail samples.
	Pixel = Glyph{Name: "pixel"}
)

// GlyphFor returns the marker used for a body's current position.
func GlyphFor(r dynamo.Role) Glyph {
	switch r {
	case dynamo.Alpha:
		return Square
	case dynamo.Beta:
		return Circle
	case dynamo.Gamma:
		return Triangle
	}
	return Pixel
}
