package render

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/trail"
)

func emptyTrails() [3]*trail.Buffer {
	return [3]*trail.Buffer{
		trail.New(trail.DefaultIndexSet),
		trail.New(trail.DefaultIndexSet),
		trail.New(trail.DefaultIndexSet),
	}
}

func widths(g Glyph) []int {
	out := make([]int, len(g.Runs))
	for i, r := range g.Runs {
		out[i] = r.Length
	}
	return out
}

var _ = Describe("Glyphs", func() {
	It("has the expected row widths", func() {
		Expect(widths(Square)).To(Equal([]int{5, 5, 5, 5, 5}))
		Expect(widths(Circle)).To(Equal([]int{3, 5, 5, 5, 3}))
		Expect(widths(Triangle)).To(Equal([]int{1, 1, 3, 3, 5}))
		Expect(Pixel.Runs).To(BeEmpty())
	})

	It("centres every run inside a 5×5 cell", func() {
		for _, g := range []Glyph{Square, Circle, Triangle} {
			for _, r := range g.Runs {
				Expect(r.DX).To(BeNumerically(">=", -2))
				Expect(r.DX + r.Length - 1).To(BeNumerically("<=", 2))
				Expect(r.DY).To(BeNumerically(">=", -2))
				Expect(r.DY).To(BeNumerically("<=", 2))
			}
		}
	})

	It("assigns a marker per role", func() {
		Expect(GlyphFor(dynamo.Alpha).Name).To(Equal("square"))
		Expect(GlyphFor(dynamo.Beta).Name).To(Equal("circle"))
		Expect(GlyphFor(dynamo.Gamma).Name).To(Equal("triangle"))
	})
})

var _ = Describe("Renderer", func() {
	var (
		rec *display.Recorder
		r   *Renderer
	)

	BeforeEach(func() {
		rec = display.NewRecorder()
		r = NewRenderer(rec, DefaultProjection(), trail.DefaultIndexSet)
	})

	Describe("Draw", func() {
		It("issues one run per row centred on the projected point", func() {
			Expect(r.Draw(Square, dynamo.Vec2{})).To(BeTrue())

			Expect(rec.Ops).To(Equal([]display.Op{
				{Kind: "hline", X: 61, Y: 30, Length: 5},
				{Kind: "hline", X: 61, Y: 31, Length: 5},
				{Kind: "hline", X: 61, Y: 32, Length: 5},
				{Kind: "hline", X: 61, Y: 33, Length: 5},
				{Kind: "hline", X: 61, Y: 34, Length: 5},
			}))
		})

		It("places the triangle apex on top", func() {
			r.Draw(Triangle, dynamo.Vec2{})
			Expect(rec.Ops[0]).To(Equal(display.Op{Kind: "hline", X: 63, Y: 30, Length: 1}))
			Expect(rec.Ops[4]).To(Equal(display.Op{Kind: "hline", X: 61, Y: 34, Length: 5}))
		})

		It("draws a single pixel for trail samples", func() {
			r.Draw(Pixel, dynamo.Vec2{})
			Expect(rec.Ops).To(Equal([]display.Op{{Kind: "pixel", X: 63, Y: 32}}))
		})

		DescribeTable("suppresses glyphs whose centre is off-screen",
			func(g Glyph, p dynamo.Vec2) {
				Expect(r.Draw(g, p)).To(BeFalse())
				Expect(rec.Draws()).To(BeEmpty())
			},
			Entry("far right", Square, dynamo.Vec2{X: 100}),
			Entry("far left", Circle, dynamo.Vec2{X: -100}),
			Entry("below", Triangle, dynamo.Vec2{Y: 0.8}),
			Entry("above", Pixel, dynamo.Vec2{Y: -5}),
			Entry("not a number", Square, dynamo.Vec2{X: math.NaN()}),
		)

		// Known cosmetic artifact: only the centre is clipped, so a glyph
		// centred on the edge sends runs that start off-screen.
		It("passes partially visible glyphs through unclipped", func() {
			x := (0 - 63.0) / 128 * DefaultXScale
			Expect(r.Draw(Square, dynamo.Vec2{X: x})).To(BeTrue())
			Expect(rec.Ops[0].X).To(Equal(-2))

			fb := display.NewFramebuffer(DefaultWidth, DefaultHeight)
			NewRenderer(fb, DefaultProjection(), trail.DefaultIndexSet).Draw(Square, dynamo.Vec2{X: x})
			Expect(fb.Count()).To(Equal(15))
		})
	})

	Describe("Frame", func() {
		It("clears, draws three markers and flushes with empty trails", func() {
			r.Frame(physics.FigureEight(), emptyTrails())

			Expect(rec.Ops[0].Kind).To(Equal("clear"))
			Expect(rec.Ops[len(rec.Ops)-1].Kind).To(Equal("flush"))
			Expect(rec.Count("hline")).To(Equal(15))
			Expect(rec.Count("pixel")).To(BeZero())
		})

		It("draws markers in role order", func() {
			r.Frame(physics.FigureEight(), emptyTrails())

			Expect(rec.Ops[1]).To(Equal(display.Op{Kind: "hline", X: 8, Y: 30, Length: 5}))
			Expect(rec.Ops[6]).To(Equal(display.Op{Kind: "hline", X: 115, Y: 30, Length: 3}))
			Expect(rec.Ops[11]).To(Equal(display.Op{Kind: "hline", X: 63, Y: 30, Length: 1}))
		})

		It("draws one pixel per recorded sample at the chosen depths", func() {
			trails := emptyTrails()
			for i := 0; i < 4; i++ {
				trails[dynamo.Alpha].Record(dynamo.Vec2{X: 0.1 * float64(i)})
			}
			for i := 0; i < 8; i++ {
				trails[dynamo.Gamma].Record(dynamo.Vec2{Y: 0.05 * float64(i)})
			}

			r.Frame(physics.FigureEight(), trails)

			// Alpha: depths 1, 2, 3. Gamma: depths 1, 2, 3, 5, 7.
			Expect(rec.Count("pixel")).To(Equal(8))
		})

		It("skips trail samples that project off-screen", func() {
			trails := emptyTrails()
			trails[dynamo.Beta].Record(dynamo.Vec2{X: 100})
			trails[dynamo.Beta].Record(dynamo.Vec2{X: 100})

			Expect(r.Trail(trails[dynamo.Beta])).To(BeZero())
		})
	})

	It("renders into a framebuffer", func() {
		fb := display.NewFramebuffer(DefaultWidth, DefaultHeight)
		NewRenderer(fb, DefaultProjection(), trail.DefaultIndexSet).Frame(physics.FigureEight(), emptyTrails())

		Expect(fb.Flushes()).To(Equal(1))
		Expect(fb.Count()).To(Equal(25 + 21 + 13))
		Expect(fb.Pixel(63, 30)).To(BeTrue())
		Expect(fb.Pixel(62, 30)).To(BeFalse())
	})
})
