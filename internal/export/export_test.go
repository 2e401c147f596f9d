package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/gif"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/integrators"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/trail"
)

func TestFramebufferToSVG(t *testing.T) {
	fb := display.NewFramebuffer(4, 2)
	fb.SetPixel(1, 0)
	fb.SetPixel(3, 1)

	svg := FramebufferToSVG(fb, 2)

	if !strings.Contains(svg, `width="8" height="4"`) {
		t.Errorf("unexpected size in %q", svg)
	}
	if n := strings.Count(svg, "<rect x="); n != 2 {
		t.Errorf("expected 2 pixel rects, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="6.0" y="2.0" width="2.0" height="2.0"/>`) {
		t.Error("missing pixel (3,1)")
	}
	if FramebufferToSVG(nil, 1) != "" {
		t.Error("expected empty output for nil framebuffer")
	}
}

func TestOrbitsToSVG(t *testing.T) {
	var paths [3][]dynamo.Vec2
	paths[0] = []dynamo.Vec2{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: math.NaN(), Y: 0}}
	paths[2] = []dynamo.Vec2{{X: 1, Y: 0}}

	svg := OrbitsToSVG(paths, 100, 50)

	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if strings.Contains(svg, "NaN") {
		t.Error("non-finite points should be skipped")
	}
	if OrbitsToSVG([3][]dynamo.Vec2{}, 10, 10) != "" {
		t.Error("expected empty output without points")
	}
}

func TestGIFRecorder(t *testing.T) {
	fb := display.NewFramebuffer(8, 4)
	rec := NewGIFRecorder(fb, 2, 5, 2)

	fb.SetPixel(0, 0)
	fb.Flush()
	fb.Clear()
	fb.SetPixel(7, 3)
	fb.Flush()
	fb.Flush()

	if rec.Frames() != 2 {
		t.Fatalf("expected 2 frames kept, got %d", rec.Frames())
	}

	var buf bytes.Buffer
	if err := rec.Save(&buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 2 || anim.Delay[0] != 5 {
		t.Fatalf("unexpected animation: %d frames, delay %v", len(anim.Image), anim.Delay)
	}

	first, second := anim.Image[0], anim.Image[1]
	if first.Bounds().Dx() != 16 || first.Bounds().Dy() != 8 {
		t.Errorf("unexpected frame size %v", first.Bounds())
	}
	if first.ColorIndexAt(1, 1) != 1 || first.ColorIndexAt(15, 7) != 0 {
		t.Error("first frame should only light the top-left block")
	}
	if second.ColorIndexAt(0, 0) != 0 || second.ColorIndexAt(14, 6) != 1 {
		t.Error("second frame should only light the bottom-right block")
	}
}

func TestGIFRecorderEmpty(t *testing.T) {
	rec := NewGIFRecorder(display.NewFramebuffer(2, 2), 1, 2, 0)
	if err := rec.Save(&bytes.Buffer{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestTrajectoryJSON(t *testing.T) {
	s := sim.New(physics.NewThreeBody(1), integrators.NewSemiImplicitEuler(), 0.04)
	result, err := s.Run(context.Background(), sim.NewState(physics.FigureEight(), trail.DefaultIndexSet), sim.Config{Duration: 0.4})
	if err != nil {
		t.Fatal(err)
	}

	data := NewTrajectoryData("euler", 0.04, result)
	if data.Steps != 11 || len(data.Bodies) != 3 {
		t.Fatalf("expected 11 samples of 3 bodies, got %d of %d", data.Steps, len(data.Bodies))
	}
	if data.Bodies[0].Role != "alpha" || data.Bodies[0].X[0] != -1 {
		t.Errorf("unexpected first track %+v", data.Bodies[0].Role)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, data); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var decoded TrajectoryData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Bodies[2].Y[10] != data.Bodies[2].Y[10] {
		t.Error("positions changed through json")
	}
}

func TestTrajectoryStopsAtNonFinite(t *testing.T) {
	b := physics.FigureEight()
	bad := b
	bad[1].Position.X = math.NaN()
	result := &sim.Result{
		States: []dynamo.Bodies{b, b, bad},
		Times:  []float64{0, 1, 2},
	}

	data := NewTrajectoryData("euler", 1, result)
	if data.Steps != 2 || len(data.Bodies[0].X) != 2 {
		t.Errorf("expected export to stop before the NaN sample, got %d", data.Steps)
	}
	if err := ExportJSON(&bytes.Buffer{}, data); err != nil {
		t.Errorf("export failed: %v", err)
	}
}
