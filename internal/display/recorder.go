package display

import "fmt"

// Op is a single call made against a Recorder.
type Op struct {
	Kind   string // "clear", "pixel", "hline" or "flush"
	X, Y   int
	Length int
}

func (o Op) String() string {
	switch o.Kind {
	case "pixel":
		return fmt.Sprintf("pixel(%d,%d)", o.X, o.Y)
	case "hline":
		return fmt.Sprintf("hline(%d,%d,%d)", o.X, o.Y, o.Length)
	}
	return o.Kind + "()"
}

// Recorder is a Display that remembers every call in order.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear()            { r.Ops = append(r.Ops, Op{Kind: "clear"}) }
func (r *Recorder) SetPixel(x, y int) { r.Ops = append(r.Ops, Op{Kind: "pixel", X: x, Y: y}) }
func (r *Recorder) HLine(x, y, length int) {
	r.Ops = append(r.Ops, Op{Kind: "hline", X: x, Y: y, Length: length})
}
func (r *Recorder) Flush() { r.Ops = append(r.Ops, Op{Kind: "flush"}) }

// Draws returns the pixel and hline calls, skipping clear and flush.
func (r *Recorder) Draws() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == "pixel" || op.Kind == "hline" {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many calls of kind were made.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
