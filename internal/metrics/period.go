package metrics

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/sim"
)

// departure is how far the bodies must travel before a return to the start
// counts as closing the orbit.
const departure = 0.5

// PeriodError measures how far the bodies are from where they started: the
// largest per-coordinate offset at the latest observation. For a periodic
// orbit it drops close to zero once per period.
type PeriodError struct {
	name     string
	start    [3]dynamo.Vec2
	last     float64
	best     float64
	bestAt   float64
	departed bool
	samples  int
}

func NewPeriodError() *PeriodError {
	return &PeriodError{name: "period_error", best: math.Inf(1)}
}

func (p *PeriodError) Name() string { return p.name }

func (p *PeriodError) Observe(s sim.State) {
	p.samples++
	if p.samples == 1 {
		p.start = s.Bodies.Positions()
		return
	}

	p.last = 0
	for i, pos := range s.Bodies.Positions() {
		d := pos.Sub(p.start[i])
		p.last = math.Max(p.last, math.Max(math.Abs(d.X), math.Abs(d.Y)))
	}

	if p.last > departure {
		p.departed = true
	}
	if p.departed && p.last < p.best {
		p.best = p.last
		p.bestAt = s.Time
	}
}

// Value returns the offset at the latest observation.
func (p *PeriodError) Value() float64 { return p.last }

// Best returns the smallest offset seen once the bodies had left the start,
// and the time it occurred. offset is +Inf if they never left.
func (p *PeriodError) Best() (offset, t float64) { return p.best, p.bestAt }

func (p *PeriodError) Reset() {
	p.start = [3]dynamo.Vec2{}
	p.last = 0
	p.best = math.Inf(1)
	p.bestAt = 0
	p.departed = false
	p.samples = 0
}
