package sim

import (
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/trail"
)

// State is everything that changes from frame to frame. The driver loop
// owns it; nothing in the module keeps simulation state in globals.
type State struct {
	Bodies dynamo.Bodies
	Trails [3]*trail.Buffer
	Time   float64
	Step   int
}

// NewState starts a run from bodies with empty trails sized for samples.
func NewState(bodies dynamo.Bodies, samples trail.IndexSet) State {
	var trails [3]*trail.Buffer
	for i := range trails {
		trails[i] = trail.New(samples)
	}
	return State{Bodies: bodies, Trails: trails}
}

// Clone returns a deep copy; the trails are not shared.
func (s State) Clone() State {
	c := s
	for i, t := range s.Trails {
		if t != nil {
			c.Trails[i] = t.Clone()
		}
	}
	return c
}

type Metric interface {
	Name() string
	Observe(s State)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s State)
}

type Config struct {
	Duration float64
}

func DefaultConfig() Config {
	return Config{Duration: 10.0}
}

type Result struct {
	States      []dynamo.Bodies
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}
