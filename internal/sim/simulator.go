package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// Simulator advances a State by one fixed step at a time.
type Simulator struct {
	sys        dynamo.System
	integrator dynamo.Integrator
	dt         float64
	metrics    []Metric
	observers  []Observer
}

func New(sys dynamo.System, integrator dynamo.Integrator, dt float64) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		dt:         dt,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Dt() float64 { return s.dt }

// Advance returns the state one step later: integrate, then record the new
// positions into the trails. st is left untouched.
func (s *Simulator) Advance(st State) State {
	next := st.Clone()
	s.step(&next)
	return next
}

func (s *Simulator) step(st *State) {
	st.Bodies = s.integrator.Step(s.sys, st.Bodies, s.dt)
	for i, b := range st.Bodies {
		if st.Trails[i] != nil {
			st.Trails[i].Record(b.Position)
		}
	}
	st.Time += s.dt
	st.Step++

	for _, m := range s.metrics {
		m.Observe(*st)
	}
	for _, obs := range s.observers {
		obs.OnStep(*st)
	}
}

// Check reports a degenerate or non-finite configuration with the step and
// time it happened at.
func (s *Simulator) Check(st State) error {
	if err := physics.CheckDegenerate(st.Bodies); err != nil {
		return &dynamo.SimulationError{Step: st.Step, Time: st.Time, Bodies: st.Bodies, Wrapped: err}
	}
	return nil
}

// Run integrates for cfg.Duration and keeps every intermediate
// configuration. Unlike the display loop it stops at the first invalid
// state.
func (s *Simulator) Run(ctx context.Context, st State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / s.dt))
	result := &Result{
		States:  make([]dynamo.Bodies, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(st)
	}

	x := st.Clone()
	result.States = append(result.States, x.Bodies)
	result.Times = append(result.Times, x.Time)

	initialEnergy := s.computeEnergy(x.Bodies)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.step(&x)

		if err := s.Check(x); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}

		result.StepsTaken++
		result.States = append(result.States, x.Bodies)
		result.Times = append(result.Times, x.Time)
	}

	finalEnergy := s.computeEnergy(x.Bodies)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func (s *Simulator) computeEnergy(b dynamo.Bodies) float64 {
	if h, ok := s.sys.(dynamo.Hamiltonian); ok {
		return h.Energy(b)
	}
	return 0
}
