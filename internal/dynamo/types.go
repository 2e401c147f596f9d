package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a point or direction in the simulation plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}

// Role identifies one of the three bodies. Each role has a fixed glyph.
type Role int

const (
	Alpha Role = iota
	Beta
	Gamma
)

func (r Role) String() string {
	switch r {
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Gamma:
		return "gamma"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Body is a point mass. Mass stays constant for the whole run.
type Body struct {
	Role     Role
	Position Vec2
	Velocity Vec2
	Mass     float64
}

// Bodies holds the three bodies indexed by Role.
type Bodies [3]Body

// Positions returns the current position of every body.
func (b Bodies) Positions() [3]Vec2 {
	return [3]Vec2{b[0].Position, b[1].Position, b[2].Position}
}

func (b Bodies) IsValid() bool {
	for _, body := range b {
		if !body.Position.IsValid() || !body.Velocity.IsValid() {
			return false
		}
	}
	return true
}

// System computes the acceleration of every body from the current
// configuration.
type System interface {
	Accelerations(b Bodies) [3]Vec2
}

// Hamiltonian is implemented by systems that can report total energy.
type Hamiltonian interface {
	Energy(b Bodies) float64
}

// Integrator advances a configuration by one fixed time step.
type Integrator interface {
	Step(sys System, b Bodies, dt float64) Bodies
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
