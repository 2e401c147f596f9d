package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
)

// ThreeBody implements the planar gravitational three-body problem.
// Pairwise Newtonian gravity, no softening: coincident bodies divide by
// zero and the resulting accelerations are ±Inf or NaN. See
// [CheckDegenerate].
type ThreeBody struct {
	g float64 // Gravitational constant
}

func NewThreeBody(g float64) *ThreeBody {
	return &ThreeBody{g: g}
}

func (t *ThreeBody) G() float64 { return t.g }

// Accelerations implements dynamo.System.
//
//	a_i = Σ_{j≠i} −G·m_j·(p_i − p_j) / |p_i − p_j|³
func (t *ThreeBody) Accelerations(b dynamo.Bodies) [3]dynamo.Vec2 {
	var acc [3]dynamo.Vec2
	for i := range b {
		for j := range b {
			if i == j {
				continue
			}
			d := b[i].Position.Sub(b[j].Position)
			r := d.Norm()
			acc[i] = acc[i].Add(d.Scale(-t.g * b[j].Mass / (r * r * r)))
		}
	}
	return acc
}

// Energy implements dynamo.Hamiltonian: kinetic plus pairwise potential.
func (t *ThreeBody) Energy(b dynamo.Bodies) float64 {
	ke := 0.0
	for _, body := range b {
		v := body.Velocity
		ke += 0.5 * body.Mass * (v.X*v.X + v.Y*v.Y)
	}
	pe := 0.0
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			r := b[i].Position.Sub(b[j].Position).Norm()
			pe -= t.g * b[i].Mass * b[j].Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum.
func Momentum(b dynamo.Bodies) dynamo.Vec2 {
	var p dynamo.Vec2
	for _, body := range b {
		p = p.Add(body.Velocity.Scale(body.Mass))
	}
	return p
}

// CheckDegenerate reports dynamo.ErrDegenerate if any two bodies share a
// position, and dynamo.ErrInvalidState if a coordinate is no longer finite.
func CheckDegenerate(b dynamo.Bodies) error {
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i].Position == b[j].Position {
				return fmt.Errorf("%w: %s and %s at %v", dynamo.ErrDegenerate, b[i].Role, b[j].Role, b[i].Position)
			}
		}
	}
	if !b.IsValid() {
		return dynamo.ErrInvalidState
	}
	return nil
}

// GetParams implements dynamo.Configurable.
func (t *ThreeBody) GetParams() map[string]float64 {
	return map[string]float64{
		"g": t.g,
	}
}

// SetParam implements dynamo.Configurable.
func (t *ThreeBody) SetParam(name string, value float64) error {
	switch name {
	case "g":
		if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: g=%v", dynamo.ErrParameterBounds, value)
		}
		t.g = value
		return nil
	}
	return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
}
