package integrators

import "github.com/san-kum/threebody/internal/dynamo"

// SemiImplicitEuler is the symplectic Euler scheme. All velocities are
// advanced with the current accelerations before any position moves, and
// positions use the new velocities:
//
//	v ← v + a·dt
//	p ← p + v·dt
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(sys dynamo.System, b dynamo.Bodies, dt float64) dynamo.Bodies {
	acc := sys.Accelerations(b)
	for i := range b {
		b[i].Velocity = b[i].Velocity.Add(acc[i].Scale(dt))
	}
	for i := range b {
		b[i].Position = b[i].Position.Add(b[i].Velocity.Scale(dt))
	}
	return b
}
