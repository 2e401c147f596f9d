package integrators

import "github.com/san-kum/threebody/internal/dynamo"

// Leapfrog is the kick-drift-kick scheme. Second order, two force
// evaluations per step.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys dynamo.System, b dynamo.Bodies, dt float64) dynamo.Bodies {
	halfDt := dt * 0.5

	acc := sys.Accelerations(b)
	for i := range b {
		b[i].Velocity = b[i].Velocity.Add(acc[i].Scale(halfDt))
		b[i].Position = b[i].Position.Add(b[i].Velocity.Scale(dt))
	}

	accNew := sys.Accelerations(b)
	for i := range b {
		b[i].Velocity = b[i].Velocity.Add(accNew[i].Scale(halfDt))
	}

	return b
}
