package physics

import "github.com/san-kum/threebody/internal/dynamo"

// FigureEightPeriod is the time after which the FigureEight configuration
// returns close to its starting positions.
const FigureEightPeriod = 32.849

// FigureEight returns the periodic initial conditions the display runs by
// default: unit masses, Alpha and Beta at (∓1, 0), Gamma at the origin with
// the opposite total momentum.
func FigureEight() dynamo.Bodies {
	return dynamo.Bodies{
		{Role: dynamo.Alpha, Position: dynamo.Vec2{X: -1, Y: 0}, Velocity: dynamo.Vec2{X: 0.203492, Y: 0.518113}, Mass: 1},
		{Role: dynamo.Beta, Position: dynamo.Vec2{X: 1, Y: 0}, Velocity: dynamo.Vec2{X: 0.203492, Y: 0.518113}, Mass: 1},
		{Role: dynamo.Gamma, Position: dynamo.Vec2{X: 0, Y: 0}, Velocity: dynamo.Vec2{X: -0.406984, Y: -1.036226}, Mass: 1},
	}
}
