// Package physics provides the gravitational force model for three point
// masses.
//
// [ThreeBody] implements [dynamo.System], [dynamo.Hamiltonian] and
// [dynamo.Configurable]. [FigureEight] returns the periodic initial
// configuration shown on the display.
//
// # Singularity
//
// The force law has no softening term. When two bodies coincide the
// acceleration divides by zero; Go float arithmetic yields ±Inf or NaN
// instead of panicking, and [CheckDegenerate] reports the condition so the
// caller can log it and keep rendering:
//
//	if err := physics.CheckDegenerate(bodies); err != nil {
//	    log.Warn().Err(err).Msg("degenerate configuration")
//	}
package physics
