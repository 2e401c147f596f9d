// Package dynamo provides core simulation primitives for the planar
// three-body system.
//
// The package defines the fundamental types and interfaces shared by the
// physics, integration and rendering layers:
//
//   - [Vec2]: explicit 2-D vector value type
//   - [Body]: point mass with role, position, velocity and mass
//   - [System]: interface for force models (accelerations from positions)
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	sys := physics.NewThreeBody(1.0)
//	integ := integrators.NewSemiImplicitEuler()
//	next := integ.Step(sys, bodies, 0.04)
//
// # Thread Safety
//
// All types are plain values. A [Bodies] array is copied on assignment, so
// integrators can return a new configuration without touching their input.
package dynamo
