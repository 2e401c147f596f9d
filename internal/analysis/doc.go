// Package analysis provides spectral tools for inspecting trajectories.
package analysis
