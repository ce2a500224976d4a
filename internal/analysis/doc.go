// Package analysis provides post-processing for traced trajectories.
//
//   - [Summarize]: extent and arc length of a trajectory
//   - [PowerSpectrum] and [DominantFrequency]: oscillation content of y
//   - [SeedSensitivity]: divergence rate of neighbouring solutions
//   - [TrajectoryToASCII]: terminal sketch of a trajectory over its rectangle
//
// # Stability
//
// A negative sensitivity means nearby solutions converge onto the traced
// one:
//
//	rate, err := analysis.SeedSensitivity(stepper, eq, seed, 1e-6, 1e-3, 10000)
//	if err == nil && rate < 0 {
//	    // solutions through the seed attract their neighbours
//	}
package analysis
