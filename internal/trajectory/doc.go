// Package trajectory computes projectile trajectories for a launch at a given
// angle and initial speed.
//
// Two models implement [Model]:
//
//   - [Ideal]: closed-form, drag-free parabolic flight
//   - [Drag]: linear (velocity-proportional) air resistance, sampled at a
//     fixed time step from the analytic solution of the equation of motion
//
// Both produce a [Result] holding the time of flight, maximum height, range
// and the height samples used for plotting. Every call is a pure function of
// its inputs.
//
// # Example
//
//	res, err := trajectory.ComputeIdeal(45, 20)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.2f s, %.2f m, %.2f m\n", res.TimeOfFlight, res.MaxHeight, res.Range)
//
// # Termination
//
// The sampling loops are capped by [Config].MaxSteps. A launch that would not
// return to the ground within the cap fails with a [*DivergentError] instead of
// running forever.
package trajectory
