package cloth

import "math"

// Solver tuning constants. These are calibration values, kept in one
// place so they can be adjusted without touching solver logic.
const (
	FixedStep = 1.0 / 60.0 // seconds; the solver has no adaptive timestep
	Gravity   = 9.81       // m/s^2, applied to Y only
	Drag      = 0.99       // velocity retained per step

	SpherePadding = 0.08 // cloth rests this far off the sphere surface

	StickyFriction   = 0.60 // combined friction at or above this snaps and holds
	TangentialScale  = 1.2  // slip damping = combinedFriction * this
	TangentialMax    = 0.98 // cap on slip damping so motion never fully dies
	FloorFriction    = 0.5  // horizontal velocity retained on floor contact
	ReinforceStart   = 0.70 // stiffness where reinforcement begins to engage
	ReinforceRange   = 0.30 // stiffness span over which it ramps to full

	MinConstraintDist = 1e-4 // below this a constraint pair is skipped

	MinReinforceStride = 3
	ReinforceStrideDiv = 6
)

// GravityStep is the per-tick vertical displacement, g*dt^2 at the
// fixed 60 Hz step.
const GravityStep = Gravity * FixedStep * FixedStep

// IterationsFor returns the relaxation iteration count for a given
// resolution and stiffness. Denser grids need more passes to propagate
// corrections; very stiff cloth needs more passes to read as stiff.
func IterationsFor(resolution int, stiffness float64) int {
	if stiffness > 0.8 {
		return 20
	}
	if resolution > 40 {
		return 12
	}
	return 8
}

// ReinforceStrength maps stiffness to the reinforcement tier's solve
// strength: zero at or below the start threshold, ramping linearly to
// one at full stiffness.
func ReinforceStrength(stiffness float64) float64 {
	return clamp((stiffness-ReinforceStart)/ReinforceRange, 0, 1)
}

// ReinforceStride is the cell span of long-range reinforcement links.
func ReinforceStride(resolution int) int {
	s := resolution / ReinforceStrideDiv
	if s < MinReinforceStride {
		return MinReinforceStride
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
