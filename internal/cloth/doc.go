// Package cloth implements a position-based cloth solver.
//
// A sheet is a square grid of particles integrated with Verlet steps
// (velocity is implied by current minus previous position) and held
// together by three tiers of distance constraints:
//
//   - [TierStructural]: orthogonal and shear links, solved at full strength
//   - [TierBending]: skip-one links, solved at the configured stiffness
//   - [TierReinforce]: long-range links that ramp in above the stiffness
//     threshold, modeling heavy structured fabric
//
// Each tick runs a fixed phase order: integrate, then N relaxation
// iterations where every iteration solves the constraint tiers, applies
// active pins, and resolves collisions against a sphere and a floor.
//
// # Tick loop
//
//	s := cloth.NewSolver(cloth.NewGrid(24, 2.2, 2.0))
//	s.Sphere = cloth.Sphere{Center: cloth.Vec3{}, Radius: 1, Friction: 0.5}
//	for range ticks {
//	    s.Step(params)
//	    frame = s.Particles.Snapshot(frame[:0])
//	}
//
// The solver owns its particle buffers; callers only ever see snapshot
// copies. Rebuilding (new resolution) means constructing a new Solver.
package cloth
