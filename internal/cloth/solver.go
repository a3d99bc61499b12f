package cloth

// Params are the per-tick solve inputs. Callers resolve and clamp
// these at the configuration boundary; the solver does not
// re-validate.
type Params struct {
	Stiffness  float64
	Friction   float64 // cloth-side friction coefficient
	Iterations int     // relaxation passes; <=0 means IterationsFor
}

// Pin forces a particle to a target inside every relaxation pass.
// A drag pin additionally exempts its particle from collision so the
// held point follows the pointer even through the sphere.
type Pin struct {
	Index  int
	Target Vec3
	Drag   bool
}

// Solver advances one cloth sheet over a fixed 60 Hz step. It owns
// the particle buffers and the constraint topology; both are rebuilt
// together by constructing a new Solver when the resolution changes.
type Solver struct {
	Grid        Grid
	Particles   *Particles
	Constraints ConstraintSet
	Sphere      Sphere
	Floor       Floor

	pins []Pin
}

func NewSolver(g Grid) *Solver {
	return &Solver{
		Grid:        g,
		Particles:   NewParticles(g),
		Constraints: BuildConstraints(g.Cols(), g.Rows(), g.Spacing(), g.Spacing()),
	}
}

// SetPins replaces the active pins consumed by subsequent ticks. The
// slice is retained until the next call.
func (s *Solver) SetPins(pins []Pin) { s.pins = pins }

// Reset restores the flat rest layout with zero velocity. Topology is
// untouched; rest lengths stay frozen at their build-time values.
func (s *Solver) Reset() { s.Particles.Reset() }

// Step runs one tick: integrate, then N relaxation passes, each
// solving the structural, bending, and reinforcement tiers in order,
// applying pins, and resolving collisions. No phase is skipped or
// reordered.
func (s *Solver) Step(p Params) {
	s.integrate()
	iters := p.Iterations
	if iters <= 0 {
		iters = IterationsFor(s.Grid.Resolution, p.Stiffness)
	}
	reinforce := ReinforceStrength(p.Stiffness)
	for it := 0; it < iters; it++ {
		relaxList(s.Particles, s.Constraints.Structural, 1.0)
		relaxList(s.Particles, s.Constraints.Bending, p.Stiffness)
		if reinforce > 0 {
			relaxList(s.Particles, s.Constraints.Reinforce, reinforce)
		}
		s.applyPins()
		s.collide(p.Friction)
	}
}

// integrate advances every particle by its damped implied velocity and
// the fixed per-tick gravity displacement.
func (s *Solver) integrate() {
	pts := s.Particles
	for i := range pts.Pos {
		v := pts.Pos[i].Sub(pts.Prev[i]).Scale(Drag)
		pts.Prev[i] = pts.Pos[i]
		pts.Pos[i] = pts.Pos[i].Add(v)
		pts.Pos[i].Y -= GravityStep
	}
}

// relaxList runs one sequential Gauss-Seidel pass over a constraint
// list. Near-coincident pairs are skipped and self-heal as neighbors
// pull them apart.
func relaxList(p *Particles, list []Constraint, strength float64) {
	for _, c := range list {
		delta := p.Pos[c.B].Sub(p.Pos[c.A])
		dist := delta.Length()
		if dist < MinConstraintDist {
			continue
		}
		corr := (dist - c.Rest) / dist * strength * 0.5
		step := delta.Scale(corr)
		p.Pos[c.A] = p.Pos[c.A].Add(step)
		p.Pos[c.B] = p.Pos[c.B].Sub(step)
	}
}

func (s *Solver) applyPins() {
	for _, pin := range s.pins {
		if pin.Index >= 0 && pin.Index < s.Particles.Count() {
			s.Particles.Pin(pin.Index, pin.Target)
		}
	}
}

func (s *Solver) collide(clothFriction float64) {
	skip := s.dragPinnedIndex()
	for i := range s.Particles.Pos {
		if i == skip {
			continue
		}
		if s.Sphere.Radius > 0 {
			s.Sphere.Resolve(s.Particles, i, clothFriction)
		}
		s.Floor.Resolve(s.Particles, i)
	}
}

func (s *Solver) dragPinnedIndex() int {
	for _, pin := range s.pins {
		if pin.Drag {
			return pin.Index
		}
	}
	return -1
}
