package metrics

import "github.com/san-kum/clothsim/internal/cloth"

// DefaultStabilityBound is the position magnitude past which a
// particle counts as diverged. Nominal scenes stay within a few
// meters of the origin.
const DefaultStabilityBound = 100.0

// Stability scores the run between 0 and 1: the fraction of ticks on
// which every particle stayed finite and inside the divergence bound.
type Stability struct {
	name       string
	bound      float64
	violations int
	samples    int
}

func NewStability(bound float64) *Stability {
	return &Stability{name: "stability", bound: bound}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(solver *cloth.Solver, t float64) {
	s.samples++
	for i := range solver.Particles.Pos {
		p := solver.Particles.Pos[i]
		if !p.IsFinite() || p.Length() > s.bound {
			s.violations++
			return
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
