package metrics

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// Sag tracks the lowest height any particle reaches over the run. For
// a drape over the ball this reads how far the hem hangs.
type Sag struct {
	name    string
	min     float64
	samples int
}

func NewSag() *Sag {
	return &Sag{name: "sag_depth", min: math.Inf(1)}
}

func (g *Sag) Name() string { return g.name }

func (g *Sag) Observe(s *cloth.Solver, t float64) {
	for i := range s.Particles.Pos {
		if y := s.Particles.Pos[i].Y; y < g.min {
			g.min = y
		}
	}
	g.samples++
}

func (g *Sag) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.min
}

func (g *Sag) Reset() {
	g.min = math.Inf(1)
	g.samples = 0
}
