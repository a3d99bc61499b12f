package metrics

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// StretchError tracks the RMS relative deviation of the structural
// tier from its rest lengths: how far the weave is from inextensible.
type StretchError struct {
	name    string
	sum     float64
	max     float64
	samples int
}

func NewStretchError() *StretchError {
	return &StretchError{name: "stretch_rms"}
}

func (m *StretchError) Name() string { return m.name }

func (m *StretchError) Observe(s *cloth.Solver, t float64) {
	n := len(s.Constraints.Structural)
	if n == 0 {
		return
	}
	total := 0.0
	for _, c := range s.Constraints.Structural {
		d := s.Particles.Pos[c.A].Sub(s.Particles.Pos[c.B]).Length()
		rel := (d - c.Rest) / c.Rest
		total += rel * rel
	}
	rms := math.Sqrt(total / float64(n))
	m.sum += rms
	m.samples++
	if rms > m.max {
		m.max = rms
	}
}

func (m *StretchError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Max is the worst per-tick RMS stretch seen during the run.
func (m *StretchError) Max() float64 { return m.max }

func (m *StretchError) Reset() {
	m.sum = 0
	m.max = 0
	m.samples = 0
}
