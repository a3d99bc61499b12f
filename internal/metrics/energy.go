package metrics

import "github.com/san-kum/clothsim/internal/cloth"

// Kinetic tracks the sheet's kinetic energy (unit particle mass),
// averaged over the run. A settled drape reads near zero.
type Kinetic struct {
	name    string
	sum     float64
	last    float64
	samples int
}

func NewKinetic() *Kinetic {
	return &Kinetic{name: "kinetic"}
}

func (k *Kinetic) Name() string { return k.name }

func (k *Kinetic) Observe(s *cloth.Solver, t float64) {
	ke := KineticOf(s)
	k.last = ke
	k.sum += ke
	k.samples++
}

// KineticOf sums the sheet's kinetic energy for a single tick.
func KineticOf(s *cloth.Solver) float64 {
	ke := 0.0
	for i := range s.Particles.Pos {
		v := s.Particles.Velocity(i).Scale(1 / cloth.FixedStep)
		ke += 0.5 * v.Dot(v)
	}
	return ke
}

func (k *Kinetic) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.sum / float64(k.samples)
}

// Last is the most recent per-tick energy, used for settle detection.
func (k *Kinetic) Last() float64 { return k.last }

func (k *Kinetic) Reset() {
	k.sum = 0
	k.last = 0
	k.samples = 0
}
