package metrics

import "github.com/san-kum/clothsim/internal/cloth"

// DefaultContactBand is how far beyond the padded sphere surface a
// particle still counts as touching.
const DefaultContactBand = 0.02

// Contact tracks the fraction of particles resting on the sphere,
// averaged over the run.
type Contact struct {
	name    string
	band    float64
	sum     float64
	last    int
	samples int
}

func NewContact(band float64) *Contact {
	return &Contact{name: "contact", band: band}
}

func (c *Contact) Name() string { return c.name }

func (c *Contact) Observe(s *cloth.Solver, t float64) {
	if s.Sphere.Radius <= 0 || s.Particles.Count() == 0 {
		return
	}
	limit := s.Sphere.EffectiveRadius() + c.band
	count := 0
	for i := range s.Particles.Pos {
		if s.Particles.Pos[i].Sub(s.Sphere.Center).Length() <= limit {
			count++
		}
	}
	c.last = count
	c.sum += float64(count) / float64(s.Particles.Count())
	c.samples++
}

func (c *Contact) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

// Last is the most recent touching-particle count.
func (c *Contact) Last() int { return c.last }

func (c *Contact) Reset() {
	c.sum = 0
	c.last = 0
	c.samples = 0
}
