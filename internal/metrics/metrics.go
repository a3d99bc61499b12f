package metrics

import "github.com/san-kum/clothsim/internal/cloth"

// Metric observes the sheet once per tick and reduces the run to a
// single number.
type Metric interface {
	Name() string
	Observe(s *cloth.Solver, t float64)
	Value() float64
	Reset()
}

// Standard returns the default metric set for a run.
func Standard() []Metric {
	return []Metric{
		NewKinetic(),
		NewStretchError(),
		NewContact(DefaultContactBand),
		NewSag(),
		NewStability(DefaultStabilityBound),
	}
}

// Collect snapshots all metric values into a name-keyed map.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
