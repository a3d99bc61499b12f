package sim

import (
	"context"
	"sync"

	"github.com/san-kum/clothsim/internal/analysis"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/metrics"
)

// SweepPoint is the outcome of one stiffness setting in a sweep.
type SweepPoint struct {
	Stiffness float64
	GSM       float64
	Metrics   map[string]float64
	Drape     analysis.DrapeReport
	Err       error
}

// Sweep runs one headless session per stiffness value in parallel and
// reports how the drape changes across the range. Each run works on its
// own copy of the base configuration, with any GSM override cleared so
// the swept stiffness is the one that takes effect.
func Sweep(ctx context.Context, base *config.Config, stiffness []float64) []SweepPoint {
	points := make([]SweepPoint, len(stiffness))

	var wg sync.WaitGroup
	for i, k := range stiffness {
		wg.Add(1)
		go func(idx int, k float64) {
			defer wg.Done()
			points[idx] = sweepOne(ctx, base, k)
		}(i, k)
	}
	wg.Wait()

	return points
}

func sweepOne(ctx context.Context, base *config.Config, stiffness float64) SweepPoint {
	cfg := *base
	cfg.Cloth.Stiffness = stiffness
	cfg.Cloth.GSM = 0

	point := SweepPoint{
		Stiffness: stiffness,
		GSM:       config.GSMFromStiffness(stiffness),
	}

	session, err := NewSession(&cfg)
	if err != nil {
		point.Err = err
		return point
	}
	for _, m := range metrics.Standard() {
		session.AddMetric(m)
	}

	result, err := session.Run(ctx)
	if err != nil {
		point.Err = err
		return point
	}
	if len(result.Errors) > 0 {
		point.Err = result.Errors[0]
	}

	point.Metrics = result.Metrics
	_, sphere, _ := cfg.Scene()
	point.Drape = analysis.Drape(result.Final(), sphere, metrics.DefaultContactBand)
	return point
}

// SweepRange spaces n stiffness values evenly across [lo, hi].
func SweepRange(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}
