package sim

import (
	"context"

	"github.com/san-kum/clothsim/internal/analysis"
	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/metrics"
)

// Session owns a solver built from a live configuration. The
// configuration is re-read at the top of every tick, so callers may
// mutate it between ticks and watch the change land on the next frame.
// A session is single-goroutine; run concurrent sessions on separate
// configs instead of sharing one.
type Session struct {
	cfg       *config.Config
	solver    *cloth.Solver
	pins      PinSource
	metrics   []metrics.Metric
	observers []Observer

	tick  int
	time  float64
	built int // resolution the current topology was built for
}

func NewSession(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	s.rebuild()
	return s, nil
}

func (s *Session) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }
func (s *Session) AddObserver(o Observer)     { s.observers = append(s.observers, o) }
func (s *Session) SetPinSource(p PinSource)   { s.pins = p }

// Config exposes the live configuration for callers that steer the
// session between ticks.
func (s *Session) Config() *config.Config { return s.cfg }

// Solver exposes the live solver for rendering and picking.
func (s *Session) Solver() *cloth.Solver { return s.solver }

func (s *Session) Ticks() int    { return s.tick }
func (s *Session) Time() float64 { return s.time }

func (s *Session) rebuild() {
	grid, sphere, floor := s.cfg.Scene()
	s.solver = cloth.NewSolver(grid)
	s.solver.Sphere = sphere
	s.solver.Floor = floor
	s.built = grid.Resolution
}

// Step advances one fixed tick against the current configuration.
// A resolution change rebuilds the sheet outright; every other change
// lands in place on the running sheet. Rest lengths deliberately stay
// as built, so a size change only takes effect on the next reset.
func (s *Session) Step() {
	s.cfg.Clamp()
	if s.cfg.Cloth.Resolution != s.built {
		s.rebuild()
	} else {
		_, sphere, floor := s.cfg.Scene()
		s.solver.Sphere = sphere
		s.solver.Floor = floor
	}

	if s.pins != nil {
		s.solver.SetPins(s.pins.Pins())
	} else {
		s.solver.SetPins(nil)
	}

	s.solver.Step(s.cfg.SolverParams())
	s.tick++
	s.time += cloth.FixedStep

	for _, m := range s.metrics {
		m.Observe(s.solver, s.time)
	}
}

// Reset drops the sheet back to its flat spawn layout. The layout uses
// the current size and drop height; constraint topology is rebuilt only
// when the resolution changed since the sheet was built.
func (s *Session) Reset() {
	grid, _, _ := s.cfg.Scene()
	if grid.Resolution != s.built {
		s.rebuild()
	} else {
		s.solver.Grid = grid
		s.solver.Particles.Grid = grid
		s.solver.Reset()
	}
	s.tick = 0
	s.time = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Run executes the configured number of ticks and collects frames,
// per-tick series, and metric summaries. A non-finite position stops
// the run and is reported in Result.Errors rather than as a returned
// error; only context cancellation aborts with one.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	ticks := s.cfg.TickCount()
	result := &Result{
		Times:   make([]float64, 0, ticks),
		Frames:  make([][]cloth.Vec3, 0, ticks),
		Series:  make(map[string][]float64),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.Step()

		if !s.solver.Particles.IsFinite() {
			result.Errors = append(result.Errors, TickError{Tick: s.tick, Time: s.time, Err: ErrUnstable})
			break
		}

		frame := s.solver.Particles.Snapshot(nil)
		result.Frames = append(result.Frames, frame)
		result.Times = append(result.Times, s.time)
		result.Ticks++

		result.Series[SeriesMinHeight] = append(result.Series[SeriesMinHeight], analysis.MinHeight(frame))
		result.Series[SeriesKinetic] = append(result.Series[SeriesKinetic], metrics.KineticOf(s.solver))
		contacts := analysis.ContactCount(frame, s.solver.Sphere, metrics.DefaultContactBand)
		result.Series[SeriesContact] = append(result.Series[SeriesContact], float64(contacts))

		for _, obs := range s.observers {
			obs.OnTick(frame, s.tick, s.time)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams frames to the callback instead of retaining
// them. Frames are pooled, so callbacks must copy anything they keep.
// Returning false stops the run early without error.
func (s *Session) RunWithCallback(ctx context.Context, callback func(frame []cloth.Vec3, tick int, t float64) bool) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	ticks := s.cfg.TickCount()
	pool := NewFramePool(s.solver.Particles.Count())

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step()

		if !s.solver.Particles.IsFinite() {
			return TickError{Tick: s.tick, Time: s.time, Err: ErrUnstable}
		}

		frame := pool.Snapshot(s.solver.Particles)
		keep := callback(frame, s.tick, s.time)
		pool.Put(frame)
		if !keep {
			return nil
		}
	}

	return nil
}
