package sim

import "github.com/san-kum/clothsim/internal/cloth"

// PinSource supplies the pin set consumed at the top of every tick.
// Interactive controllers implement it; headless runs may leave it nil.
type PinSource interface {
	Pins() []cloth.Pin
}

// PinFunc adapts a plain function to PinSource.
type PinFunc func() []cloth.Pin

func (f PinFunc) Pins() []cloth.Pin { return f() }

// Observer sees every frame a run emits. The frame slice is only valid
// for the duration of the call.
type Observer interface {
	OnTick(frame []cloth.Vec3, tick int, t float64)
}

// Series names recorded by Session.Run.
const (
	SeriesMinHeight = "min_height"
	SeriesKinetic   = "kinetic"
	SeriesContact   = "contact"
)

// Result collects a headless run. Frames are fresh copies, safe to
// retain and index after the session is gone.
type Result struct {
	Times   []float64
	Frames  [][]cloth.Vec3
	Series  map[string][]float64
	Metrics map[string]float64
	Ticks   int
	Errors  []error
}

// Final returns the last recorded frame, or nil for an empty run.
func (r *Result) Final() []cloth.Vec3 {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}
