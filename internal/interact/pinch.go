package interact

import "github.com/san-kum/clothsim/internal/cloth"

// PinchSmoothing is the exponential filter gain applied each sample:
// filtered += gain * (raw - filtered).
const PinchSmoothing = 0.3

// Hand identifies one of the two pinch channels.
type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandLeft {
		return "left"
	}
	return "right"
}

// HandSignal is the external hand tracker's per-tick output for one
// hand: whether it pinches and where.
type HandSignal struct {
	Pinching bool
	Pos      cloth.Vec3
}

// Pinch maps two independent hand channels onto mirrored sheet
// corners. The mirroring (left hand holds the far-right corner and
// vice versa) compensates for the mirrored camera view of the tracker.
type Pinch struct {
	grid  cloth.Grid
	hands [2]handState
}

type handState struct {
	active   bool
	filtered cloth.Vec3
}

func NewPinch(g cloth.Grid) *Pinch { return &Pinch{grid: g} }

// Observe feeds the latest signal for one hand. While pinching, the
// raw position is smoothed toward the per-hand filter state; when the
// pinch ends, that state is discarded entirely so the next pinch
// starts from its first raw value instead of a stale one.
func (p *Pinch) Observe(hand Hand, sig HandSignal) {
	h := &p.hands[hand]
	if !sig.Pinching {
		*h = handState{}
		return
	}
	if !h.active {
		h.active = true
		h.filtered = sig.Pos
		return
	}
	h.filtered = h.filtered.Add(sig.Pos.Sub(h.filtered).Scale(PinchSmoothing))
}

// Active reports whether the hand is currently pinching.
func (p *Pinch) Active(hand Hand) bool { return p.hands[hand].active }

// Corner returns the flat particle index a hand pins.
func (p *Pinch) Corner(hand Hand) int {
	if hand == HandLeft {
		return p.grid.Index(0, p.grid.Cols()-1)
	}
	return p.grid.Index(0, 0)
}

// Pins appends a pin for every actively pinching hand to dst.
func (p *Pinch) Pins(dst []cloth.Pin) []cloth.Pin {
	for hand := HandLeft; hand <= HandRight; hand++ {
		if h := p.hands[hand]; h.active {
			dst = append(dst, cloth.Pin{Index: p.Corner(hand), Target: h.filtered})
		}
	}
	return dst
}
