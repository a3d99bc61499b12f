package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/clothsim/internal/cloth"
)

func TestPinchCornerMirroring(t *testing.T) {
	g := cloth.NewGrid(4, 2.0, 2.0)
	p := NewPinch(g)

	// Left hand holds the far-right corner, right hand the far-left,
	// mirroring the tracker's camera view.
	assert.Equal(t, g.Index(0, 4), p.Corner(HandLeft), "left hand corner")
	assert.Equal(t, g.Index(0, 0), p.Corner(HandRight), "right hand corner")
}

func TestPinchFirstSampleUnfiltered(t *testing.T) {
	p := NewPinch(cloth.NewGrid(4, 2.0, 2.0))
	raw := cloth.Vec3{X: 1, Y: 2, Z: 3}

	p.Observe(HandLeft, HandSignal{Pinching: true, Pos: raw})

	pins := p.Pins(nil)
	require.Len(t, pins, 1)
	assert.Equal(t, raw, pins[0].Target, "first sample passes through unfiltered")
	assert.False(t, pins[0].Drag, "pinch pins still collide")
}

func TestPinchSmoothsTowardRaw(t *testing.T) {
	p := NewPinch(cloth.NewGrid(4, 2.0, 2.0))

	p.Observe(HandLeft, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 1}})
	p.Observe(HandLeft, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 2}})

	pins := p.Pins(nil)
	require.Len(t, pins, 1)
	// filtered = 1 + 0.3*(2-1)
	assert.InDelta(t, 1.3, pins[0].Target.X, 1e-12)

	p.Observe(HandLeft, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 2}})
	pins = p.Pins(nil)
	assert.InDelta(t, 1.51, pins[0].Target.X, 1e-12)
}

func TestPinchReleaseDiscardsFilter(t *testing.T) {
	p := NewPinch(cloth.NewGrid(4, 2.0, 2.0))

	p.Observe(HandRight, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 5}})
	p.Observe(HandRight, HandSignal{})
	assert.False(t, p.Active(HandRight))
	assert.Empty(t, p.Pins(nil), "released hand pins nothing")

	// A new pinch starts from its own raw value, not the stale filter.
	p.Observe(HandRight, HandSignal{Pinching: true, Pos: cloth.Vec3{X: -5}})
	pins := p.Pins(nil)
	require.Len(t, pins, 1)
	assert.Equal(t, cloth.Vec3{X: -5}, pins[0].Target)
}

func TestPinchHandsAreIndependent(t *testing.T) {
	g := cloth.NewGrid(4, 2.0, 2.0)
	p := NewPinch(g)

	p.Observe(HandLeft, HandSignal{Pinching: true, Pos: cloth.Vec3{X: -1, Y: 1}})
	p.Observe(HandRight, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 1, Y: 1}})

	pins := p.Pins(nil)
	require.Len(t, pins, 2)
	assert.NotEqual(t, pins[0].Index, pins[1].Index)

	// Releasing one hand leaves the other pinned.
	p.Observe(HandLeft, HandSignal{})
	pins = p.Pins(nil)
	require.Len(t, pins, 1)
	assert.Equal(t, p.Corner(HandRight), pins[0].Index)
}
