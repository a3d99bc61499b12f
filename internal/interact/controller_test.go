package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/clothsim/internal/cloth"
)

func TestControllerMergesSources(t *testing.T) {
	g := cloth.NewGrid(4, 2.0, 2.0)
	p := cloth.NewParticles(g)
	c := NewController(g)

	require.True(t, c.Drag.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))
	c.Pinch.Observe(HandLeft, HandSignal{Pinching: true, Pos: cloth.Vec3{X: 1, Y: 2, Z: -1}})
	c.Pinch.Observe(HandRight, HandSignal{Pinching: true, Pos: cloth.Vec3{X: -1, Y: 2, Z: -1}})

	pins := c.Pins()
	require.Len(t, pins, 3)
	assert.True(t, pins[0].Drag, "drag pin leads")
	assert.False(t, pins[1].Drag)
	assert.False(t, pins[2].Drag)
}

func TestControllerIdleHasNoPins(t *testing.T) {
	c := NewController(cloth.NewGrid(4, 2.0, 2.0))
	assert.Empty(t, c.Pins())
}

func TestControllerLatestWins(t *testing.T) {
	g := cloth.NewGrid(4, 2.0, 2.0)
	p := cloth.NewParticles(g)
	c := NewController(g)
	require.True(t, c.Drag.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))

	// Several pointer samples between ticks; only the last one is
	// visible when the tick consumes the pin set.
	c.Drag.Move(Ray{Origin: cloth.Vec3{X: 0.1, Y: 2, Z: 5}, Dir: cloth.Vec3{Z: -1}})
	c.Drag.Move(Ray{Origin: cloth.Vec3{X: 0.2, Y: 2, Z: 5}, Dir: cloth.Vec3{Z: -1}})
	c.Drag.Move(Ray{Origin: cloth.Vec3{X: 0.7, Y: 2, Z: 5}, Dir: cloth.Vec3{Z: -1}})

	pins := c.Pins()
	require.Len(t, pins, 1)
	assert.InDelta(t, 0.7, pins[0].Target.X, 1e-12)
}
