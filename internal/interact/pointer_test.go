package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/clothsim/internal/cloth"
)

func restSheet() *cloth.Particles {
	return cloth.NewParticles(cloth.NewGrid(4, 2.0, 2.0))
}

func TestPickNearestParticle(t *testing.T) {
	p := restSheet()
	d := NewDrag()

	// Slightly off the center particle (row 2, col 2) at (0, 2, 0).
	ok := d.Pick(p, cloth.Vec3{X: 0.05, Y: 2, Z: 0.02}, cloth.Vec3{Z: -1})
	require.True(t, ok, "pick near a particle must start a drag")
	assert.True(t, d.Dragging())

	pin, ok := d.Pin()
	require.True(t, ok)
	assert.Equal(t, p.Grid.Index(2, 2), pin.Index, "nearest particle")
	assert.Equal(t, p.Pos[pin.Index], pin.Target, "initial target is the held particle")
	assert.True(t, pin.Drag, "pointer pins exempt their particle from collision")
}

func TestPickTooFarIsNoOp(t *testing.T) {
	p := restSheet()
	d := NewDrag()

	ok := d.Pick(p, cloth.Vec3{X: 10, Y: 10, Z: 10}, cloth.Vec3{Z: -1})
	assert.False(t, ok, "pick far from the sheet must not start a drag")
	assert.False(t, d.Dragging())
	_, live := d.Pin()
	assert.False(t, live)
}

func TestMoveProjectsOntoDragPlane(t *testing.T) {
	p := restSheet()
	d := NewDrag()
	require.True(t, d.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))

	// Plane fixed at z=0; a straight-on ray lands where it crosses.
	d.Move(Ray{Origin: cloth.Vec3{X: 0.3, Y: 2.5, Z: 5}, Dir: cloth.Vec3{Z: -1}})

	pin, ok := d.Pin()
	require.True(t, ok)
	assert.InDelta(t, 0.3, pin.Target.X, 1e-12)
	assert.InDelta(t, 2.5, pin.Target.Y, 1e-12)
	assert.InDelta(t, 0.0, pin.Target.Z, 1e-12)
}

func TestMoveKeepsPlaneFromPickTime(t *testing.T) {
	p := restSheet()
	d := NewDrag()
	require.True(t, d.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))

	// An oblique ray still lands on the original z=0 plane.
	d.Move(Ray{Origin: cloth.Vec3{X: 1, Y: 3, Z: 2}, Dir: cloth.Vec3{X: -0.5, Y: -0.5, Z: -1}.Normalize()})

	pin, _ := d.Pin()
	assert.InDelta(t, 0.0, pin.Target.Z, 1e-12, "target stays on the pick-time plane")
}

func TestMoveIgnoresParallelRay(t *testing.T) {
	p := restSheet()
	d := NewDrag()
	require.True(t, d.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))
	before, _ := d.Pin()

	d.Move(Ray{Origin: cloth.Vec3{X: 5, Y: 5, Z: 5}, Dir: cloth.Vec3{X: 1}})

	after, _ := d.Pin()
	assert.Equal(t, before.Target, after.Target, "ray parallel to the plane leaves the target")
}

func TestMoveIgnoresRayAwayFromPlane(t *testing.T) {
	p := restSheet()
	d := NewDrag()
	require.True(t, d.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))
	before, _ := d.Pin()

	// Intersection would be behind the origin.
	d.Move(Ray{Origin: cloth.Vec3{Y: 2, Z: -5}, Dir: cloth.Vec3{Z: -1}})

	after, _ := d.Pin()
	assert.Equal(t, before.Target, after.Target)
}

func TestReleaseEndsDrag(t *testing.T) {
	p := restSheet()
	d := NewDrag()
	require.True(t, d.Pick(p, cloth.Vec3{Y: 2}, cloth.Vec3{Z: -1}))

	d.Release()

	assert.False(t, d.Dragging())
	_, ok := d.Pin()
	assert.False(t, ok)

	// Moves after release are no-ops, not resurrections.
	d.Move(Ray{Origin: cloth.Vec3{Z: 5}, Dir: cloth.Vec3{Z: -1}})
	_, ok = d.Pin()
	assert.False(t, ok)
}
