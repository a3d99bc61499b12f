package interact

import "github.com/san-kum/clothsim/internal/cloth"

// DefaultPickRadius is how far (meters) a pick point may sit from the
// nearest particle before the pick is ignored.
const DefaultPickRadius = 0.5

// Ray is a world-space picking ray, usually produced by the camera
// from screen coordinates.
type Ray struct {
	Origin, Dir cloth.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) cloth.Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Drag is the pointer interaction machine: Idle until a successful
// Pick, Dragging until Release. While dragging it holds one particle
// pinned to the latest plane-projected pointer target.
type Drag struct {
	PickRadius float64

	dragging    bool
	index       int
	planePoint  cloth.Vec3
	planeNormal cloth.Vec3
	target      cloth.Vec3
}

func NewDrag() *Drag {
	return &Drag{PickRadius: DefaultPickRadius, index: -1}
}

// Pick starts a drag at the particle nearest the pick point, scanning
// all particles by squared distance. The drag plane passes through the
// pick point with the camera view direction as its normal and stays
// fixed until release. Returns false, leaving the machine idle, when
// no particle lies within PickRadius.
func (d *Drag) Pick(p *cloth.Particles, pickPoint, viewDir cloth.Vec3) bool {
	best := -1
	bestSq := d.PickRadius * d.PickRadius
	for i := range p.Pos {
		if sq := p.Pos[i].Sub(pickPoint).LengthSq(); sq <= bestSq {
			best, bestSq = i, sq
		}
	}
	if best < 0 {
		return false
	}
	d.dragging = true
	d.index = best
	d.planePoint = pickPoint
	d.planeNormal = viewDir.Normalize()
	d.target = p.Pos[best]
	return true
}

// Move reprojects a pointer ray onto the fixed drag plane and adopts
// the intersection as the new pin target. Rays parallel to the plane
// or pointing away from it leave the previous target in place.
func (d *Drag) Move(r Ray) {
	if !d.dragging {
		return
	}
	denom := r.Dir.Dot(d.planeNormal)
	if denom > -1e-9 && denom < 1e-9 {
		return
	}
	t := d.planePoint.Sub(r.Origin).Dot(d.planeNormal) / denom
	if t < 0 {
		return
	}
	d.target = r.At(t)
}

// Release ends the drag; the particle resumes free dynamics with zero
// velocity since previous was forced equal to current while pinned.
func (d *Drag) Release() {
	d.dragging = false
	d.index = -1
}

// Dragging reports whether a particle is currently held.
func (d *Drag) Dragging() bool { return d.dragging }

// Pin returns the active drag pin, if any.
func (d *Drag) Pin() (cloth.Pin, bool) {
	if !d.dragging {
		return cloth.Pin{}, false
	}
	return cloth.Pin{Index: d.index, Target: d.target, Drag: true}, true
}
