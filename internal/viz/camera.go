package viz

import (
	"math"
	"sort"

	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/interact"
)

// Camera orbits a target point. Yaw spins the scene around the
// vertical axis, pitch tilts it toward the viewer, and the eye sits
// Distance units along the rotated +Z axis.
type Camera struct {
	Target   cloth.Vec3
	Yaw      float64
	Pitch    float64
	Zoom     float64
	Distance float64
}

// NewCamera frames the drop scene: target between floor and sheet,
// tilted slightly downward.
func NewCamera() *Camera {
	return &Camera{
		Target:   cloth.Vec3{Y: 1.0},
		Yaw:      0.6,
		Pitch:    -0.35,
		Zoom:     1.0,
		Distance: 4.0,
	}
}

// rotate maps a target-relative world vector into view space, yaw
// first, then pitch.
func (c *Camera) rotate(p cloth.Vec3) cloth.Vec3 {
	cosY, sinY := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p = cloth.Vec3{
		X: p.X*cosY + p.Z*sinY,
		Y: p.Y,
		Z: -p.X*sinY + p.Z*cosY,
	}

	cosX, sinX := math.Cos(c.Pitch), math.Sin(c.Pitch)
	return cloth.Vec3{
		X: p.X,
		Y: p.Y*cosX - p.Z*sinX,
		Z: p.Y*sinX + p.Z*cosX,
	}
}

// unrotate is the inverse of rotate: pitch back first, then yaw.
func (c *Camera) unrotate(p cloth.Vec3) cloth.Vec3 {
	cosX, sinX := math.Cos(-c.Pitch), math.Sin(-c.Pitch)
	p = cloth.Vec3{
		X: p.X,
		Y: p.Y*cosX - p.Z*sinX,
		Z: p.Y*sinX + p.Z*cosX,
	}

	cosY, sinY := math.Cos(-c.Yaw), math.Sin(-c.Yaw)
	return cloth.Vec3{
		X: p.X*cosY + p.Z*sinY,
		Y: p.Y,
		Z: -p.X*sinY + p.Z*cosY,
	}
}

// Project maps a world point to sub-pixel canvas coordinates. It
// returns the view-space depth for painter's ordering and false when
// the point falls outside the canvas or behind the eye.
func (c *Camera) Project(p cloth.Vec3, screenWidth, screenHeight int) (int, int, float64, bool) {
	r := c.rotate(p.Sub(c.Target)).Scale(c.Zoom)

	denom := c.Distance - r.Z
	if denom < 0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / denom
	pScale := float64(minInt(screenWidth, screenHeight)) / 3.0

	x := int(r.X*scale*pScale) + screenWidth/2
	y := int(-r.Y*scale*pScale) + screenHeight/2

	if x < 0 || x >= screenWidth || y < 0 || y >= screenHeight {
		return 0, 0, 0, false
	}
	return x, y, r.Z, true
}

// PickRay inverts Project for a canvas point: the world-space ray from
// the eye through that pixel. Feeding the returned ray's direction to
// a drag pick keeps picking consistent with what is on screen.
func (c *Camera) PickRay(x, y, screenWidth, screenHeight int) interact.Ray {
	pScale := float64(minInt(screenWidth, screenHeight)) / 3.0
	// View-space coordinates on the z=0 plane, where the perspective
	// scale is exactly 1.
	vx := (float64(x) - float64(screenWidth)/2) / pScale
	vy := -(float64(y) - float64(screenHeight)/2) / pScale

	eye := cloth.Vec3{Z: c.Distance}
	dir := cloth.Vec3{X: vx, Y: vy, Z: -c.Distance}

	return interact.Ray{
		Origin: c.unrotate(eye).Scale(1 / c.Zoom).Add(c.Target),
		Dir:    c.unrotate(dir).Normalize(),
	}
}

// Edge is a world-space line segment queued for rendering.
type Edge struct {
	From, To cloth.Vec3
}

// Wireframe accumulates edges for one frame.
type Wireframe struct {
	Edges []Edge
}

func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

func (w *Wireframe) Add(from, to cloth.Vec3) {
	w.Edges = append(w.Edges, Edge{From: from, To: to})
}

// Render draws the wireframe back to front so near edges overwrite
// far ones.
func (w *Wireframe) Render(canvas *Canvas, cam *Camera) {
	sw := canvas.Width * 2
	sh := canvas.Height * 4

	type projected struct {
		x0, y0, x1, y1 int
		depth          float64
	}
	edges := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		x0, y0, d0, ok0 := cam.Project(e.From, sw, sh)
		x1, y1, d1, ok1 := cam.Project(e.To, sw, sh)
		if !ok0 || !ok1 {
			continue
		}
		edges = append(edges, projected{x0, y0, x1, y1, (d0 + d1) / 2})
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].depth < edges[j].depth })

	for _, e := range edges {
		canvas.DrawLine(e.x0, e.y0, e.x1, e.y1)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
