package viz

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// SheetWireframe appends the sheet's structural edges, one segment per
// horizontal and vertical neighbor pair. Frames of the wrong size are
// ignored.
func SheetWireframe(w *Wireframe, frame []cloth.Vec3, grid cloth.Grid) {
	if len(frame) != grid.ParticleCount() {
		return
	}
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			i := grid.Index(row, col)
			if col+1 < grid.Cols() {
				w.Add(frame[i], frame[grid.Index(row, col+1)])
			}
			if row+1 < grid.Rows() {
				w.Add(frame[i], frame[grid.Index(row+1, col)])
			}
		}
	}
}

// SphereWireframe approximates the ball with three great circles, one
// per axis plane.
func SphereWireframe(w *Wireframe, s cloth.Sphere, segments int) {
	if segments < 8 {
		segments = 8
	}
	ring(w, s, segments, func(a float64) cloth.Vec3 {
		return cloth.Vec3{X: math.Cos(a), Y: math.Sin(a)}
	})
	ring(w, s, segments, func(a float64) cloth.Vec3 {
		return cloth.Vec3{X: math.Cos(a), Z: math.Sin(a)}
	})
	ring(w, s, segments, func(a float64) cloth.Vec3 {
		return cloth.Vec3{Y: math.Cos(a), Z: math.Sin(a)}
	})
}

func ring(w *Wireframe, s cloth.Sphere, segments int, point func(a float64) cloth.Vec3) {
	prev := s.Center.Add(point(0).Scale(s.Radius))
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		next := s.Center.Add(point(a).Scale(s.Radius))
		w.Add(prev, next)
		prev = next
	}
}

// FloorWireframe draws a square patch of grid lines on the plane,
// extent units from the origin in each direction.
func FloorWireframe(w *Wireframe, f cloth.Floor, extent float64, lines int) {
	if lines < 2 {
		lines = 2
	}
	for i := 0; i < lines; i++ {
		t := -extent + 2*extent*float64(i)/float64(lines-1)
		w.Add(cloth.Vec3{X: -extent, Y: f.Height, Z: t}, cloth.Vec3{X: extent, Y: f.Height, Z: t})
		w.Add(cloth.Vec3{X: t, Y: f.Height, Z: -extent}, cloth.Vec3{X: t, Y: f.Height, Z: extent})
	}
}
