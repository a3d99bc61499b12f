package viz

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// Still renders one frame of the scene to a braille string. It serves
// the non-interactive paths: run summaries and stored-run inspection.
func Still(frame []cloth.Vec3, grid cloth.Grid, sphere cloth.Sphere, floor cloth.Floor, width, height int) string {
	canvas := NewCanvas(width, height)
	cam := NewCamera()

	var wf Wireframe
	extent := math.Max(grid.Size, sphere.Radius+1)
	FloorWireframe(&wf, floor, extent, 9)
	SphereWireframe(&wf, sphere, 24)
	SheetWireframe(&wf, frame, grid)
	wf.Render(canvas, cam)

	return canvas.String()
}
