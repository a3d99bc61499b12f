package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/clothsim/internal/cloth"
)

// WavefrontOBJ serializes one frame as an OBJ mesh: a vertex per
// particle and a quad face per grid cell, ready for any 3D viewer.
func WavefrontOBJ(frame []cloth.Vec3, grid cloth.Grid) string {
	if len(frame) != grid.ParticleCount() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# cloth sheet\n")
	fmt.Fprintf(&sb, "o cloth_%dx%d\n", grid.Cols(), grid.Rows())

	for _, p := range frame {
		fmt.Fprintf(&sb, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
	}

	// OBJ indices are 1-based; wind each cell counter-clockwise seen
	// from above.
	for row := 0; row < grid.Rows()-1; row++ {
		for col := 0; col < grid.Cols()-1; col++ {
			a := grid.Index(row, col) + 1
			b := grid.Index(row, col+1) + 1
			c := grid.Index(row+1, col+1) + 1
			d := grid.Index(row+1, col) + 1
			fmt.Fprintf(&sb, "f %d %d %d %d\n", a, b, c, d)
		}
	}

	return sb.String()
}

// WriteOBJ writes a frame's OBJ mesh to a file.
func WriteOBJ(path string, frame []cloth.Vec3, grid cloth.Grid) error {
	obj := WavefrontOBJ(frame, grid)
	if obj == "" {
		return fmt.Errorf("frame size %d does not match grid %dx%d", len(frame), grid.Cols(), grid.Rows())
	}
	return os.WriteFile(path, []byte(obj), 0644)
}
