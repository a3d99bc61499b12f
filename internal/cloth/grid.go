package cloth

// Grid describes the particle lattice of a square cloth sheet:
// Resolution segments per edge, so (Resolution+1)^2 particles, laid
// out flat and centered on the origin at Height.
type Grid struct {
	Resolution int
	Size       float64 // edge length in meters
	Height     float64 // initial hover height
}

func NewGrid(resolution int, size, height float64) Grid {
	return Grid{Resolution: resolution, Size: size, Height: height}
}

func (g Grid) Cols() int { return g.Resolution + 1 }
func (g Grid) Rows() int { return g.Resolution + 1 }

func (g Grid) ParticleCount() int { return g.Cols() * g.Rows() }

// Spacing is the rest distance between orthogonal neighbors.
func (g Grid) Spacing() float64 { return g.Size / float64(g.Resolution) }

// Index maps a grid coordinate to its flat row-major index.
func (g Grid) Index(row, col int) int { return row*g.Cols() + col }

// RowCol is the inverse of Index.
func (g Grid) RowCol(i int) (row, col int) { return i / g.Cols(), i % g.Cols() }

// RestPosition is the world position of a particle in the flat rest
// layout: X spans columns, Z spans rows, Y is the hover height.
func (g Grid) RestPosition(row, col int) Vec3 {
	half := g.Size / 2
	step := g.Spacing()
	return Vec3{
		X: float64(col)*step - half,
		Y: g.Height,
		Z: float64(row)*step - half,
	}
}
