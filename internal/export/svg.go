package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/clothsim/internal/cloth"
)

// WireframeSVG renders one frame as a side-on vector wireframe: the
// sheet's structural edges, the sphere outline, and the floor line.
// The view spins the scene by yaw around the vertical axis and drops
// depth orthographically.
func WireframeSVG(frame []cloth.Vec3, grid cloth.Grid, sphere cloth.Sphere, floor cloth.Floor, width, height int, yaw float64) string {
	if len(frame) != grid.ParticleCount() {
		return ""
	}

	sin, cos := math.Sin(yaw), math.Cos(yaw)
	project := func(p cloth.Vec3) (float64, float64) {
		return p.X*cos - p.Z*sin, p.Y
	}

	// Fit the viewport around the sheet, the sphere, and the floor.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	extend := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, p := range frame {
		x, y := project(p)
		extend(x, y)
	}
	if sphere.Radius > 0 {
		cx, cy := project(sphere.Center)
		extend(cx-sphere.Radius, cy-sphere.Radius)
		extend(cx+sphere.Radius, cy+sphere.Radius)
	}
	extend(minX, floor.Height)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toScreen := func(p cloth.Vec3) (float64, float64) {
		x, y := project(p)
		sx := (x - minX) / rangeX * float64(width)
		sy := float64(height) - (y-minY)/rangeY*float64(height)
		return sx, sy
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	floorY := float64(height) - (floor.Height-minY)/rangeY*float64(height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, floorY, width, floorY))

	if sphere.Radius > 0 {
		cx, cy := toScreen(sphere.Center)
		r := sphere.Radius / rangeX * float64(width)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#555555" stroke-width="1"/>
`, cx, cy, r))
	}

	sb.WriteString(`<g fill="none" stroke="#00ff00" stroke-width="1">
`)
	writeEdge := func(a, b int) {
		ax, ay := toScreen(frame[a])
		bx, by := toScreen(frame[b])
		sb.WriteString(fmt.Sprintf(`<path d="M%.1f,%.1f L%.1f,%.1f"/>
`, ax, ay, bx, by))
	}
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			i := grid.Index(row, col)
			if col+1 < grid.Cols() {
				writeEdge(i, grid.Index(row, col+1))
			}
			if row+1 < grid.Rows() {
				writeEdge(i, grid.Index(row+1, col))
			}
		}
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}

// SeriesSVG plots one per-tick trace as an SVG polyline, auto-scaled
// with a 10% margin around the data bounds.
func SeriesSVG(times, values []float64, width, height int, strokeColor string) string {
	if len(times) < 2 || len(times) != len(values) {
		return ""
	}

	minX, maxX := times[0], times[len(times)-1]
	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range times {
		x := (times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
