package analysis

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// Frame helpers operate on emitted particle snapshots, so they can run
// on live frames as well as on stored runs.

func MinHeight(frame []cloth.Vec3) float64 {
	min := math.Inf(1)
	for _, p := range frame {
		if p.Y < min {
			min = p.Y
		}
	}
	return min
}

func MaxHeight(frame []cloth.Vec3) float64 {
	max := math.Inf(-1)
	for _, p := range frame {
		if p.Y > max {
			max = p.Y
		}
	}
	return max
}

func MeanHeight(frame []cloth.Vec3) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range frame {
		sum += p.Y
	}
	return sum / float64(len(frame))
}

// HeightSpread is the vertical extent of the sheet. A flat hovering
// sheet reads zero; any draping spreads it out.
func HeightSpread(frame []cloth.Vec3) float64 {
	if len(frame) == 0 {
		return 0
	}
	return MaxHeight(frame) - MinHeight(frame)
}

// SilhouetteRadius is the sheet's horizontal extent around a vertical
// axis: the radius of its top-down silhouette. A sheet collapsing
// around the sphere reads smaller than one flaring stiffly outward.
func SilhouetteRadius(frame []cloth.Vec3, axis cloth.Vec3) float64 {
	max := 0.0
	for _, p := range frame {
		dx := p.X - axis.X
		dz := p.Z - axis.Z
		if r := math.Hypot(dx, dz); r > max {
			max = r
		}
	}
	return max
}

// ContactCount returns how many particles sit within band of the
// sphere's padded surface.
func ContactCount(frame []cloth.Vec3, sphere cloth.Sphere, band float64) int {
	limit := sphere.EffectiveRadius() + band
	count := 0
	for _, p := range frame {
		if p.Sub(sphere.Center).Length() <= limit {
			count++
		}
	}
	return count
}
