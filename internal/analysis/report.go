package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/clothsim/internal/cloth"
)

// DrapeReport summarizes how a settled sheet sits on the scene.
type DrapeReport struct {
	MinHeight  float64
	MeanHeight float64
	Spread     float64
	Silhouette float64
	Contacts   int
	Particles  int
}

// Drape measures a single frame against the sphere it draped over.
func Drape(frame []cloth.Vec3, sphere cloth.Sphere, band float64) DrapeReport {
	return DrapeReport{
		MinHeight:  MinHeight(frame),
		MeanHeight: MeanHeight(frame),
		Spread:     HeightSpread(frame),
		Silhouette: SilhouetteRadius(frame, sphere.Center),
		Contacts:   ContactCount(frame, sphere, band),
		Particles:  len(frame),
	}
}

func (r DrapeReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "particles:   %d\n", r.Particles)
	fmt.Fprintf(&b, "contacts:    %d\n", r.Contacts)
	fmt.Fprintf(&b, "min height:  %.4f\n", r.MinHeight)
	fmt.Fprintf(&b, "mean height: %.4f\n", r.MeanHeight)
	fmt.Fprintf(&b, "spread:      %.4f\n", r.Spread)
	fmt.Fprintf(&b, "silhouette:  %.4f\n", r.Silhouette)
	return b.String()
}
