package config

import (
	"math"

	"github.com/san-kum/clothsim/internal/cloth"
)

// GSM label bounds. Stiffness 0 to the reinforcement threshold spans
// the full label range; beyond it the label saturates while the
// long-range reinforcement mesh ramps in.
const (
	MinGSM = 100.0
	MaxGSM = 800.0
)

// GSMFromStiffness maps internal stiffness to the grams-per-square-
// meter label shown by UIs: 100 at stiffness 0, 800 at the
// reinforcement threshold and above.
func GSMFromStiffness(s float64) float64 {
	n := math.Min(math.Max(s, 0), cloth.ReinforceStart) / cloth.ReinforceStart
	return MinGSM + n*(MaxGSM-MinGSM)
}

// StiffnessFromGSM inverts the label mapping; out-of-range labels
// clamp to the representable band.
func StiffnessFromGSM(gsm float64) float64 {
	n := (gsm - MinGSM) / (MaxGSM - MinGSM)
	return math.Min(math.Max(n, 0), 1) * cloth.ReinforceStart
}
