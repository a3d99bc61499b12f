package cloth

import "math"

// Tier identifies a constraint's solve strength class.
type Tier uint8

const (
	// TierStructural links orthogonal and shear neighbors at full
	// strength, approximating an inextensible weave.
	TierStructural Tier = iota
	// TierBending links skip-one neighbors at the configured
	// stiffness, resisting folds.
	TierBending
	// TierReinforce links stride-wide neighbors, active only above
	// the stiffness threshold, resisting large-scale sag.
	TierReinforce
)

func (t Tier) String() string {
	switch t {
	case TierStructural:
		return "structural"
	case TierBending:
		return "bending"
	case TierReinforce:
		return "reinforce"
	}
	return "unknown"
}

// Constraint ties two particles to a target separation. Rest lengths
// are fixed at build time and never recomputed.
type Constraint struct {
	A, B int
	Rest float64
	Tier Tier
}

// ConstraintSet holds the three tiers in solve order. Immutable once
// built for a given (resolution, size) pair.
type ConstraintSet struct {
	Structural []Constraint
	Bending    []Constraint
	Reinforce  []Constraint
}

func (s ConstraintSet) Len() int {
	return len(s.Structural) + len(s.Bending) + len(s.Reinforce)
}

// BuildConstraints derives the full constraint topology for a lattice
// of cols x rows particles with the given cell spacing. Links only run
// toward increasing row/column so no pair appears twice.
func BuildConstraints(cols, rows int, dx, dz float64) ConstraintSet {
	var set ConstraintSet
	idx := func(r, c int) int { return r*cols + c }
	dist := func(dc, dr int) float64 {
		w := float64(dc) * dx
		h := float64(dr) * dz
		return math.Hypot(w, h)
	}

	// Structural: right and below neighbors plus both cell diagonals.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				set.Structural = append(set.Structural, Constraint{idx(r, c), idx(r, c+1), dist(1, 0), TierStructural})
			}
			if r+1 < rows {
				set.Structural = append(set.Structural, Constraint{idx(r, c), idx(r+1, c), dist(0, 1), TierStructural})
			}
			if c+1 < cols && r+1 < rows {
				set.Structural = append(set.Structural, Constraint{idx(r, c), idx(r+1, c+1), dist(1, 1), TierStructural})
				set.Structural = append(set.Structural, Constraint{idx(r, c+1), idx(r+1, c), dist(1, 1), TierStructural})
			}
		}
	}

	// Bending: skip-one along each axis and one diagonal.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+2 < cols {
				set.Bending = append(set.Bending, Constraint{idx(r, c), idx(r, c+2), dist(2, 0), TierBending})
			}
			if r+2 < rows {
				set.Bending = append(set.Bending, Constraint{idx(r, c), idx(r+2, c), dist(0, 2), TierBending})
			}
			if c+2 < cols && r+2 < rows {
				set.Bending = append(set.Bending, Constraint{idx(r, c), idx(r+2, c+2), dist(2, 2), TierBending})
			}
		}
	}

	// Reinforcement: stride-wide links along each axis and both
	// diagonals. The stride grows with resolution so the long-range
	// mesh stays long-range.
	s := ReinforceStride(cols - 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+s < cols {
				set.Reinforce = append(set.Reinforce, Constraint{idx(r, c), idx(r, c+s), dist(s, 0), TierReinforce})
			}
			if r+s < rows {
				set.Reinforce = append(set.Reinforce, Constraint{idx(r, c), idx(r+s, c), dist(0, s), TierReinforce})
			}
			if c+s < cols && r+s < rows {
				set.Reinforce = append(set.Reinforce, Constraint{idx(r, c), idx(r+s, c+s), dist(s, s), TierReinforce})
				set.Reinforce = append(set.Reinforce, Constraint{idx(r, c+s), idx(r+s, c), dist(s, s), TierReinforce})
			}
		}
	}
	return set
}
