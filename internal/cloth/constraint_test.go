package cloth

import (
	"math"
	"testing"
)

func TestBuildConstraintCounts(t *testing.T) {
	// 5x5 lattice: 40 orthogonal + 32 shear structural links,
	// 30 axis + 9 diagonal bending links, and stride-3 reinforcement
	// links (10 + 10 orthogonal, 4 + 4 diagonal).
	set := BuildConstraints(5, 5, 0.5, 0.5)

	if len(set.Structural) != 72 {
		t.Errorf("expected 72 structural constraints, got %d", len(set.Structural))
	}
	if len(set.Bending) != 39 {
		t.Errorf("expected 39 bending constraints, got %d", len(set.Bending))
	}
	if len(set.Reinforce) != 28 {
		t.Errorf("expected 28 reinforcement constraints, got %d", len(set.Reinforce))
	}
	if set.Len() != 72+39+28 {
		t.Errorf("expected %d total, got %d", 72+39+28, set.Len())
	}
}

func TestBuildConstraintsValid(t *testing.T) {
	set := BuildConstraints(7, 7, 0.3, 0.3)
	n := 49
	seen := make(map[[2]int]bool)
	for _, list := range [][]Constraint{set.Structural, set.Bending, set.Reinforce} {
		for _, c := range list {
			if c.A < 0 || c.A >= n || c.B < 0 || c.B >= n {
				t.Fatalf("constraint indices out of range: %d-%d", c.A, c.B)
			}
			if c.A == c.B {
				t.Fatalf("constraint links particle %d to itself", c.A)
			}
			if c.Rest <= 0 {
				t.Errorf("constraint %d-%d has non-positive rest length %f", c.A, c.B, c.Rest)
			}
			key := [2]int{c.A, c.B}
			if c.B < c.A {
				key = [2]int{c.B, c.A}
			}
			if seen[key] {
				t.Errorf("duplicate constraint pair %d-%d", c.A, c.B)
			}
			seen[key] = true
		}
	}
}

func TestConstraintRestLengths(t *testing.T) {
	g := NewGrid(4, 2.0, 2.0)
	set := BuildConstraints(g.Cols(), g.Rows(), g.Spacing(), g.Spacing())

	// Rest lengths must equal the rest-grid distance of each pair.
	for _, list := range [][]Constraint{set.Structural, set.Bending, set.Reinforce} {
		for _, c := range list {
			ra, ca := g.RowCol(c.A)
			rb, cb := g.RowCol(c.B)
			want := g.RestPosition(ra, ca).Sub(g.RestPosition(rb, cb)).Length()
			if math.Abs(c.Rest-want) > 1e-9 {
				t.Errorf("constraint %d-%d: expected rest %f, got %f", c.A, c.B, want, c.Rest)
			}
		}
	}
}

func TestConstraintTiers(t *testing.T) {
	set := BuildConstraints(5, 5, 0.5, 0.5)
	for _, c := range set.Structural {
		if c.Tier != TierStructural {
			t.Fatalf("structural list holds tier %v", c.Tier)
		}
	}
	for _, c := range set.Bending {
		if c.Tier != TierBending {
			t.Fatalf("bending list holds tier %v", c.Tier)
		}
	}
	for _, c := range set.Reinforce {
		if c.Tier != TierReinforce {
			t.Fatalf("reinforcement list holds tier %v", c.Tier)
		}
	}
}

func TestReinforceStride(t *testing.T) {
	cases := []struct {
		resolution int
		want       int
	}{
		{4, 3},
		{17, 3},
		{18, 3},
		{24, 4},
		{36, 6},
		{60, 10},
	}
	for _, c := range cases {
		if got := ReinforceStride(c.resolution); got != c.want {
			t.Errorf("resolution %d: expected stride %d, got %d", c.resolution, c.want, got)
		}
	}
}
