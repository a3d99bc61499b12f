package cloth

import (
	"math"
	"testing"
)

func TestGridParticleCount(t *testing.T) {
	cases := []struct {
		resolution int
		want       int
	}{
		{1, 4},
		{4, 25},
		{24, 625},
	}
	for _, c := range cases {
		g := NewGrid(c.resolution, 2.0, 2.0)
		if got := g.ParticleCount(); got != c.want {
			t.Errorf("resolution %d: expected %d particles, got %d", c.resolution, c.want, got)
		}
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(4, 2.0, 2.0)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			i := g.Index(r, c)
			rr, cc := g.RowCol(i)
			if rr != r || cc != c {
				t.Errorf("index %d: expected (%d,%d), got (%d,%d)", i, r, c, rr, cc)
			}
		}
	}
	if g.Index(0, 0) != 0 {
		t.Errorf("expected corner (0,0) at index 0, got %d", g.Index(0, 0))
	}
	if g.Index(g.Rows()-1, g.Cols()-1) != g.ParticleCount()-1 {
		t.Errorf("expected last corner at index %d, got %d", g.ParticleCount()-1, g.Index(g.Rows()-1, g.Cols()-1))
	}
}

func TestGridRestLayout(t *testing.T) {
	g := NewGrid(4, 2.0, 2.0)

	if g.Spacing() != 0.5 {
		t.Errorf("expected spacing 0.5, got %f", g.Spacing())
	}

	// Corners sit symmetric about the origin at the hover height.
	tl := g.RestPosition(0, 0)
	br := g.RestPosition(4, 4)
	if tl.X != -1.0 || tl.Z != -1.0 || tl.Y != 2.0 {
		t.Errorf("unexpected top-left rest position: %+v", tl)
	}
	if br.X != 1.0 || br.Z != 1.0 || br.Y != 2.0 {
		t.Errorf("unexpected bottom-right rest position: %+v", br)
	}

	center := g.RestPosition(2, 2)
	if math.Abs(center.X) > 1e-12 || math.Abs(center.Z) > 1e-12 {
		t.Errorf("expected centered layout, center particle at %+v", center)
	}

	// Orthogonal neighbors are one spacing apart.
	d := g.RestPosition(1, 2).Sub(g.RestPosition(1, 1)).Length()
	if math.Abs(d-g.Spacing()) > 1e-12 {
		t.Errorf("expected neighbor distance %f, got %f", g.Spacing(), d)
	}
}
