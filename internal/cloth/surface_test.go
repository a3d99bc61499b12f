package cloth

import (
	"math"
	"testing"
)

func contactParticle(pos, prev Vec3) *Particles {
	return &Particles{Pos: []Vec3{pos}, Prev: []Vec3{prev}}
}

func TestSpherePushback(t *testing.T) {
	s := Sphere{Radius: 1, Friction: 0}
	p := contactParticle(Vec3{0.9, 0, 0}, Vec3{0.9, 0, 0})

	s.Resolve(p, 0, 0)

	d := p.Pos[0].Sub(s.Center).Length()
	if math.Abs(d-s.EffectiveRadius()) > 1e-9 {
		t.Errorf("expected particle on padded surface at %f, got %f", s.EffectiveRadius(), d)
	}
	if p.Pos[0].Y != 0 || p.Pos[0].Z != 0 {
		t.Errorf("pushback should stay on the contact normal, got %+v", p.Pos[0])
	}
}

func TestSphereNoContactNoChange(t *testing.T) {
	s := Sphere{Radius: 1, Friction: 1}
	pos := Vec3{2, 0, 0}
	prev := Vec3{1.9, 0, 0}
	p := contactParticle(pos, prev)

	s.Resolve(p, 0, 1)

	if p.Pos[0] != pos || p.Prev[0] != prev {
		t.Errorf("particle outside the sphere must be untouched, got %+v", p.Pos[0])
	}
}

func TestSphereStickyRegime(t *testing.T) {
	// Combined friction exactly at the sticky threshold: all motion
	// stops and the particle parks on the padded surface.
	s := Sphere{Radius: 1, Friction: 0.6}
	p := contactParticle(Vec3{0.9, 0, 0}, Vec3{0.9, -0.05, 0})

	s.Resolve(p, 0, 0.6)

	if v := p.Pos[0].Sub(p.Prev[0]); v != (Vec3{}) {
		t.Errorf("sticky contact should zero velocity, got %+v", v)
	}
	d := p.Pos[0].Sub(s.Center).Length()
	if math.Abs(d-s.EffectiveRadius()) > 1e-9 {
		t.Errorf("sticky contact should park on padded surface, got distance %f", d)
	}
}

func TestSpherePartialSlipRegime(t *testing.T) {
	// Just under the sticky threshold: tangential velocity survives
	// but is damped below its pre-contact magnitude.
	s := Sphere{Radius: 1, Friction: 0.59}
	before := Vec3{0, 0.05, 0} // tangential to the +X contact normal
	p := contactParticle(Vec3{0.9, 0, 0}, Vec3{0.9, 0, 0}.Sub(before))

	s.Resolve(p, 0, 0.59)

	normal := Vec3{1, 0, 0}
	v := p.Pos[0].Sub(p.Prev[0])
	vt := v.Sub(normal.Scale(v.Dot(normal)))
	if vt.Length() == 0 {
		t.Error("partial slip should retain some tangential velocity")
	}
	if vt.Length() >= before.Length() {
		t.Errorf("tangential velocity should shrink: %f -> %f", before.Length(), vt.Length())
	}

	// damp = 1 - 0.59*1.2
	want := before.Length() * (1 - 0.59*1.2)
	if math.Abs(vt.Length()-want) > 1e-9 {
		t.Errorf("expected tangential magnitude %f, got %f", want, vt.Length())
	}
}

func TestSphereFrictionAverages(t *testing.T) {
	// One slick side keeps a sticky-level surface in the slip regime:
	// the two coefficients average before the threshold check.
	s := Sphere{Radius: 1, Friction: 1.0}
	before := Vec3{0, 0.05, 0}
	p := contactParticle(Vec3{0.9, 0, 0}, Vec3{0.9, 0, 0}.Sub(before))

	// combined = (1.0 + 0.1)/2 = 0.55, below the sticky threshold
	s.Resolve(p, 0, 0.1)

	normal := Vec3{1, 0, 0}
	v := p.Pos[0].Sub(p.Prev[0])
	vt := v.Sub(normal.Scale(v.Dot(normal)))
	want := before.Length() * (1 - 0.55*1.2)
	if math.Abs(vt.Length()-want) > 1e-9 {
		t.Errorf("expected tangential magnitude %f, got %f", want, vt.Length())
	}
}

func TestSphereCenterDegenerate(t *testing.T) {
	s := Sphere{Radius: 1, Friction: 0.5}
	at := Vec3{0, 0, 0}
	p := contactParticle(at, at)

	s.Resolve(p, 0, 0.5)

	if p.Pos[0] != at {
		t.Errorf("particle at the center has no defined normal and must be skipped, got %+v", p.Pos[0])
	}
}

func TestFloorClamp(t *testing.T) {
	f := Floor{Height: 0}
	p := contactParticle(Vec3{1, -0.1, 2}, Vec3{0.9, 0.1, 1.9})

	f.Resolve(p, 0)

	if p.Pos[0].Y != 0 {
		t.Errorf("expected clamp to floor height, got %f", p.Pos[0].Y)
	}
	v := p.Pos[0].Sub(p.Prev[0])
	if math.Abs(v.X-0.05) > 1e-12 || math.Abs(v.Z-0.05) > 1e-12 {
		t.Errorf("expected horizontal velocity damped to (0.05, 0.05), got (%f, %f)", v.X, v.Z)
	}
	if v.Y != 0 {
		t.Errorf("expected vertical velocity zeroed on floor contact, got %f", v.Y)
	}
}

func TestFloorAboveNoChange(t *testing.T) {
	f := Floor{Height: 0}
	pos := Vec3{1, 0.5, 2}
	prev := Vec3{1, 0.6, 2}
	p := contactParticle(pos, prev)

	f.Resolve(p, 0)

	if p.Pos[0] != pos || p.Prev[0] != prev {
		t.Error("particle above the floor must be untouched")
	}
}
