package cloth

// Sphere is a rigid collision ball.
type Sphere struct {
	Center   Vec3
	Radius   float64
	Friction float64
}

// EffectiveRadius includes the padding that keeps cloth slightly off
// the geometric surface.
func (s Sphere) EffectiveRadius() float64 { return s.Radius + SpherePadding }

// Resolve pushes particle i out of the sphere and applies the contact
// friction regime. Combined friction at or above StickyFriction parks
// the particle on the surface; below it, the tangential velocity is
// damped and the normal component kept.
func (s Sphere) Resolve(p *Particles, i int, clothFriction float64) {
	effR := s.EffectiveRadius()
	offset := p.Pos[i].Sub(s.Center)
	dist := offset.Length()
	if dist >= effR || dist < MinConstraintDist {
		return
	}
	normal := offset.Scale(1 / dist)
	p.Pos[i] = p.Pos[i].Add(offset.Scale((effR - dist) / dist))

	cf := (clothFriction + s.Friction) / 2
	if cf >= StickyFriction {
		p.Pin(i, s.Center.Add(normal.Scale(effR)))
		return
	}
	v := p.Pos[i].Sub(p.Prev[i])
	vn := normal.Scale(v.Dot(normal))
	vt := v.Sub(vn)
	damped := vn.Add(vt.Scale(1 - clamp(cf*TangentialScale, 0, TangentialMax)))
	p.Prev[i] = p.Pos[i].Sub(damped)
}

// Floor is an infinite horizontal plane.
type Floor struct {
	Height float64
}

// Resolve clamps particle i to the floor, zeroing its vertical motion
// and damping the horizontal components.
func (f Floor) Resolve(p *Particles, i int) {
	if p.Pos[i].Y >= f.Height {
		return
	}
	v := p.Velocity(i)
	p.Pos[i].Y = f.Height
	p.Prev[i] = Vec3{
		X: p.Pos[i].X - v.X*FloorFriction,
		Y: p.Pos[i].Y,
		Z: p.Pos[i].Z - v.Z*FloorFriction,
	}
}
