package cloth

// Particles owns the position buffers for one sheet. Velocity is
// implicit: Pos[i] minus Prev[i] is the displacement of the last step.
type Particles struct {
	Grid Grid
	Pos  []Vec3
	Prev []Vec3
}

// NewParticles allocates a sheet at the grid's flat rest layout with
// zero implied velocity.
func NewParticles(g Grid) *Particles {
	p := &Particles{
		Grid: g,
		Pos:  make([]Vec3, g.ParticleCount()),
		Prev: make([]Vec3, g.ParticleCount()),
	}
	p.Reset()
	return p
}

func (p *Particles) Count() int { return len(p.Pos) }

// Reset restores the flat rest layout and zeroes every implied
// velocity by making previous equal current.
func (p *Particles) Reset() {
	cols := p.Grid.Cols()
	for i := range p.Pos {
		p.Pos[i] = p.Grid.RestPosition(i/cols, i%cols)
		p.Prev[i] = p.Pos[i]
	}
}

// Velocity is the implied per-step displacement of particle i.
func (p *Particles) Velocity(i int) Vec3 { return p.Pos[i].Sub(p.Prev[i]) }

// Pin forces particle i to pos with zero implied velocity.
func (p *Particles) Pin(i int, pos Vec3) {
	p.Pos[i] = pos
	p.Prev[i] = pos
}

// Snapshot appends a copy of all current positions to dst and returns
// it, row-major by grid coordinate. Callers pass dst[:0] to reuse a
// buffer across ticks.
func (p *Particles) Snapshot(dst []Vec3) []Vec3 {
	return append(dst, p.Pos...)
}

// IsFinite reports whether every particle position is finite.
func (p *Particles) IsFinite() bool {
	for i := range p.Pos {
		if !p.Pos[i].IsFinite() {
			return false
		}
	}
	return true
}
