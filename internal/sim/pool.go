package sim

import (
	"sync"

	"github.com/san-kum/clothsim/internal/cloth"
)

// FramePool recycles snapshot buffers for paths that hand frames out
// per tick without retaining them.
type FramePool struct {
	pool sync.Pool
	size int
}

func NewFramePool(particles int) *FramePool {
	return &FramePool{
		size: particles,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]cloth.Vec3, 0, particles)
			},
		},
	}
}

func (p *FramePool) Get() []cloth.Vec3 {
	return p.pool.Get().([]cloth.Vec3)[:0]
}

func (p *FramePool) Put(f []cloth.Vec3) {
	if cap(f) >= p.size {
		p.pool.Put(f[:0])
	}
}

// Snapshot copies the current particle positions into a pooled buffer.
func (p *FramePool) Snapshot(particles *cloth.Particles) []cloth.Vec3 {
	return particles.Snapshot(p.Get())
}
