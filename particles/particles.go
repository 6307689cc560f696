// Package particles holds the fire-and-forget visual effects: blood,
// footprints, corpses, attack impacts. Particles never affect the
// simulation; they only age out and get drawn.
package particles

import "ebiten-wilds/sprite"

// MaxParticles bounds the pool. When it is full the oldest particle is
// recycled, which for pure cosmetics beats refusing to spawn.
const MaxParticles = 2048

// Layer orders particle rendering relative to entities.
type Layer int

const (
	LayerBackground Layer = iota
	LayerForeground
)

// Particle is one static visual: a sprite quad with a position, rotation,
// alpha, and a remaining lifetime in ticks.
type Particle struct {
	Active   bool
	X, Y     float64 // tile units
	W, H     float64 // pixels
	Rot      float64
	Alpha    float64
	Lifetime int
	Initial  int
	VelX     float64
	VelY     float64
	Sprite   sprite.Sprite
	Layer    Layer
}

// Pool is a fixed-size particle arena.
type Pool struct {
	particles []Particle
	next      int
}

// NewPool creates an empty particle pool.
func NewPool() *Pool {
	return &Pool{particles: make([]Particle, MaxParticles)}
}

// Spawn places a particle in the pool, recycling the oldest slot when
// everything is in use.
func (p *Pool) Spawn(pt Particle) {
	pt.Active = true
	pt.Initial = pt.Lifetime

	for i := 0; i < MaxParticles; i++ {
		idx := (p.next + i) % MaxParticles
		if !p.particles[idx].Active {
			p.particles[idx] = pt
			p.next = (idx + 1) % MaxParticles
			return
		}
	}
	p.particles[p.next] = pt
	p.next = (p.next + 1) % MaxParticles
}

// Step ages every particle by one tick, applying drift velocity and
// retiring the expired.
func (p *Pool) Step() {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Active {
			continue
		}
		pt.X += pt.VelX
		pt.Y += pt.VelY
		pt.VelX *= 0.9
		pt.VelY *= 0.9
		pt.Lifetime--
		if pt.Lifetime <= 0 {
			pt.Active = false
		}
	}
}

// Each calls fn for every active particle on the given layer, in pool
// order.
func (p *Pool) Each(layer Layer, fn func(*Particle)) {
	for i := range p.particles {
		if p.particles[i].Active && p.particles[i].Layer == layer {
			fn(&p.particles[i])
		}
	}
}

// ActiveCount counts live particles.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Active {
			n++
		}
	}
	return n
}

// Clear retires every particle.
func (p *Pool) Clear() {
	for i := range p.particles {
		p.particles[i].Active = false
	}
	p.next = 0
}
