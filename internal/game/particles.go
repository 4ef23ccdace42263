package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Particle is a cosmetic effect spawned in bursts at jump, score, and
// death events. Particles never feed back into collision or scoring.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Remaining life in (0, 1], decreasing at a fixed rate
	Size   float64
	Color  core.Color
}

// Update advances the particle by one tick.
func (p *Particle) Update(tune config.Particles) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += tune.Gravity
	p.Life -= tune.LifeDecay
}

// Dead reports whether the particle's life has run out.
func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// burst creates count particles at (x, y) with randomized velocity and
// size jitter, appended to the given slice.
func burst(rng *rand.Rand, particles []Particle, x, y float64, color core.Color, count int) []Particle {
	for i := 0; i < count; i++ {
		particles = append(particles, Particle{
			X:     x,
			Y:     y,
			VX:    -3.0 + rng.Float64()*6.0,
			VY:    -5.0 + rng.Float64()*4.0,
			Life:  1.0,
			Size:  2.0 + rng.Float64()*4.0,
			Color: color,
		})
	}
	return particles
}
