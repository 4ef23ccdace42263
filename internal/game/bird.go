package game

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Bird is the player-controlled entity. X is fixed after spawn; only Y,
// velocity, and the derived visual rotation change per tick.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64
	Rotation float64 // Degrees, derived from velocity. Visual only.

	gravity      float64
	jumpStrength float64
	size         float64
	inset        float64
}

// NewBird creates a bird at the given position with the tuning's physics.
func NewBird(x, y float64, tune config.Tuning) *Bird {
	return &Bird{
		X:            x,
		Y:            y,
		gravity:      tune.Physics.Gravity,
		jumpStrength: tune.Physics.JumpStrength,
		size:         tune.Bird.Size,
		inset:        tune.Bird.HitboxInset,
	}
}

// Update advances the bird by one tick. The time scale applies uniformly
// to both the velocity change and the position integration, so slow
// motion is a global time dilation rather than a selective slowdown.
func (b *Bird) Update(scale float64) {
	b.Velocity += b.gravity * scale
	b.Y += b.Velocity * scale
	b.Rotation = core.ClampF(b.Velocity*3.0, -30.0, 90.0)
}

// Jump sets the velocity to the jump strength. The impulse overrides the
// current velocity rather than adding to it.
func (b *Bird) Jump() {
	b.Velocity = b.jumpStrength
}

// Bounds returns the collision hitbox, inset on every side relative to
// the visual sprite as a forgiveness margin.
func (b *Bird) Bounds() core.RectF {
	return core.NewRectF(
		b.X-b.size/2+b.inset,
		b.Y-b.size/2+b.inset,
		b.size-2*b.inset,
		b.size-2*b.inset,
	)
}

// HalfSize returns half the visual sprite size, used for ceiling and
// ground checks against the sprite edge.
func (b *Bird) HalfSize() float64 {
	return b.size / 2
}
