package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Pipe is a vertical obstacle pair with a passable gap. The gap center
// and height are fixed at spawn time; only X changes afterwards. Scored
// transitions false->true exactly once and is never reset.
type Pipe struct {
	X         float64 // Left edge
	GapY      float64 // Top of the gap
	GapHeight float64 // Passable opening height
	Width     float64
	Scored    bool
}

// NewPipe creates a pipe at x with the given gap height. The gap top is
// drawn uniformly from the legal band [GapMinY, fieldBottom-gapHeight-slack).
//
// Precondition: the field geometry must leave a non-empty band for every
// difficulty's gap height. An empty band is a configuration bug, not a
// runtime condition, and fails loudly.
func NewPipe(rng *rand.Rand, x, gapHeight float64, tune config.Tuning) *Pipe {
	minY := tune.Pipes.GapMinY
	maxY := core.FieldH - core.GroundHeight - gapHeight - tune.Pipes.GapBandSlack
	if maxY <= minY {
		panic(fmt.Sprintf("game: empty gap band [%v, %v) for gap height %v", minY, maxY, gapHeight))
	}

	return &Pipe{
		X:         x,
		GapY:      minY + rng.Float64()*(maxY-minY),
		GapHeight: gapHeight,
		Width:     tune.Pipes.Width,
	}
}

// Advance moves the pipe left by the given per-tick speed.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// Offscreen reports whether the pipe's right edge has passed the left
// field boundary; such pipes are purged from the active collection.
func (p *Pipe) Offscreen() bool {
	return p.X+p.Width < 0
}

// TopRect returns the collision rectangle of the upper obstacle segment.
func (p *Pipe) TopRect() core.RectF {
	return core.NewRectF(p.X, 0, p.Width, p.GapY)
}

// BottomRect returns the collision rectangle of the lower obstacle
// segment, spanning from below the gap down to the ground line.
func (p *Pipe) BottomRect() core.RectF {
	bottomY := p.GapY + p.GapHeight
	return core.NewRectF(p.X, bottomY, p.Width, core.FieldH-core.GroundHeight-bottomY)
}

// CollidesWith tests the bird's hitbox against both obstacle segments.
func (p *Pipe) CollidesWith(b *Bird) bool {
	bounds := b.Bounds()
	return bounds.Overlaps(p.TopRect()) || bounds.Overlaps(p.BottomRect())
}
