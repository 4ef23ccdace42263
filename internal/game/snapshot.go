package game

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// PipeView is a read-only copy of one pipe's geometry for rendering.
type PipeView struct {
	X         float64
	GapY      float64
	GapHeight float64
	Width     float64
}

// ParticleView is a read-only copy of one particle for rendering.
type ParticleView struct {
	X, Y  float64
	Life  float64
	Size  float64
	Color core.Color
}

// Snapshot is the per-frame render surface: everything presentation
// needs, with no game logic required on the renderer's side. All slices
// are copies; mutating a snapshot never affects the game.
type Snapshot struct {
	State      State
	Difficulty config.Difficulty

	Score int
	Best  int                       // Best for the active difficulty
	Bests map[config.Difficulty]int // All bests, for the menu screen

	BirdX        float64
	BirdY        float64
	BirdRotation float64
	BirdHitbox   core.RectF

	Pipes     []PipeView
	Particles []ParticleView

	BackgroundOffset float64

	Invincible   bool
	SlowMotion   bool
	ShowHitboxes bool
}

// Snapshot captures the current frame for rendering.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeView, len(g.pipes))
	for i, p := range g.pipes {
		pipes[i] = PipeView{
			X:         p.X,
			GapY:      p.GapY,
			GapHeight: p.GapHeight,
			Width:     p.Width,
		}
	}

	particles := make([]ParticleView, len(g.particles))
	for i, p := range g.particles {
		particles[i] = ParticleView{
			X:     p.X,
			Y:     p.Y,
			Life:  p.Life,
			Size:  p.Size,
			Color: p.Color,
		}
	}

	bests := make(map[config.Difficulty]int, 4)
	for _, d := range config.All() {
		bests[d] = g.highScores.Get(d)
	}

	return Snapshot{
		State:            g.state,
		Difficulty:       g.difficulty,
		Score:            g.score,
		Best:             g.highScores.Get(g.difficulty),
		Bests:            bests,
		BirdX:            g.bird.X,
		BirdY:            g.bird.Y,
		BirdRotation:     g.bird.Rotation,
		BirdHitbox:       g.bird.Bounds(),
		Pipes:            pipes,
		Particles:        particles,
		BackgroundOffset: g.backgroundOffset,
		Invincible:       g.invincible,
		SlowMotion:       g.slowMotion,
		ShowHitboxes:     g.showHitboxes,
	}
}
