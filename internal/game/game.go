// Package game implements the frame-driven game core: bird physics, pipe
// spawning, collision and scoring, cosmetic particles, and the mode state
// machine. It has no rendering or input-polling dependencies; the platform
// layer feeds it per-frame action events and reads back snapshots.
package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/scores"
)

// State is the current game mode. Exactly one is active at a time.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the aggregate root owning all mutable game state. It is
// exclusively owned and mutated by the frame loop; no concurrent access.
type Game struct {
	tune config.Tuning
	rng  *rand.Rand

	bird      *Bird
	pipes     []*Pipe
	particles []Particle

	score      int
	highScores *scores.Table
	state      State
	difficulty config.Difficulty

	spawnTimer       float64
	backgroundOffset float64

	showHitboxes    bool
	invincible      bool
	slowMotion      bool
	slowMotionTicks int
}

// New creates a game in the Menu state. The RNG seed must be non-zero;
// the platform layer substitutes a time-based seed for zero. High scores
// are loaded by the caller and owned by the game from here on.
func New(cfg core.RuntimeConfig, tune config.Tuning, highScores *scores.Table) *Game {
	g := &Game{
		tune:       tune,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		highScores: highScores,
		state:      StateMenu,
		difficulty: config.Medium,
	}
	g.reset()
	return g
}

// reset prepares a fresh run: new bird, empty collections, zero score and
// timers, cheats off. The hitbox display toggle survives across runs, as
// does the selected difficulty.
func (g *Game) reset() {
	g.bird = NewBird(g.tune.Bird.X, core.FieldH/2, g.tune)
	g.pipes = g.pipes[:0]
	g.particles = g.particles[:0]
	g.score = 0
	g.spawnTimer = 0
	g.invincible = false
	g.slowMotion = false
	g.slowMotionTicks = 0
}

// Step advances the game by one tick, dispatching on the current mode.
// Input actions arrive already debounced: each is set for exactly one
// frame per physical press. Actions not recognized by the current mode
// are silently ignored.
func (g *Game) Step(in core.InputFrame) {
	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StatePaused:
		g.stepPaused(in)
	case StateGameOver:
		g.stepGameOver(in)
	}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		g.reset()
		g.state = StatePlaying
		return
	}

	// Difficulty selection takes effect immediately for the next run.
	switch {
	case in.Has(core.ActionEasy):
		g.difficulty = config.Easy
	case in.Has(core.ActionMedium):
		g.difficulty = config.Medium
	case in.Has(core.ActionHard):
		g.difficulty = config.Hard
	case in.Has(core.ActionExtreme):
		g.difficulty = config.Extreme
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		// No state mutation beyond the mode flag; resuming continues
		// exactly where play left off.
		g.state = StatePaused
		return
	}

	if in.Has(core.ActionJump) {
		g.bird.Jump()
		g.particles = burst(g.rng, g.particles, g.bird.X, g.bird.Y,
			core.ColorSkyBlue, g.tune.Particles.JumpCount)
	}

	if in.Has(core.ActionHitboxes) {
		g.showHitboxes = !g.showHitboxes
	}
	if in.Has(core.ActionInvincible) {
		g.invincible = !g.invincible
	}
	if in.Has(core.ActionSlowMotion) {
		g.slowMotion = !g.slowMotion
	}

	// One uniform time scale for every advancement quantity this frame.
	timeScale := 1.0
	if g.slowMotion {
		timeScale = g.tune.Physics.SlowMotion
		g.slowMotionTicks++
	}

	g.bird.Update(timeScale)

	g.backgroundOffset -= g.tune.World.ScrollSpeed * timeScale
	if g.backgroundOffset <= -g.tune.World.ScrollWrap {
		g.backgroundOffset = 0
	}

	g.spawnTimer += timeScale
	if g.spawnTimer > g.tune.Pipes.SpawnInterval {
		g.spawnPipe()
		g.spawnTimer = 0
	}

	speed := g.difficulty.PipeSpeed() * timeScale
	for _, p := range g.pipes {
		p.Advance(speed)

		// Scoring is evaluated independently of collision: a pipe can be
		// scored and still end the run in the same frame.
		if !p.Scored && p.X+p.Width < g.bird.X {
			p.Scored = true
			g.score++
			g.particles = burst(g.rng, g.particles, p.X+p.Width/2, core.FieldH/2,
				core.ColorGold, g.tune.Particles.ScoreCount)
		}

		if !g.invincible && p.CollidesWith(g.bird) {
			g.endRun()
		}
	}

	// Purge pipes fully past the left edge, preserving order.
	kept := g.pipes[:0]
	for _, p := range g.pipes {
		if !p.Offscreen() {
			kept = append(kept, p)
		}
	}
	g.pipes = kept

	// Ceiling and ground checks use the sprite edge, not the inset hitbox.
	floorY := core.FieldH - core.GroundHeight
	if !g.invincible && (g.bird.Y-g.bird.HalfSize() <= 0 || g.bird.Y+g.bird.HalfSize() >= floorY) {
		g.endRun()
	}

	for i := range g.particles {
		g.particles[i].Update(g.tune.Particles)
	}
	live := g.particles[:0]
	for _, p := range g.particles {
		if !p.Dead() {
			live = append(live, p)
		}
	}
	g.particles = live
}

func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionJump), in.Has(core.ActionConfirm):
		g.state = StatePlaying
	case in.Has(core.ActionQuitToMenu):
		// Abandons the run: the score is lost and no high-score attempt
		// is made, since the run never reached game over.
		g.state = StateMenu
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionJump), in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
		g.reset()
		g.state = StatePlaying
	case in.Has(core.ActionQuitToMenu), in.Has(core.ActionPause):
		g.state = StateMenu
	}
}

// spawnPipe creates one pipe just past the right field edge with the gap
// height frozen from the active difficulty.
func (g *Game) spawnPipe() {
	x := core.FieldW + g.tune.Pipes.SpawnMargin
	g.pipes = append(g.pipes, NewPipe(g.rng, x, g.difficulty.PipeGap(), g.tune))
}

// endRun performs the one-time transition to GameOver: death burst and a
// high-score attempt with a best-effort save. Multiple collisions in the
// same frame collapse into a single transition.
func (g *Game) endRun() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.particles = burst(g.rng, g.particles, g.bird.X, g.bird.Y,
		core.ColorBrightRed, g.tune.Particles.DeathCount)

	if g.highScores.Update(g.difficulty, g.score) {
		// Best-effort by policy: a missed save only costs a stale best
		// on the next load.
		_ = g.highScores.Save()
	}
}

// State returns the current mode.
func (g *Game) State() State {
	return g.state
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// SetDifficulty preselects a difficulty from outside the menu, e.g. a
// command line flag. Ignored once a run has started.
func (g *Game) SetDifficulty(d config.Difficulty) {
	if g.state == StateMenu {
		g.difficulty = d
	}
}
