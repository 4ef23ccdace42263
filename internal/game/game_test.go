package game

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/scores"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	table := scores.Load(filepath.Join(t.TempDir(), "highscores.yaml"))
	return New(cfg, config.DefaultTuning(), table)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame(core.ActionConfirm))
	if g.State() != StatePlaying {
		t.Fatalf("expected Playing after confirm in menu, got %v", g.State())
	}
}

func TestBirdGravityStep(t *testing.T) {
	b := NewBird(150, 300, config.DefaultTuning())

	b.Update(1.0)

	if b.Velocity != 0.5 {
		t.Errorf("Velocity after one tick = %v, expected 0.5", b.Velocity)
	}
	if b.Y != 300.5 {
		t.Errorf("Y after one tick = %v, expected 300.5", b.Y)
	}
	if b.Rotation != 1.5 {
		t.Errorf("Rotation after one tick = %v, expected 1.5", b.Rotation)
	}
}

func TestBirdJumpOverridesVelocity(t *testing.T) {
	b := NewBird(150, 300, config.DefaultTuning())
	b.Velocity = 3.0

	b.Jump()

	if b.Velocity != -8.0 {
		t.Errorf("Jump should set velocity to exactly -8.0, got %v", b.Velocity)
	}
}

func TestBirdRotationClamped(t *testing.T) {
	b := NewBird(150, 300, config.DefaultTuning())

	b.Velocity = -20
	b.Update(1.0)
	if b.Rotation != -30 {
		t.Errorf("Rotation floor = %v, expected -30", b.Rotation)
	}

	b.Velocity = 100
	b.Update(1.0)
	if b.Rotation != 90 {
		t.Errorf("Rotation ceiling = %v, expected 90", b.Rotation)
	}
}

func TestBirdBoundsInset(t *testing.T) {
	b := NewBird(150, 300, config.DefaultTuning())

	bounds := b.Bounds()

	// 30x30 sprite with a 5 unit forgiveness margin on every side
	if bounds.X != 140 || bounds.Y != 290 {
		t.Errorf("Bounds origin = (%v, %v), expected (140, 290)", bounds.X, bounds.Y)
	}
	if bounds.W != 20 || bounds.H != 20 {
		t.Errorf("Bounds size = %vx%v, expected 20x20", bounds.W, bounds.H)
	}
}

func TestPipeGapBand(t *testing.T) {
	g := newTestGame(t, 7)

	// Field 600 high with ground 80: a 180 gap must start in [150, 240).
	for i := 0; i < 500; i++ {
		p := NewPipe(g.rng, 850, 180, g.tune)
		if p.GapY < 150 || p.GapY >= 240 {
			t.Fatalf("GapY = %v outside legal band [150, 240)", p.GapY)
		}
	}
}

func TestPipeEmptyBandPanics(t *testing.T) {
	g := newTestGame(t, 7)

	defer func() {
		if recover() == nil {
			t.Error("NewPipe with an empty gap band should panic")
		}
	}()
	NewPipe(g.rng, 850, 400, g.tune)
}

func TestPipeOffscreen(t *testing.T) {
	p := &Pipe{X: 10, Width: 60}
	if p.Offscreen() {
		t.Error("Pipe partially visible should not be offscreen")
	}

	p.X = -60
	if !p.Offscreen() {
		t.Error("Pipe fully past the left edge should be offscreen")
	}
}

func TestSpawnCadence(t *testing.T) {
	g := newTestGame(t, 42)
	startPlaying(t, g)
	g.invincible = true // keep the run alive without steering

	for i := 0; i < 90; i++ {
		g.Step(frame())
	}
	if len(g.pipes) != 0 {
		t.Fatalf("No pipe should spawn during the first 90 ticks, got %d", len(g.pipes))
	}

	g.Step(frame())
	if len(g.pipes) != 1 {
		t.Fatalf("Exactly one pipe should spawn on tick 91, got %d", len(g.pipes))
	}
	if g.spawnTimer != 0 {
		t.Errorf("Spawn timer should reset after spawning, got %v", g.spawnTimer)
	}

	// Gap height is frozen from the active difficulty at spawn time.
	if g.pipes[0].GapHeight != config.Medium.PipeGap() {
		t.Errorf("GapHeight = %v, expected %v", g.pipes[0].GapHeight, config.Medium.PipeGap())
	}
}

func TestScoringOncePerPipe(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	// Right edge just ahead of the bird; the gap swallows the bird's path.
	p := &Pipe{X: 91, GapY: 150, GapHeight: 300, Width: 60}
	g.pipes = append(g.pipes, p)

	g.Step(frame())
	if !p.Scored {
		t.Fatal("Pipe should be scored once its right edge passes the bird")
	}
	if g.Score() != 1 {
		t.Fatalf("Score = %d, expected 1", g.Score())
	}

	// Never double-counts, never decrements.
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.Score() != 1 {
		t.Errorf("Score after further ticks = %d, expected 1", g.Score())
	}
	if !p.Scored {
		t.Error("Scored flag must never reset")
	}
}

func TestScoringAndCollisionSameFrame(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	// The pipe scores this frame and its bottom segment overlaps the bird:
	// both effects fire independently.
	p := &Pipe{X: 91, GapY: 100, GapHeight: 50, Width: 60}
	g.pipes = append(g.pipes, p)

	g.Step(frame())

	if g.Score() != 1 {
		t.Errorf("Score = %d, expected 1 (scoring is independent of collision)", g.Score())
	}
	if g.State() != StateGameOver {
		t.Errorf("State = %v, expected GameOver", g.State())
	}
}

func TestPipeCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	// Bottom segment spans the bird's row.
	g.pipes = append(g.pipes, &Pipe{X: 140, GapY: 100, GapHeight: 50, Width: 60})

	g.Step(frame())

	if g.State() != StateGameOver {
		t.Errorf("State = %v, expected GameOver", g.State())
	}
}

func TestSimultaneousCollisionsSingleTransition(t *testing.T) {
	g := newTestGame(t, 1)
	g.highScores.Update(config.Medium, 0)
	startPlaying(t, g)
	g.score = 5

	g.pipes = append(g.pipes,
		&Pipe{X: 140, GapY: 100, GapHeight: 50, Width: 60},
		&Pipe{X: 145, GapY: 100, GapHeight: 50, Width: 60},
	)

	g.Step(frame())

	if g.State() != StateGameOver {
		t.Fatalf("State = %v, expected GameOver", g.State())
	}
	// Exactly one death burst despite two overlapping pipes.
	if len(g.particles) != g.tune.Particles.DeathCount {
		t.Errorf("Particle count = %d, expected one burst of %d",
			len(g.particles), g.tune.Particles.DeathCount)
	}
}

func TestInvincibilityIgnoresCollisions(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	g.Step(frame(core.ActionInvincible))

	// Overlapping pipe, plus drive the bird into the ground.
	g.pipes = append(g.pipes, &Pipe{X: 140, GapY: 100, GapHeight: 50, Width: 60})
	g.bird.Y = core.FieldH - core.GroundHeight

	for i := 0; i < 30; i++ {
		g.Step(frame())
		if g.State() != StatePlaying {
			t.Fatalf("Collision altered state to %v while invincible", g.State())
		}
	}
}

func TestGroundCollision(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	g.bird.Y = core.FieldH - core.GroundHeight - 10 // sprite edge past the ground line
	g.Step(frame())

	if g.State() != StateGameOver {
		t.Errorf("State = %v, expected GameOver on ground contact", g.State())
	}
}

func TestCeilingCollision(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	g.bird.Y = 10
	g.bird.Velocity = -8
	g.Step(frame())

	if g.State() != StateGameOver {
		t.Errorf("State = %v, expected GameOver on ceiling contact", g.State())
	}
}

func TestSlowMotionUniformDilation(t *testing.T) {
	const slowTicks = 80
	const normalTicks = slowTicks / 2

	slow := newTestGame(t, 9)
	startPlaying(t, slow)
	slow.invincible = true
	slow.slowMotion = true
	slow.pipes = append(slow.pipes, &Pipe{X: 2000, GapY: 200, GapHeight: 200, Width: 60})

	normal := newTestGame(t, 9)
	startPlaying(t, normal)
	normal.invincible = true
	normal.pipes = append(normal.pipes, &Pipe{X: 2000, GapY: 200, GapHeight: 200, Width: 60})

	for i := 0; i < slowTicks; i++ {
		slow.Step(frame())
	}
	for i := 0; i < normalTicks; i++ {
		normal.Step(frame())
	}

	// Spawn-timer accumulation, background scroll, and pipe advance are
	// linear in time and must match exactly.
	if slow.spawnTimer != normal.spawnTimer {
		t.Errorf("Spawn timer: slow %v vs normal %v", slow.spawnTimer, normal.spawnTimer)
	}
	if slow.backgroundOffset != normal.backgroundOffset {
		t.Errorf("Background offset: slow %v vs normal %v", slow.backgroundOffset, normal.backgroundOffset)
	}
	if slow.pipes[0].X != normal.pipes[0].X {
		t.Errorf("Pipe X: slow %v vs normal %v", slow.pipes[0].X, normal.pipes[0].X)
	}

	// Bird displacement agrees up to Euler integration order: the two
	// schemes differ by at most gravity*ticks/4.
	slowDrop := slow.bird.Y - core.FieldH/2
	normalDrop := normal.bird.Y - core.FieldH/2
	bound := slow.tune.Physics.Gravity * float64(normalTicks) / 4
	if diff := math.Abs(slowDrop - normalDrop); diff > bound+1e-9 {
		t.Errorf("Bird displacement: slow %v vs normal %v (diff %v > bound %v)",
			slowDrop, normalDrop, diff, bound)
	}
}

func TestJumpSpawnsParticleBurst(t *testing.T) {
	g := newTestGame(t, 3)
	startPlaying(t, g)

	g.Step(frame(core.ActionJump))

	if len(g.particles) != g.tune.Particles.JumpCount {
		t.Errorf("Particle count after jump = %d, expected %d",
			len(g.particles), g.tune.Particles.JumpCount)
	}
	if g.bird.Velocity >= 0 {
		t.Errorf("Jump should set upward velocity, got %v", g.bird.Velocity)
	}
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame(t, 3)
	startPlaying(t, g)
	g.invincible = true

	g.Step(frame(core.ActionJump))

	// Life 1.0 at a decay of 0.02 per tick: everything dies within 50 ticks.
	for i := 0; i < 55; i++ {
		g.Step(frame())
	}
	if len(g.particles) != 0 {
		t.Errorf("All particles should have expired, %d remain", len(g.particles))
	}
}

func TestParticlesDoNotAffectGameplay(t *testing.T) {
	g := newTestGame(t, 3)
	startPlaying(t, g)

	// Flood the bird's own position with particles: no collision, no score.
	g.particles = burst(g.rng, g.particles, g.bird.X, g.bird.Y, core.ColorGold, 100)

	g.Step(frame())

	if g.State() != StatePlaying {
		t.Errorf("Particles altered game state: %v", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Particles altered score: %d", g.Score())
	}
}

func TestMenuDifficultySelection(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionExtreme))
	if g.Difficulty() != config.Extreme {
		t.Errorf("Difficulty = %v, expected Extreme", g.Difficulty())
	}

	g.Step(frame(core.ActionEasy))
	if g.Difficulty() != config.Easy {
		t.Errorf("Difficulty = %v, expected Easy", g.Difficulty())
	}

	// Selection input is only recognized in the menu.
	startPlaying(t, g)
	g.Step(frame(core.ActionHard))
	if g.Difficulty() != config.Easy {
		t.Errorf("Difficulty changed mid-run to %v", g.Difficulty())
	}
}

func TestPauseResumeContinuesExactly(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)

	for i := 0; i < 20; i++ {
		g.Step(frame())
	}
	birdY := g.bird.Y
	timer := g.spawnTimer
	score := g.Score()

	g.Step(frame(core.ActionPause))
	if g.State() != StatePaused {
		t.Fatalf("State = %v, expected Paused", g.State())
	}

	// Nothing advances while paused.
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if g.bird.Y != birdY || g.spawnTimer != timer || g.Score() != score {
		t.Error("Paused game must not mutate positions, timers, or score")
	}

	g.Step(frame(core.ActionPause))
	if g.State() != StatePlaying {
		t.Fatalf("State = %v, expected Playing after resume", g.State())
	}
	if g.bird.Y != birdY {
		t.Error("Resume must continue exactly where play left off")
	}
}

func TestPausedQuitToMenuAbandonsRun(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)
	g.score = 3

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionQuitToMenu))

	if g.State() != StateMenu {
		t.Fatalf("State = %v, expected Menu", g.State())
	}
	// The run never reached game over, so no high-score attempt was made.
	if g.highScores.Get(g.Difficulty()) != 0 {
		t.Errorf("Abandoned run must not record a high score, got %d",
			g.highScores.Get(g.Difficulty()))
	}
}

func TestGameOverTransitions(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)
	g.bird.Y = core.FieldH // into the ground
	g.Step(frame())
	if g.State() != StateGameOver {
		t.Fatalf("setup: expected GameOver, got %v", g.State())
	}

	// Retry performs a full reset.
	g.Step(frame(core.ActionRestart))
	if g.State() != StatePlaying {
		t.Fatalf("State = %v, expected Playing after retry", g.State())
	}
	if g.Score() != 0 || len(g.pipes) != 0 || len(g.particles) != 0 {
		t.Error("Retry must fully reset score, pipes, and particles")
	}
	if g.bird.Y != core.FieldH/2 {
		t.Errorf("Retry must respawn the bird at field center, got %v", g.bird.Y)
	}

	// And game over -> menu.
	g.bird.Y = core.FieldH
	g.Step(frame())
	g.Step(frame(core.ActionQuitToMenu))
	if g.State() != StateMenu {
		t.Errorf("State = %v, expected Menu", g.State())
	}
}

func TestResetClearsCheats(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)
	g.Step(frame(core.ActionInvincible))
	g.Step(frame(core.ActionSlowMotion))
	g.Step(frame(core.ActionHitboxes))

	g.bird.Y = core.FieldH
	g.invincible = false // let the crash land
	g.Step(frame())
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Invincible || snap.SlowMotion {
		t.Error("Reset must clear invincibility and slow motion")
	}
	// The hitbox display is a debug preference and survives resets.
	if !snap.ShowHitboxes {
		t.Error("Hitbox display should survive a reset")
	}
}

func TestHighScorePersistedOnGameOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.yaml")
	cfg := core.DefaultConfig()
	cfg.Seed = 11
	g := New(cfg, config.DefaultTuning(), scores.Load(path))

	startPlaying(t, g)
	g.score = 7
	g.bird.Y = core.FieldH
	g.Step(frame())

	if g.State() != StateGameOver {
		t.Fatalf("setup: expected GameOver, got %v", g.State())
	}

	reloaded := scores.Load(path)
	if reloaded.Get(config.Medium) != 7 {
		t.Errorf("Persisted best = %d, expected 7", reloaded.Get(config.Medium))
	}

	// A worse run leaves the stored best untouched.
	g.Step(frame(core.ActionRestart))
	g.score = 3
	g.bird.Y = core.FieldH
	g.Step(frame())

	reloaded = scores.Load(path)
	if reloaded.Get(config.Medium) != 7 {
		t.Errorf("Worse run overwrote best: got %d, expected 7", reloaded.Get(config.Medium))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, float64, int) {
		g := newTestGame(t, 12345)
		startPlaying(t, g)
		for i := 0; i < 500; i++ {
			in := frame()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
			if g.State() == StateGameOver {
				break
			}
		}
		return g.Score(), g.bird.Y, len(g.pipes)
	}

	score1, y1, pipes1 := run()
	score2, y2, pipes2 := run()

	if score1 != score2 || y1 != y2 || pipes1 != pipes2 {
		t.Errorf("Same seed and inputs diverged: (%d, %v, %d) vs (%d, %v, %d)",
			score1, y1, pipes1, score2, y2, pipes2)
	}
}

func TestOffscreenPipesPurged(t *testing.T) {
	g := newTestGame(t, 2)
	startPlaying(t, g)
	g.invincible = true

	g.pipes = append(g.pipes,
		&Pipe{X: -58, GapY: 200, GapHeight: 200, Width: 60, Scored: true},
		&Pipe{X: 500, GapY: 200, GapHeight: 200, Width: 60},
	)

	g.Step(frame())

	if len(g.pipes) != 1 {
		t.Fatalf("Offscreen pipe should be purged, %d pipes remain", len(g.pipes))
	}
	if g.pipes[0].X >= 500 {
		t.Error("Purge kept the wrong pipe")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 2)
	startPlaying(t, g)
	g.pipes = append(g.pipes, &Pipe{X: 500, GapY: 200, GapHeight: 200, Width: 60})

	snap := g.Snapshot()
	if len(snap.Pipes) != 1 {
		t.Fatalf("Snapshot should carry 1 pipe, got %d", len(snap.Pipes))
	}

	snap.Pipes[0].X = -999
	if g.pipes[0].X != 500 {
		t.Error("Mutating a snapshot must not affect the game")
	}

	if snap.State != StatePlaying || snap.Score != 0 {
		t.Errorf("Snapshot state/score = %v/%d", snap.State, snap.Score)
	}
	if snap.BirdX != g.tune.Bird.X {
		t.Errorf("Snapshot BirdX = %v", snap.BirdX)
	}
}
