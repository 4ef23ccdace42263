package core

// Logical playfield dimensions. Game physics always runs in this fixed
// coordinate space; the platform layer projects it onto the terminal grid.
// Precondition for pipe placement: FieldH must leave a non-empty gap band
// for every difficulty (see game.NewPipe).
const (
	FieldW       = 800.0
	FieldH       = 600.0
	GroundHeight = 80.0
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed (0 means use current time in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
