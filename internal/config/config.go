package config

// Tuning contains all gameplay tuning parameters. Values live in the
// logical 800x600 playfield coordinate space. The difficulty table
// (gap/speed per tier) is fixed in code and deliberately not part of
// this file: a config cannot change per-tier semantics.
type Tuning struct {
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Pipes     Pipes     `yaml:"pipes"`
	Particles Particles `yaml:"particles"`
	World     World     `yaml:"world"`
}

// Physics defines the bird's motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration per tick
	JumpStrength float64 `yaml:"jump_strength"` // Velocity set on jump (negative = up)
	SlowMotion   float64 `yaml:"slow_motion"`   // Time scale while slow motion is active
}

// Bird defines the bird's geometry.
type Bird struct {
	X           float64 `yaml:"x"`            // Fixed horizontal position after spawn
	Size        float64 `yaml:"size"`         // Visual sprite size (square)
	HitboxInset float64 `yaml:"hitbox_inset"` // Forgiveness margin on every hitbox side
}

// Pipes defines obstacle geometry and spawn cadence.
type Pipes struct {
	Width         float64 `yaml:"width"`          // Pipe width
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Off-screen margin right of the field at spawn
	SpawnInterval float64 `yaml:"spawn_interval"` // Ticks between spawns (time-scaled)
	GapMinY       float64 `yaml:"gap_min_y"`      // Lowest legal gap top
	GapBandSlack  float64 `yaml:"gap_band_slack"` // Extra margin above the ground for the band
}

// Particles defines the cosmetic particle bursts. Purely visual; none of
// these values may feed back into collision or scoring.
type Particles struct {
	LifeDecay  float64 `yaml:"life_decay"`  // Life lost per tick
	Gravity    float64 `yaml:"gravity"`     // Downward acceleration per tick
	JumpCount  int     `yaml:"jump_count"`  // Burst size on jump
	ScoreCount int     `yaml:"score_count"` // Burst size on score
	DeathCount int     `yaml:"death_count"` // Burst size on death
}

// World defines background scroll behavior.
type World struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // Background offset decrease per tick
	ScrollWrap  float64 `yaml:"scroll_wrap"`  // Offset magnitude at which scroll wraps to zero
}
