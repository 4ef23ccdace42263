package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultTuning returns the built-in tuning parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: Physics{
			Gravity:      0.5,
			JumpStrength: -8.0,
			SlowMotion:   0.5,
		},
		Bird: Bird{
			X:           150.0,
			Size:        30.0,
			HitboxInset: 5.0,
		},
		Pipes: Pipes{
			Width:         60.0,
			SpawnMargin:   50.0,
			SpawnInterval: 90.0,
			GapMinY:       150.0,
			GapBandSlack:  100.0,
		},
		Particles: Particles{
			LifeDecay:  0.02,
			Gravity:    0.2,
			JumpCount:  5,
			ScoreCount: 15,
			DeathCount: 30,
		},
		World: World{
			ScrollSpeed: 1.0,
			ScrollWrap:  50.0,
		},
	}
}
