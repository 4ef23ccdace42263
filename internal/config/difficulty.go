// Package config provides YAML-based tuning configuration and the
// difficulty table for the game.
package config

import "strings"

// Difficulty selects one of the four fixed gameplay tiers.
// Each tier maps deterministically to a (pipe gap, pipe speed) pair;
// there is no per-instance state and no mid-run progression. A pipe
// freezes its gap height at spawn time, so switching difficulty between
// runs never affects pipes that are already on screen.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Extreme
)

// All lists every difficulty in menu order.
func All() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Extreme}
}

// PipeGap returns the vertical gap height for this difficulty, in
// logical playfield units.
func (d Difficulty) PipeGap() float64 {
	switch d {
	case Easy:
		return 220.0
	case Medium:
		return 180.0
	case Hard:
		return 140.0
	case Extreme:
		return 120.0
	default:
		return 180.0
	}
}

// PipeSpeed returns the horizontal pipe speed for this difficulty, in
// logical units per tick (before time scaling).
func (d Difficulty) PipeSpeed() float64 {
	switch d {
	case Easy:
		return 2.0
	case Medium:
		return 2.5
	case Hard:
		return 3.0
	case Extreme:
		return 3.8
	default:
		return 2.5
	}
}

// Name returns the display name for this difficulty.
func (d Difficulty) Name() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Extreme:
		return "Extreme"
	default:
		return "Medium"
	}
}

// Key returns the lowercase identifier used in persisted records
// and the run-history database.
func (d Difficulty) Key() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	default:
		return "medium"
	}
}

// ParseDifficulty maps an identifier (as produced by Key or Name, any
// case) back to a Difficulty. Returns Medium and false for unknown input.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "extreme":
		return Extreme, true
	default:
		return Medium, false
	}
}
