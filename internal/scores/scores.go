// Package scores persists the best score per difficulty.
//
// The record is a small YAML document with one integer per difficulty.
// Persistence is deliberately best-effort: a missing or corrupt file loads
// as all-zero defaults, and a failed save is tolerated by callers. The
// game must never block or fail over its save file.
package scores

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

// DefaultPath is where the record lives unless overridden.
const DefaultPath = "~/.flappy/highscores.yaml"

// Table holds the best score per difficulty.
type Table struct {
	path string

	Easy    int `yaml:"easy"`
	Medium  int `yaml:"medium"`
	Hard    int `yaml:"hard"`
	Extreme int `yaml:"extreme"`
}

// Load reads the persisted table from path. Missing or malformed data
// falls back to an all-zero table silently; the returned table always
// remembers the path for later saves.
func Load(path string) *Table {
	t := &Table{path: expandHome(path)}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return t
	}

	var loaded Table
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return t
	}

	loaded.path = t.path
	return &loaded
}

// Get returns the stored best for a difficulty.
func (t *Table) Get(d config.Difficulty) int {
	switch d {
	case config.Easy:
		return t.Easy
	case config.Medium:
		return t.Medium
	case config.Hard:
		return t.Hard
	case config.Extreme:
		return t.Extreme
	default:
		return 0
	}
}

// Update overwrites the stored best for d iff score is strictly greater
// and reports whether it did. Callers persist only on true to avoid
// redundant writes.
func (t *Table) Update(d config.Difficulty, score int) bool {
	if score <= t.Get(d) {
		return false
	}

	switch d {
	case config.Easy:
		t.Easy = score
	case config.Medium:
		t.Medium = score
	case config.Hard:
		t.Hard = score
	case config.Extreme:
		t.Extreme = score
	}
	return true
}

// Save writes the table to its path. The error return exists so tests can
// assert on the failure path; gameplay callers drop it by policy, since a
// missed save only costs a stale best on the next load.
func (t *Table) Save() error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("scores: cannot marshal table: %w", err)
	}

	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("scores: cannot write %s: %w", t.path, err)
	}
	return nil
}

// Path returns the resolved file path backing this table.
func (t *Table) Path() string {
	return t.path
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
