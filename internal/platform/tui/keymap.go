package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable. Key messages are
// delivered once per physical press, so every mapped action is
// edge-triggered without extra debouncing.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a hard quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "p":
		return core.ActionPause, false
	case "q", "b":
		return core.ActionQuitToMenu, false
	case "r":
		return core.ActionRestart, false
	case "1":
		return core.ActionEasy, false
	case "2":
		return core.ActionMedium, false
	case "3":
		return core.ActionHard, false
	case "4":
		return core.ActionExtreme, false
	case "h":
		return core.ActionHitboxes, false
	case "i":
		return core.ActionInvincible, false
	case "s":
		return core.ActionSlowMotion, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to a game action. The primary
// button doubles as the jump input.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	m := tea.MouseEvent(msg)
	if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}
