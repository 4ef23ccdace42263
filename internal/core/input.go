package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys and mouse clicks to actions; the game
// consumes already-debounced "pressed this frame" events, so every action
// is edge-triggered by construction.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up, left click - flap (doubles as confirm outside Playing)
	ActionConfirm           // Enter - start/retry
	ActionPause             // P, Esc - pause/resume
	ActionQuitToMenu        // Q, B - abandon run, back to menu
	ActionRestart           // R - retry after game over
	ActionQuit              // Ctrl+C - exit program
	ActionEasy              // 1 - select Easy (menu only)
	ActionMedium            // 2 - select Medium (menu only)
	ActionHard              // 3 - select Hard (menu only)
	ActionExtreme           // 4 - select Extreme (menu only)
	ActionHitboxes          // H - toggle hitbox display (debug)
	ActionInvincible        // I - toggle invincibility (cheat)
	ActionSlowMotion        // S - toggle slow motion (cheat)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuitToMenu:
		return "QuitToMenu"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionExtreme:
		return "Extreme"
	case ActionHitboxes:
		return "Hitboxes"
	case ActionInvincible:
		return "Invincible"
	case ActionSlowMotion:
		return "SlowMotion"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
