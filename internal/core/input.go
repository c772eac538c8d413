package core

// Action represents a semantic game action, abstracted from physical key presses.
// Each action maps to exactly one game operation; the game never sees raw keys.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow
	ActionDown                  // S, Down arrow
	ActionLeft                  // A, Left arrow
	ActionRight                 // D, Right arrow
	ActionPause                 // P, Esc - pause/unpause
	ActionToggleBoundary        // C - switch bounded/wrapping edges
	ActionRestart               // R - restart from any state
	ActionStart                 // Enter, Space - start from the title screen
	ActionHelp                  // ? - show instructions
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionToggleBoundary:
		return "ToggleBoundary"
	case ActionRestart:
		return "Restart"
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
