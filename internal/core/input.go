package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to actions; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - one tile west
	ActionRight          // Right arrow, l - one tile east
	ActionUp             // Up arrow, k - one tile north
	ActionDown           // Down arrow, j - one tile south
	ActionSelect         // c, Tab - cycle the selected character
	ActionPause          // p - pause/unpause
	ActionRestart        // r - restart after game over
	ActionQuit           // q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionSelect:  "select",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

// String returns the input token for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsDirection reports whether the action moves the player.
func (a Action) IsDirection() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return true
	default:
		return false
	}
}

// Delta returns the unit grid offset for a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	default:
		return 0, 0
	}
}
