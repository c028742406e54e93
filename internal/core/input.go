package core

// Action represents a semantic player action, abstracted from physical key
// presses and mouse gestures.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow, swipe up
	ActionDown           // S, J, Down arrow, swipe down
	ActionLeft           // A, H, Left arrow, swipe left
	ActionRight          // D, L, Right arrow, swipe right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to the level picker
	ActionRestart        // R - put the tokens back
	ActionPause          // P, Space - pause/unpause
	ActionNext           // N - next level after a win
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Swipe classifies a pointer drag of (dx, dy) screen cells as a movement
// action. The dominant axis wins; drags shorter than threshold on that axis
// return ActionNone. Columns count half because terminal cells are roughly
// twice as tall as they are wide.
func Swipe(dx, dy, threshold int) Action {
	if threshold < 1 {
		threshold = 1
	}
	ax, ay := Abs(dx)/2, Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return ActionNone
	case ax > ay:
		if ax < threshold {
			return ActionNone
		}
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	default:
		if ay < threshold {
			return ActionNone
		}
		if dy > 0 {
			return ActionDown
		}
		return ActionUp
	}
}
