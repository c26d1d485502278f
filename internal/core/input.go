package core

// Action represents a semantic game action, abstracted from physical key
// presses, buttons and escape sequences.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // button 3, ESC [ D, l
	ActionUp           // button 2, ESC [ A, u
	ActionDown         // button 1, ESC [ B, d
	ActionRight        // button 0, ESC [ C, r
	ActionPause        // p
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the frog.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionRight
}

// Direction is a horizontal scroll or move direction: -1 left, +1 right.
type Direction int8

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return -d
}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 {
		return "left"
	}
	return "right"
}
