// Package input turns button presses and the raw terminal byte stream into
// one game command per foreground iteration.
//
// The terminal link carries ordinary keystrokes and three-byte cursor key
// sequences (ESC [ A..D) on the same unframed stream. Demux recognises the
// sequences with a small state machine that never waits for the next byte.
package input

import "github.com/vovakirdan/tui-frogger/internal/core"

// Escape is the first byte of a cursor key sequence.
const Escape byte = 27

// EscapeState counts how much of an escape sequence has been consumed.
type EscapeState uint8

const (
	Idle EscapeState = iota
	SawEscape
	SawBracket
)

// String returns the state name.
func (s EscapeState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case SawEscape:
		return "SawEscape"
	case SawBracket:
		return "SawBracket"
	default:
		return "Unknown"
	}
}

// Kind says where a command came from.
type Kind uint8

const (
	KindNone   Kind = iota
	KindButton      // Value is the button index 0-3
	KindEscape      // Value is the final byte of ESC [ x
	KindChar        // Value is a literal byte
)

// Command is the single input resolved in one iteration. At most one source
// is set; KindNone means nothing was resolved.
type Command struct {
	Kind  Kind
	Value byte
}

// None is the empty command.
var None = Command{}

// rule is one row of the transition table. Rules for a state are tried in
// order; a rule with any set matches every byte.
type rule struct {
	match byte
	any   bool
	next  EscapeState
	emit  Kind
}

var transitions = [...][]rule{
	Idle: {
		{match: Escape, next: SawEscape, emit: KindNone},
		{any: true, next: Idle, emit: KindChar},
	},
	SawEscape: {
		{match: '[', next: SawBracket, emit: KindNone},
		// Anything else aborts the sequence and the byte is dropped.
		{any: true, next: Idle, emit: KindNone},
	},
	SawBracket: {
		{any: true, next: Idle, emit: KindEscape},
	},
}

// ButtonSource yields queued button presses.
type ButtonSource interface {
	Pop() (button int, ok bool)
}

// ByteSource yields received serial bytes without blocking.
type ByteSource interface {
	Take() (b byte, ok bool)
}

// Demux is the escape sequence state machine. It is owned by the foreground.
type Demux struct {
	state EscapeState
}

// State returns the current escape state.
func (d *Demux) State() EscapeState {
	return d.state
}

// Reset abandons any partial sequence.
func (d *Demux) Reset() {
	d.state = Idle
}

// Feed consumes one serial byte.
func (d *Demux) Feed(b byte) Command {
	for _, r := range transitions[d.state] {
		if !r.any && r.match != b {
			continue
		}
		d.state = r.next
		if r.emit == KindNone {
			return None
		}
		return Command{Kind: r.emit, Value: b}
	}
	// Every state ends with a wildcard rule.
	d.state = Idle
	return None
}

// Next consumes at most one input unit. A pending button press wins and is
// never part of an escape sequence; otherwise one serial byte is fed through
// the state machine. Either source may be nil.
func (d *Demux) Next(buttons ButtonSource, serial ByteSource) Command {
	if buttons != nil {
		if b, ok := buttons.Pop(); ok {
			return Command{Kind: KindButton, Value: byte(b)}
		}
	}
	if serial != nil {
		if b, ok := serial.Take(); ok {
			return d.Feed(b)
		}
	}
	return None
}

// Action maps a command to a game action.
func (c Command) Action() core.Action {
	switch c.Kind {
	case KindButton:
		switch c.Value {
		case 0:
			return core.ActionRight
		case 1:
			return core.ActionDown
		case 2:
			return core.ActionUp
		case 3:
			return core.ActionLeft
		}
	case KindEscape:
		switch c.Value {
		case 'A':
			return core.ActionUp
		case 'B':
			return core.ActionDown
		case 'C':
			return core.ActionRight
		case 'D':
			return core.ActionLeft
		}
	case KindChar:
		switch c.Value {
		case 'l', 'L':
			return core.ActionLeft
		case 'u', 'U':
			return core.ActionUp
		case 'd', 'D':
			return core.ActionDown
		case 'r', 'R':
			return core.ActionRight
		case 'p', 'P':
			return core.ActionPause
		}
	}
	return core.ActionNone
}
