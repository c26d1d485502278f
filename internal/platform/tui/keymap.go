package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/input"
	"github.com/vovakirdan/tui-frogger/internal/loop"
)

// DefaultButtonKeys are the keys standing in for buttons 0..3.
const DefaultButtonKeys = "6284"

// KeyMapper turns Bubble Tea key messages back into the inputs the board
// would see: a button press, or the bytes a terminal sends down the serial
// line. Cursor keys become ESC [ A..D so the demultiplexer sees them exactly
// as it would on the wire.
type KeyMapper struct {
	buttons string
}

// NewKeyMapper creates a mapper. Each byte of buttonKeys is a key for button
// 0, 1, 2, 3 in order; an empty string uses DefaultButtonKeys.
func NewKeyMapper(buttonKeys string) *KeyMapper {
	if buttonKeys == "" {
		buttonKeys = DefaultButtonKeys
	}
	return &KeyMapper{buttons: buttonKeys}
}

// Route classifies a key. button is -1 when the key is not a button.
func (km *KeyMapper) Route(msg tea.KeyMsg) (button int, bytes []byte, isQuit bool) {
	if msg.Type == tea.KeyCtrlC {
		return -1, nil, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		if i := strings.IndexRune(km.buttons, msg.Runes[0]); i >= 0 {
			return i, nil, false
		}
	}

	return -1, Encode(msg), false
}

// Encode returns the bytes a terminal sends for a key, or nil for keys with
// no single-byte or cursor encoding.
func Encode(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyUp:
		return []byte{input.Escape, '[', 'A'}
	case tea.KeyDown:
		return []byte{input.Escape, '[', 'B'}
	case tea.KeyRight:
		return []byte{input.Escape, '[', 'C'}
	case tea.KeyLeft:
		return []byte{input.Escape, '[', 'D'}
	case tea.KeyEsc:
		return []byte{input.Escape}
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyRunes:
		var out []byte
		if msg.Alt {
			out = append(out, input.Escape)
		}
		for _, r := range msg.Runes {
			if r < 0x80 {
				out = append(out, byte(r))
			}
		}
		return out
	}
	return nil
}

// Feed delivers a key to the machine's peripherals. It reports whether the
// key asks to quit.
func (km *KeyMapper) Feed(m *loop.Machine, msg tea.KeyMsg) bool {
	button, bytes, isQuit := km.Route(msg)
	if isQuit {
		return true
	}
	if button >= 0 {
		// A full queue drops the press.
		_ = m.Buttons.Press(button)
		return false
	}
	if len(bytes) > 0 {
		m.Serial.Receive(bytes)
	}
	return false
}

// Help describes the controls for the status line.
func (km *KeyMapper) Help() string {
	names := [...]string{"right", "down", "up", "left"}
	var parts []string
	for i := 0; i < len(km.buttons) && i < len(names); i++ {
		parts = append(parts, string(km.buttons[i])+" "+names[i])
	}
	return "buttons: " + strings.Join(parts, ", ") +
		" | arrows or l/u/d/r | p pause | ctrl+c quit"
}
