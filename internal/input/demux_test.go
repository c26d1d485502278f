package input

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/hw"
)

// feedAll runs bytes through the demux and collects emitted commands.
func feedAll(d *Demux, bytes ...byte) []Command {
	var out []Command
	for _, b := range bytes {
		if c := d.Feed(b); c.Kind != KindNone {
			out = append(out, c)
		}
	}
	return out
}

func TestEscapeSequenceEmitsOnce(t *testing.T) {
	var d Demux
	got := feedAll(&d, Escape, '[', 'A')

	if len(got) != 1 {
		t.Fatalf("expected 1 command, got %d: %v", len(got), got)
	}
	if got[0] != (Command{Kind: KindEscape, Value: 'A'}) {
		t.Errorf("got %+v, expected escape 'A'", got[0])
	}
	if d.State() != Idle {
		t.Errorf("state = %v after sequence, expected Idle", d.State())
	}
}

func TestInvalidSecondByteAborts(t *testing.T) {
	var d Demux
	got := feedAll(&d, Escape, 'x')

	if len(got) != 0 {
		t.Errorf("aborted sequence emitted %v", got)
	}
	if d.State() != Idle {
		t.Errorf("state = %v after abort, expected Idle", d.State())
	}

	// The aborting byte is dropped, the next one is read normally.
	got = feedAll(&d, 'l')
	if len(got) != 1 || got[0] != (Command{Kind: KindChar, Value: 'l'}) {
		t.Errorf("byte after abort gave %v", got)
	}
}

func TestAbortingByteIsNotReinterpreted(t *testing.T) {
	var d Demux
	// 'u' would be a move on its own; after ESC it is swallowed.
	if got := feedAll(&d, Escape, 'u'); len(got) != 0 {
		t.Errorf("expected no command, got %v", got)
	}
}

func TestPlainCharacter(t *testing.T) {
	var d Demux
	got := feedAll(&d, 'l')

	if len(got) != 1 || got[0] != (Command{Kind: KindChar, Value: 'l'}) {
		t.Errorf("got %v, expected raw 'l'", got)
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  EscapeState
		b     byte
		to    EscapeState
		emits Kind
	}{
		{"idle escape", Idle, Escape, SawEscape, KindNone},
		{"idle char", Idle, 'p', Idle, KindChar},
		{"idle bracket", Idle, '[', Idle, KindChar},
		{"escape bracket", SawEscape, '[', SawBracket, KindNone},
		{"escape other", SawEscape, 'A', Idle, KindNone},
		{"escape escape", SawEscape, Escape, Idle, KindNone},
		{"bracket final", SawBracket, 'D', Idle, KindEscape},
		{"bracket anything", SawBracket, Escape, Idle, KindEscape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Demux{state: tc.from}
			c := d.Feed(tc.b)
			if d.State() != tc.to {
				t.Errorf("state = %v, expected %v", d.State(), tc.to)
			}
			if c.Kind != tc.emits {
				t.Errorf("emitted kind %v, expected %v", c.Kind, tc.emits)
			}
			if c.Kind != KindNone && c.Value != tc.b {
				t.Errorf("emitted value %q, expected %q", c.Value, tc.b)
			}
		})
	}
}

func TestButtonTakesPriority(t *testing.T) {
	irq := hw.NewController()
	buttons := NewButtonQueue(irq, 2)
	rx := NewRxBuffer(irq, 16)
	var d Demux

	rx.Receive([]byte{Escape, '['})
	if err := buttons.Press(3); err != nil {
		t.Fatalf("Press() failed: %v", err)
	}

	// First iteration: the button, serial untouched.
	c := d.Next(buttons, rx)
	if c != (Command{Kind: KindButton, Value: 3}) {
		t.Fatalf("got %+v, expected button 3", c)
	}
	if d.State() != Idle {
		t.Fatalf("button press changed escape state to %v", d.State())
	}

	// A button arriving mid-sequence does not disturb it.
	if c := d.Next(buttons, rx); c.Kind != KindNone {
		t.Fatalf("ESC emitted %+v", c)
	}
	buttons.Press(1)
	if c := d.Next(buttons, rx); c != (Command{Kind: KindButton, Value: 1}) {
		t.Fatalf("got %+v, expected button 1", c)
	}
	if d.State() != SawEscape {
		t.Fatalf("state = %v, expected SawEscape", d.State())
	}

	if c := d.Next(buttons, rx); c.Kind != KindNone {
		t.Fatalf("'[' emitted %+v", c)
	}
	rx.Receive([]byte{'C'})
	if c := d.Next(buttons, rx); c != (Command{Kind: KindEscape, Value: 'C'}) {
		t.Fatalf("got %+v, expected escape 'C'", c)
	}

	if c := d.Next(buttons, rx); c != None {
		t.Errorf("idle sources gave %+v", c)
	}
}

func TestNextWithNilSources(t *testing.T) {
	var d Demux
	if c := d.Next(nil, nil); c != None {
		t.Errorf("Next(nil, nil) = %+v", c)
	}
}

func TestCommandAction(t *testing.T) {
	tests := []struct {
		cmd  Command
		want core.Action
	}{
		{Command{KindButton, 0}, core.ActionRight},
		{Command{KindButton, 1}, core.ActionDown},
		{Command{KindButton, 2}, core.ActionUp},
		{Command{KindButton, 3}, core.ActionLeft},
		{Command{KindButton, 4}, core.ActionNone},
		{Command{KindEscape, 'A'}, core.ActionUp},
		{Command{KindEscape, 'B'}, core.ActionDown},
		{Command{KindEscape, 'C'}, core.ActionRight},
		{Command{KindEscape, 'D'}, core.ActionLeft},
		{Command{KindEscape, 'p'}, core.ActionNone},
		{Command{KindChar, 'l'}, core.ActionLeft},
		{Command{KindChar, 'U'}, core.ActionUp},
		{Command{KindChar, 'D'}, core.ActionDown},
		{Command{KindChar, 'r'}, core.ActionRight},
		{Command{KindChar, 'P'}, core.ActionPause},
		{Command{KindChar, 'p'}, core.ActionPause},
		{Command{KindChar, 'x'}, core.ActionNone},
		{None, core.ActionNone},
	}

	for _, tc := range tests {
		if got := tc.cmd.Action(); got != tc.want {
			t.Errorf("%+v.Action() = %v, expected %v", tc.cmd, got, tc.want)
		}
	}
}
