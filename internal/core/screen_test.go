package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, -1) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "frogger")

	if got := s.Row(0); got != "       fro" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}

	s.DrawTextCentered(1, "ab", ColorRed)
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("Row(1) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("NewScreen(-3, -1) gave %dx%d, expected 0x0", s.Width(), s.Height())
	}
	s.Resize(4, -2)
	if s.Width() != 4 || s.Height() != 0 {
		t.Errorf("Resize(4, -2) gave %dx%d, expected 4x0", s.Width(), s.Height())
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get() outside an empty screen = %q, expected space", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'Z')
	s.Resize(3, 2)

	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'Z') {
		t.Error("Resize() should discard content")
	}
}

func TestWrapAndClamp(t *testing.T) {
	tests := []struct {
		val, n, want int
	}{
		{0, 16, 0},
		{16, 16, 0},
		{-1, 16, 15},
		{-17, 16, 15},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.want)
		}
	}

	if Clamp(-3, 0, 7) != 0 || Clamp(9, 0, 7) != 7 || Clamp(4, 0, 7) != 4 {
		t.Error("Clamp() out of range")
	}
}

func TestActionAndDirection(t *testing.T) {
	if !ActionLeft.IsMove() || !ActionRight.IsMove() || ActionPause.IsMove() || ActionNone.IsMove() {
		t.Error("IsMove() classification wrong")
	}
	if DirLeft.Opposite() != DirRight {
		t.Error("Opposite() of left should be right")
	}
	if DirLeft.String() != "left" || DirRight.String() != "right" {
		t.Error("Direction.String() wrong")
	}
}
