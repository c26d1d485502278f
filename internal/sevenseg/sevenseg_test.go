package sevenseg

import "testing"

func TestDigitTable(t *testing.T) {
	expected := []Segments{63, 6, 91, 79, 102, 109, 125, 7, 127, 111}
	for d, want := range expected {
		if got := Digit(d); got != want {
			t.Errorf("Digit(%d) = %d, expected %d", d, got, want)
		}
	}
	if Digit(-1) != Blank || Digit(10) != Blank {
		t.Error("out-of-range digits should be blank")
	}
}

func TestDecode(t *testing.T) {
	for d := 0; d < 10; d++ {
		got, dp, ok := Decode(Digit(d) | SegDP)
		if !ok || got != d || !dp {
			t.Errorf("Decode(Digit(%d)|DP) = %d, %v, %v", d, got, dp, ok)
		}
	}
	if _, _, ok := Decode(Blank); ok {
		t.Error("blank should not decode to a digit")
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		centis uint16
		want   string
	}{
		{"zero blanks right", Right, 0, " "},
		{"zero blanks left", Left, 0, " "},
		{"fourteen seconds right", Right, 1400, "5"},
		{"fourteen seconds left", Left, 1400, "1"},
		{"just under fourteen right", Right, 1399, "4"},
		{"just under fourteen left", Left, 1399, "1"},
		{"five seconds right", Right, 550, "6"},
		{"five seconds left blank", Left, 550, " "},
		{"nine and a bit left", Left, 950, "1"},
		{"nine and a bit right", Right, 950, "0"},
		{"under one second left", Left, 99, "0."},
		{"under one second right tenths", Right, 99, "9"},
		{"last tick right", Right, 1, "0"},
		{"last tick left", Left, 1, "0."},
		{"exactly one second right shows tenths", Right, 100, "0"},
		{"exactly one second left blank", Left, 100, " "},
		{"twenty four seconds", Left, 2400, "2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Pattern(tc.pos, tc.centis).String(); got != tc.want {
				t.Errorf("Pattern(%v, %d) = %q, expected %q", tc.pos, tc.centis, got, tc.want)
			}
		})
	}
}

func TestMultiplexerAlternates(t *testing.T) {
	var latch Latch
	m := NewMultiplexer(&latch)

	values := []uint16{1400, 0, 99, 550, 0, 0, 1}
	prev := m.Selected()
	for i, v := range values {
		m.Refresh(v)
		if m.Selected() == prev {
			t.Fatalf("refresh %d did not flip the selector", i)
		}
		prev = m.Selected()
	}
}

func TestMultiplexerTwoRefreshesCoverBothDigits(t *testing.T) {
	var latch Latch
	m := NewMultiplexer(&latch)

	for start := 0; start < 4; start++ {
		seen := map[Position]int{}
		for i := 0; i < 2; i++ {
			m.Refresh(1234)
			seen[m.Selected()]++
		}
		if seen[Left] != 1 || seen[Right] != 1 {
			t.Fatalf("two refreshes selected %v, expected each digit once", seen)
		}
	}

	if got := latch.Frame().String(); got != "13" {
		t.Errorf("display shows %q, expected %q", got, "13")
	}
}

func TestLatchUnderOneSecond(t *testing.T) {
	var latch Latch
	m := NewMultiplexer(&latch)
	m.Refresh(42)
	m.Refresh(42)

	if got := latch.Frame().String(); got != "0.4" {
		t.Errorf("display shows %q, expected %q", got, "0.4")
	}

	latch.Clear()
	if got := latch.Frame().String(); got != "  " {
		t.Errorf("cleared display shows %q", got)
	}
}

func TestRender(t *testing.T) {
	rows := Render(Digit(8) | SegDP)
	want := [3]string{" _  ", "|_| ", "|_|."}
	if rows != want {
		t.Errorf("Render(8.) = %q, expected %q", rows, want)
	}

	rows = Render(Digit(1))
	want = [3]string{"    ", "  | ", "  | "}
	if rows != want {
		t.Errorf("Render(1) = %q, expected %q", rows, want)
	}
}
