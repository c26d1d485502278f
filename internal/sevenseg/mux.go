package sevenseg

// Position selects one of the two physical digits.
type Position uint8

const (
	Right Position = 0
	Left  Position = 1
)

// String returns the position name.
func (p Position) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// Port is the pair of output ports wired to the display: one selects the
// active digit, the other carries its segment pattern.
type Port interface {
	Select(p Position)
	Write(s Segments)
}

// Countdown values are hundredths of a second.
const (
	oneSecond   = 100
	nineSeconds = 900
)

// Pattern computes the segments shown at position p for a countdown value in
// hundredths of a second.
//
// Whole seconds are offset by one so the display reads the second currently
// being counted down. Above nine seconds the left digit carries the tens;
// under one second the display reads "0." followed by tenths. Zero blanks the
// display.
func Pattern(p Position, centis uint16) Segments {
	if centis == 0 {
		return Blank
	}
	index := uint32(centis) + oneSecond

	if p == Right {
		if centis > oneSecond {
			return Digit(int(index / 100 % 10))
		}
		return Digit(int(centis / 10 % 10))
	}

	switch {
	case centis > nineSeconds:
		return Digit(int(index / 1000 % 10))
	case centis < oneSecond:
		return Digit(0) | SegDP
	default:
		return Blank
	}
}

// Multiplexer alternates the active digit on every refresh so both digits
// appear lit.
type Multiplexer struct {
	selected Position
	out      Port
}

// NewMultiplexer creates a multiplexer driving out.
func NewMultiplexer(out Port) *Multiplexer {
	return &Multiplexer{out: out}
}

// Selected returns the position driven by the last refresh.
func (m *Multiplexer) Selected() Position {
	return m.selected
}

// Reset returns the selector to the right digit.
func (m *Multiplexer) Reset() {
	m.selected = Right
}

// Refresh flips the digit selector and drives the newly selected digit for
// the given countdown value. It runs in interrupt context; the flip and the
// write happen in the same invocation.
func (m *Multiplexer) Refresh(centis uint16) {
	m.selected ^= 1
	m.out.Select(m.selected)
	m.out.Write(Pattern(m.selected, centis))
}
