// Package sevenseg drives a two-digit, common-cathode seven-segment display
// that is time-multiplexed from the timer interrupt.
package sevenseg

// Segments is the 8-bit pattern written to the segment port. Bits 0-6 are
// segments a-g, bit 7 is the decimal point.
type Segments uint8

// Individual segment bits.
const (
	SegA Segments = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// Blank turns every segment off.
const Blank Segments = 0

// digitPatterns maps decimal digits to their segment patterns.
var digitPatterns = [10]Segments{63, 6, 91, 79, 102, 109, 125, 7, 127, 111}

// Digit returns the pattern for a decimal digit. Values outside 0-9 are blank.
func Digit(d int) Segments {
	if d < 0 || d >= len(digitPatterns) {
		return Blank
	}
	return digitPatterns[d]
}

// Decode maps a pattern back to the digit it shows. ok is false for blank or
// unknown patterns; dp reports the decimal point regardless.
func Decode(s Segments) (digit int, dp bool, ok bool) {
	dp = s&SegDP != 0
	body := s &^ SegDP
	for d, p := range digitPatterns {
		if p == body {
			return d, dp, true
		}
	}
	return 0, dp, false
}

// String renders the pattern as a digit character, a space for blank, and a
// trailing '.' when the decimal point is lit.
func (s Segments) String() string {
	d, dp, ok := Decode(s)
	out := " "
	if ok {
		out = string(rune('0' + d))
	} else if s&^SegDP != 0 {
		out = "?"
	}
	if dp {
		out += "."
	}
	return out
}

// Render draws the pattern as three rows of ASCII art, four columns wide.
func Render(s Segments) [3]string {
	on := func(seg Segments, r byte) byte {
		if s&seg != 0 {
			return r
		}
		return ' '
	}
	return [3]string{
		string([]byte{' ', on(SegA, '_'), ' ', ' '}),
		string([]byte{on(SegF, '|'), on(SegG, '_'), on(SegB, '|'), ' '}),
		string([]byte{on(SegE, '|'), on(SegD, '_'), on(SegC, '|'), on(SegDP, '.')}),
	}
}
