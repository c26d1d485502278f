package sevenseg

// Latch emulates the display hardware: it keeps the last pattern written to
// each digit. It implements Port.
type Latch struct {
	selected Position
	digits   [2]Segments
	writes   uint64
}

// Select implements Port.
func (l *Latch) Select(p Position) {
	l.selected = p & 1
}

// Write implements Port.
func (l *Latch) Write(s Segments) {
	l.digits[l.selected] = s
	l.writes++
}

// Frame is what a human sees on the display.
type Frame struct {
	Left   Segments
	Right  Segments
	Active Position
	Writes uint64
}

// String renders the frame as two characters with optional decimal points.
func (f Frame) String() string {
	return f.Left.String() + f.Right.String()
}

// Frame copies the latched digits.
func (l *Latch) Frame() Frame {
	return Frame{
		Left:   l.digits[Left],
		Right:  l.digits[Right],
		Active: l.selected,
		Writes: l.writes,
	}
}

// Clear blanks both digits.
func (l *Latch) Clear() {
	l.digits = [2]Segments{}
	l.selected = Right
}
