package game

// Life and score tuning.
const (
	DefaultLives    = 3
	DefaultMaxLives = 4
)

// Lives counts the frogs left.
type Lives struct {
	n   int
	max int
}

// NewLives creates a counter starting at initial and capped at max.
func NewLives(initial, max int) *Lives {
	if max <= 0 {
		max = DefaultMaxLives
	}
	if initial <= 0 || initial > max {
		initial = DefaultLives
	}
	return &Lives{n: initial, max: max}
}

// Count returns the lives left.
func (l *Lives) Count() int { return l.n }

// Max returns the cap.
func (l *Lives) Max() int { return l.max }

// Lose takes one life. It never goes below zero.
func (l *Lives) Lose() {
	if l.n > 0 {
		l.n--
	}
}

// Gain adds one life up to the cap.
func (l *Lives) Gain() {
	if l.n < l.max {
		l.n++
	}
}

// Set replaces the count, clamped to [0, max].
func (l *Lives) Set(n int) {
	switch {
	case n < 0:
		n = 0
	case n > l.max:
		n = l.max
	}
	l.n = n
}

// None reports whether the game is over.
func (l *Lives) None() bool { return l.n == 0 }

// Score is the running score of one game.
type Score struct {
	v uint32
}

// Add adds points.
func (s *Score) Add(points uint32) { s.v += points }

// Value returns the score.
func (s *Score) Value() uint32 { return s.v }

// Reset zeroes the score.
func (s *Score) Reset() { s.v = 0 }
