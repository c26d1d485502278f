// Package core provides the small shared types of the frogger host: screen
// buffer, actions, directions and runtime settings. It has no dependencies so
// game logic stays pure and testable.
package core

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n).
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
