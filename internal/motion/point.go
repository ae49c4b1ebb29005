// internal/motion/point.go
package motion

import "fmt"

// Point represents an integer screen coordinate. It is an immutable value
// type: generators produce Points and the replay layer consumes them.
type Point struct {
	X, Y int
}

// String renders the point as "(x, y)" for logs and error messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// axisSpan returns the absolute distance between two scalar coordinates.
func axisSpan(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}
