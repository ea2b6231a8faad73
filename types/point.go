package types

import "math"

// Point represents a position in 2D Cartesian space.
//
// Coordinates use float64 precision, suitable for most geometric
// applications with appropriate epsilon tolerance for comparisons.
//
// Example:
//
//	p := types.Point{X: 1.5, Y: 2.3}
//	q := types.Point{X: 0.0, Y: 0.0}
type Point struct {
	X float64 // Horizontal coordinate
	Y float64 // Vertical coordinate
}

// Valid reports whether both coordinates are finite.
//
// Points with NaN or infinite coordinates are stripped during ring
// sanitization rather than surfaced as errors.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
