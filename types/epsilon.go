package types

import "math"

// Epsilon stores absolute and relative tolerances for geometric operations.
//
// The combined tolerance for a coordinate with magnitude |v| is computed as:
//
//	tol(v) = Abs + Rel * |v|
//
// For operations involving multiple coordinates or points, the maximum absolute
// coordinate magnitude is used. Negative tolerance values are automatically
// clamped to zero.
type Epsilon struct {
	Abs float64
	Rel float64
}

// NewEpsilon constructs an Epsilon value with the provided parameters.
func NewEpsilon(abs, rel float64) Epsilon {
	return Epsilon{Abs: abs, Rel: rel}.normalized()
}

// DefaultEpsilon returns a conservative default tolerance suitable for
// coordinates within typical mapping ranges.
func DefaultEpsilon() Epsilon {
	return Epsilon{Abs: 1e-9, Rel: 1e-12}
}

// WithAbs returns a copy with the absolute tolerance replaced.
func (e Epsilon) WithAbs(abs float64) Epsilon {
	e.Abs = abs
	return e.normalized()
}

// WithRel returns a copy with the relative tolerance replaced.
func (e Epsilon) WithRel(rel float64) Epsilon {
	e.Rel = rel
	return e.normalized()
}

// Value computes the combined tolerance for the supplied coordinate magnitude.
func (e Epsilon) Value(mag float64) float64 {
	e = e.normalized()
	return e.Abs + e.Rel*mag
}

// TolForPoints computes the tolerance to use when comparing any of the given
// points. It takes the maximum absolute coordinate across all points and applies
// the combined tolerance.
func (e Epsilon) TolForPoints(points ...Point) float64 {
	maxMag := 0.0
	for _, p := range points {
		if mag := math.Abs(p.X); mag > maxMag {
			maxMag = mag
		}
		if mag := math.Abs(p.Y); mag > maxMag {
			maxMag = mag
		}
	}
	return e.Value(maxMag)
}

// TolForRing computes the tolerance for comparisons anywhere on the ring.
//
// The self-intersection finder derives its working tolerance from the
// whole ring so that crossings near the ring's extremes classify the
// same way as crossings near the origin.
func (e Epsilon) TolForRing(r Ring) float64 {
	return e.TolForPoints(r...)
}

func (e Epsilon) normalized() Epsilon {
	if e.Abs < 0 {
		e.Abs = 0
	}
	if e.Rel < 0 {
		e.Rel = 0
	}
	return e
}
