package robust

import (
	"math"
	"math/big"

	"github.com/iceisfun/gorepair/types"
)

const orientFilter = 1e-15

// Orient2D returns the orientation of triangle (a,b,c).
//
// The return value is:
//   - +1 if the points make a counter-clockwise turn
//   - -1 if the points make a clockwise turn
//   - 0 if the points are exactly collinear
//
// The implementation first evaluates the determinant in float64 with a
// small adaptive filter and falls back to arbitrary precision arithmetic
// when the filter cannot decide, so nearly collinear points still get a
// non-zero sign.
func Orient2D(a, b, c types.Point) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c types.Point) int {
	ax := bigFloat(b.X)
	ax.Sub(ax, bigFloat(a.X))
	ay := bigFloat(b.Y)
	ay.Sub(ay, bigFloat(a.Y))

	bx := bigFloat(c.X)
	bx.Sub(bx, bigFloat(a.X))
	by := bigFloat(c.Y)
	by.Sub(by, bigFloat(a.Y))

	term1 := bigFloat(0)
	term1.Mul(ax, by)

	term2 := bigFloat(0)
	term2.Mul(ay, bx)

	det := bigFloat(0)
	det.Sub(term1, term2)
	return det.Sign()
}

func maxAbs(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > max {
			max = abs
		}
	}
	return max
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}
