package predicates

import "github.com/iceisfun/gorepair/types"

// RingArea computes the signed area of a ring using the shoelace
// formula. Positive area means counter-clockwise traversal.
//
// Open and closed rings produce the same value: the closing edge is
// implied when absent and contributes nothing when duplicated.
func RingArea(r types.Ring) float64 {
	if len(r) < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < len(r); i++ {
		j := (i + 1) % len(r)
		area += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return area / 2
}

// RingBounds returns the axis-aligned bounding box of the ring.
func RingBounds(r types.Ring) types.AABB {
	return types.AABBForPoints(r...)
}

// PointInRing tests if a point is inside a ring using ray casting.
//
// Points on the boundary count as inside.
func PointInRing(p types.Point, r types.Ring, eps float64) bool {
	n := len(r)
	if n == 0 {
		return false
	}

	// Boundary check first.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnSegment(p, r[i], r[j], eps) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		iP := r[i]
		jP := r[j]
		diff := (iP.Y > p.Y) != (jP.Y > p.Y)
		if diff {
			t := (p.Y - iP.Y) / (jP.Y - iP.Y)
			x := iP.X + t*(jP.X-iP.X)
			if x > p.X {
				inside = !inside
			}
		}
	}

	return inside
}

// RingSelfIntersects reports whether any two non-adjacent segments of a
// closed ring intersect.
//
// Adjacent segments always share an endpoint and are skipped; the pair
// formed by the first and last segments of a closed ring is adjacent
// through the closing point.
func RingSelfIntersects(r types.Ring, eps float64) bool {
	segs := len(r) - 1
	if !r.Closed() {
		segs = len(r)
	}
	if segs < 4 {
		return false
	}

	for i := 0; i < segs; i++ {
		for j := i + 2; j < segs; j++ {
			if i == 0 && j == segs-1 {
				continue
			}
			a1, a2 := r[i], r[(i+1)%len(r)]
			b1, b2 := r[j], r[(j+1)%len(r)]
			if _, kind := SegmentIntersection(a1, a2, b1, b2, eps); kind != types.IntersectNone {
				return true
			}
		}
	}
	return false
}
