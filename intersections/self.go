package intersections

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// Turn records one self-intersection of a ring: the intersection point
// and the indices of the two non-adjacent segments that meet there.
// SegA is always the lower index.
type Turn struct {
	Point types.Point
	SegA  int
	SegB  int
}

// indexedSegment wraps a ring segment for R-tree storage.
type indexedSegment struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface.
func (s *indexedSegment) Bounds() rtreego.Rect {
	return s.rect
}

// Self computes every crossing between non-adjacent segments of a
// closed ring. Proper crossings are reported once per segment pair.
// Tangential contacts (shared endpoints, endpoint-on-interior,
// collinear overlaps) are reported exactly once per unique contact
// coordinate: when several pairs meet at the same point, only the
// first pair carries the turn. Collinear overlaps report the midpoint
// of the overlapped span. Zero-length segments are skipped.
//
// Candidate pairs come from an R-tree over the segment bounding boxes,
// so rings with few crossings stay near O(n log n).
func Self(ring types.Ring, eps float64) []Turn {
	segs := len(ring) - 1
	if segs < 3 {
		return nil
	}

	rtree := rtreego.NewTree(2, 25, 50)
	for i := 0; i < segs; i++ {
		if predicates.Dist2(ring[i], ring[i+1]) == 0 {
			continue
		}
		rtree.Insert(&indexedSegment{index: i, rect: segmentRect(ring[i], ring[i+1], eps)})
	}

	var turns []Turn
	touched := make(map[types.Point]bool)
	for i := 0; i < segs; i++ {
		if predicates.Dist2(ring[i], ring[i+1]) == 0 {
			continue
		}
		for _, hit := range rtree.SearchIntersect(segmentRect(ring[i], ring[i+1], eps)) {
			j := hit.(*indexedSegment).index
			if j <= i || adjacent(i, j, segs) {
				continue
			}
			p, kind := predicates.SegmentIntersection(ring[i], ring[i+1], ring[j], ring[j+1], eps)
			switch kind {
			case types.IntersectNone:
				continue
			case types.IntersectTouching, types.IntersectCollinearOverlap:
				// Piling several reroutes onto one coordinate would
				// let the tracer cycle there without ever closing.
				if touched[p] {
					continue
				}
				touched[p] = true
			}
			turns = append(turns, Turn{Point: p, SegA: i, SegB: j})
		}
	}
	return turns
}

// adjacent reports whether two segments of a closed ring share an
// endpoint by construction, including the wrap-around pair.
func adjacent(i, j, segs int) bool {
	if j == i+1 || i == j+1 {
		return true
	}
	return (i == 0 && j == segs-1) || (j == 0 && i == segs-1)
}

func segmentRect(a, b types.Point, eps float64) rtreego.Rect {
	pad := eps
	if pad <= 0 {
		pad = 1e-12
	}

	minX := math.Min(a.X, b.X) - pad
	minY := math.Min(a.Y, b.Y) - pad
	lengths := []float64{
		math.Max(a.X, b.X) - minX + pad,
		math.Max(a.Y, b.Y) - minY + pad,
	}

	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, lengths)
	return rect
}
