package dissolve

import (
	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// RemoveInvalid drops points with NaN or infinite coordinates.
//
// No other validation happens here; the surviving points keep their
// order.
func RemoveInvalid(r types.Ring) types.Ring {
	out := r[:0]
	for _, p := range r {
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}

// Close appends the first point when the ring does not end on it.
func Close(r types.Ring) types.Ring {
	if len(r) > 0 && r[len(r)-1] != r[0] {
		r = append(r, r[0])
	}
	return r
}

// Orient reverses the ring in place when its signed area disagrees with
// the requested outer order. Returns the signed area as computed before
// any reversal.
func Orient(r types.Ring, order types.Order) float64 {
	area := predicates.RingArea(r)
	if !order.Matches(area) {
		r.Reverse()
	}
	return area
}
