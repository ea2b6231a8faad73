// Package fill turns the simple sub-rings produced by dissolution into
// a single filled multi-polygon under a selectable filling rule.
package fill

import (
	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// Strategy selects how traced sub-rings combine into a filled region
// and how per-ring and per-polygon contributions fold together.
//
// Resolve reduces a batch of single-ring multi-polygons to one filled
// multi-polygon. Combine folds one multi-polygon into an accumulator.
// Carve removes the accumulated hole contribution from the filled
// outers.
type Strategy interface {
	Resolve(batch []types.MultiPolygon) types.MultiPolygon
	Combine(acc, next types.MultiPolygon) types.MultiPolygon
	Carve(outers, holes types.MultiPolygon) types.MultiPolygon
}

// signedArea sums the signed ring areas of a multi-polygon. Inner
// rings of well-formed polygons carry the opposite orientation and
// subtract naturally.
func signedArea(m types.MultiPolygon) float64 {
	total := 0.0
	for _, p := range m {
		total += predicates.RingArea(p.Outer)
		for _, inner := range p.Inners {
			total += predicates.RingArea(inner)
		}
	}
	return total
}

// normalize reverses every outer ring with negative signed area so the
// planar operations treat each entry uniformly as a filled region.
func normalize(batch []types.MultiPolygon) {
	for _, m := range batch {
		for i := range m {
			if predicates.RingArea(m[i].Outer) < 0 {
				m[i].Outer.Reverse()
			}
		}
	}
}
