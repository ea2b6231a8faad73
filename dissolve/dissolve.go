// Package dissolve decomposes a self-intersecting ring into the simple
// rings that cover the same filled area.
//
// The ring's vertices and every self-intersection endpoint are embedded
// in an ordered pseudo-vertex graph; tracing the graph and jumping to
// the partner branch at each crossing emits the simple sub-rings one by
// one.
package dissolve

import (
	"math"

	"github.com/iceisfun/gorepair/intersections"
	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// minRingPoints is the smallest vertex count that can enclose area.
const minRingPoints = 3

// Ring sanitizes a single ring and dissolves its self-intersections,
// returning simple sub-rings in traversal orientation.
//
// Sub-rings whose absolute area does not exceed spikeMinArea are
// discarded; with the default threshold of zero that removes only
// degenerate slivers. A ring without crossings is returned unchanged
// (sanitized) when it clears the threshold. The input is not modified.
func Ring(ring types.Ring, order types.Order, spikeMinArea float64, eps types.Epsilon) []types.Ring {
	if len(ring) < minRingPoints {
		return nil
	}

	r := ring.Clone()
	r = RemoveInvalid(r)
	r = Close(r)
	Orient(r, order)

	g, starts := findIntersections(r, eps)

	if starts.empty() {
		if math.Abs(predicates.RingArea(r)) > spikeMinArea {
			return []types.Ring{r}
		}
		return nil
	}

	return generateRings(g, starts, spikeMinArea)
}

// findIntersections seeds the pseudo-vertex graph with the ring's own
// vertices, then injects four pseudo-vertices per crossing: for each
// side a plain vertex at the crossing point and a reroute vertex linked
// to the opposite side. The two plain vertices become start keys.
func findIntersections(r types.Ring, eps types.Epsilon) (*graph, *startSet) {
	entries := make([]graphEntry, 0, len(r))
	for i, p := range r {
		entries = append(entries, graphEntry{
			key:  Key{Index: i, Partner: i},
			vert: pseudoVertex{p: p},
		})
	}

	turns := intersections.Self(r, eps.TolForRing(r))

	startKeys := make([]Key, 0, 2*len(turns))
	for _, turn := range turns {
		i, j := turn.SegA, turn.SegB
		offI := predicates.Dist2(turn.Point, r[i])
		offJ := predicates.Dist2(turn.Point, r[j])

		keyI := Key{Index: i, Partner: j, Offset: offI}
		keyJ := Key{Index: j, Partner: i, Offset: offJ}

		entries = append(entries,
			graphEntry{
				key:  Key{Index: i, Partner: j, Offset: offI, Reroute: true},
				vert: pseudoVertex{p: turn.Point, link: keyJ},
			},
			graphEntry{key: keyJ, vert: pseudoVertex{p: turn.Point}},
			graphEntry{
				key:  Key{Index: j, Partner: i, Offset: offJ, Reroute: true},
				vert: pseudoVertex{p: turn.Point, link: keyI},
			},
			graphEntry{key: keyI, vert: pseudoVertex{p: turn.Point}},
		)
		startKeys = append(startKeys, keyI, keyJ)
	}

	return buildOrderedGraph(entries), newStartSet(startKeys)
}

// generateRings traces simple sub-rings out of the graph until every
// start key is consumed.
//
// The cursor walks the graph in key order, jumping to the linked
// partner position at each reroute vertex. A sub-ring is complete when
// its latest point revisits an earlier point; whatever was appended
// before that point is a tail that wandered in from the start position
// and is dropped.
//
// A walk normally closes within one pass over the graph. Walks that
// exceed the step bound (possible only for pathological contact
// configurations) are discarded instead of looping; the start keys
// they consumed stay consumed, so the outer loop always terminates.
func generateRings(g *graph, starts *startSet, spikeMinArea float64) []types.Ring {
	var result []types.Ring

	for !starts.empty() {
		var newRing types.Ring
		i := g.find(starts.min())
		closed := false

		for steps := 2*g.len() + 8; steps > 0; steps-- {
			key := g.keys[i]
			vert := g.verts[i]

			if n := len(newRing); n == 0 || newRing[n-1] != vert.p {
				newRing = append(newRing, vert.p)
			}

			starts.remove(key)

			if key.Reroute {
				i = g.find(vert.link)
			} else {
				i = g.next(i)
			}

			if at, ok := closedAt(newRing); ok {
				newRing = newRing[at:]
				closed = true
				break
			}
		}
		if !closed {
			continue
		}

		if area := predicates.RingArea(newRing); math.Abs(area) > spikeMinArea {
			result = append(result, newRing)
		}
	}

	return result
}

// closedAt reports whether the last point of the ring revisits an
// earlier point, and at which position.
func closedAt(r types.Ring) (int, bool) {
	if len(r) < 2 {
		return 0, false
	}
	last := r[len(r)-1]
	for i := 0; i < len(r)-1; i++ {
		if r[i] == last {
			return i, true
		}
	}
	return 0, false
}
