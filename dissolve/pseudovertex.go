package dissolve

import (
	"sort"

	"github.com/iceisfun/gorepair/types"
)

// Key identifies a pseudo-vertex position along the original ring.
//
// Index is the segment the vertex lies on, Offset the squared distance
// from that segment's start, and Partner the segment on the other side
// of the crossing (equal to Index for the seeded original vertices).
// A Reroute key marks the point where the tracer jumps onto the partner
// segment instead of continuing straight.
type Key struct {
	Index   int
	Partner int
	Offset  float64
	Reroute bool
}

// Less orders keys along the original ring: by segment, then by offset
// within the segment, then by partner segment descending, with the
// reroute variant before the non-reroute variant at the same position.
//
// The reroute-first tie break is what makes the tracer enter the
// alternate branch of a crossing instead of walking straight through it.
func (k Key) Less(o Key) bool {
	if k.Index != o.Index {
		return k.Index < o.Index
	}
	if k.Offset != o.Offset {
		return k.Offset < o.Offset
	}
	if k.Partner != o.Partner {
		return k.Partner > o.Partner
	}
	return k.Reroute && !o.Reroute
}

// pseudoVertex is a graph node: the point, plus the reroute target for
// reroute keys.
type pseudoVertex struct {
	p    types.Point
	link Key
}

// graph is the pseudo-vertex map in key order. It is built once per
// ring and only read during tracing.
type graph struct {
	keys  []Key
	verts []pseudoVertex
}

type graphEntry struct {
	key  Key
	vert pseudoVertex
}

func buildOrderedGraph(entries []graphEntry) *graph {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.Less(entries[j].key)
	})

	g := &graph{
		keys:  make([]Key, 0, len(entries)),
		verts: make([]pseudoVertex, 0, len(entries)),
	}
	for _, e := range entries {
		// First insertion wins for duplicate keys.
		if n := len(g.keys); n > 0 && g.keys[n-1] == e.key {
			continue
		}
		g.keys = append(g.keys, e.key)
		g.verts = append(g.verts, e.vert)
	}
	return g
}

func (g *graph) len() int {
	return len(g.keys)
}

// find returns the position of the key in the graph, or -1.
func (g *graph) find(k Key) int {
	i := sort.Search(len(g.keys), func(i int) bool {
		return !g.keys[i].Less(k)
	})
	if i < len(g.keys) && g.keys[i] == k {
		return i
	}
	return -1
}

// next advances one position in key order, wrapping from last to first.
func (g *graph) next(i int) int {
	return (i + 1) % len(g.keys)
}

// startSet is the ordered set of candidate trace starts: the partner
// endpoints of every crossing. The tracer consumes it.
type startSet struct {
	keys    []Key
	present map[Key]bool
}

func newStartSet(keys []Key) *startSet {
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	s := &startSet{present: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		if !s.present[k] {
			s.present[k] = true
			s.keys = append(s.keys, k)
		}
	}
	return s
}

func (s *startSet) empty() bool {
	return len(s.keys) == 0
}

// min returns the smallest remaining start key.
func (s *startSet) min() Key {
	return s.keys[0]
}

// remove erases the key from the set if present.
func (s *startSet) remove(k Key) {
	if !s.present[k] {
		return
	}
	delete(s.present, k)
	i := sort.Search(len(s.keys), func(i int) bool {
		return !s.keys[i].Less(k)
	})
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
}
