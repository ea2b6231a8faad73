package dissolve

import (
	"math"
	"sort"
	"testing"

	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

func TestKeyOrdering(t *testing.T) {
	// Reroute sorts before non-reroute at the same position, larger
	// partner before smaller partner at the same offset.
	keys := []Key{
		{Index: 1, Partner: 1, Offset: 0},
		{Index: 0, Partner: 3, Offset: 2.5},
		{Index: 0, Partner: 3, Offset: 2.5, Reroute: true},
		{Index: 0, Partner: 0, Offset: 0},
		{Index: 0, Partner: 2, Offset: 2.5},
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	want := []Key{
		{Index: 0, Partner: 0, Offset: 0},
		{Index: 0, Partner: 3, Offset: 2.5, Reroute: true},
		{Index: 0, Partner: 3, Offset: 2.5},
		{Index: 0, Partner: 2, Offset: 2.5},
		{Index: 1, Partner: 1, Offset: 0},
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, want[i], keys[i])
		}
	}
}

func TestKeyOrderingCrossingBeforeSeed(t *testing.T) {
	// A crossing exactly on a vertex sorts before the seeded vertex key
	// because the crossing's partner index is larger.
	seed := Key{Index: 2, Partner: 2, Offset: 0}
	crossing := Key{Index: 2, Partner: 5, Offset: 0}
	if !crossing.Less(seed) || seed.Less(crossing) {
		t.Fatalf("expected crossing key to precede seed key")
	}
}

func TestRingSimplePassthrough(t *testing.T) {
	square := types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	rings := Ring(square, types.CounterClockwise, 0, types.DefaultEpsilon())
	if len(rings) != 1 {
		t.Fatalf("expected the square back, got %v", rings)
	}
	if a := predicates.RingArea(rings[0]); math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected area 100, got %v", a)
	}
}

func TestRingSanitizes(t *testing.T) {
	// Open, clockwise, with a NaN vertex.
	r := types.Ring{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: math.NaN(), Y: 3}, {X: 10, Y: 10}, {X: 10, Y: 0},
	}
	rings := Ring(r, types.CounterClockwise, 0, types.DefaultEpsilon())
	if len(rings) != 1 {
		t.Fatalf("expected one ring, got %v", rings)
	}
	out := rings[0]
	if !out.Closed() {
		t.Fatalf("expected closed output")
	}
	if a := predicates.RingArea(out); math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected reoriented area 100, got %v", a)
	}
}

func TestRingFigureEight(t *testing.T) {
	figureEight := types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
	}
	rings := Ring(figureEight, types.CounterClockwise, 0, types.DefaultEpsilon())
	if len(rings) != 2 {
		t.Fatalf("expected two simple sub-rings, got %d: %v", len(rings), rings)
	}

	total := 0.0
	for _, r := range rings {
		a := predicates.RingArea(r)
		if math.Abs(math.Abs(a)-25) > 1e-9 {
			t.Fatalf("expected sub-ring area 25, got %v", a)
		}
		total += math.Abs(a)
	}
	if math.Abs(total-50) > 1e-9 {
		t.Fatalf("expected total area 50, got %v", total)
	}
}

func TestRingPentagram(t *testing.T) {
	pentagram := types.Ring{
		{X: 5, Y: 0}, {X: 2.5, Y: 9}, {X: 9.5, Y: 3.5},
		{X: 0.5, Y: 3.5}, {X: 7.5, Y: 9}, {X: 5, Y: 0},
	}
	rings := Ring(pentagram, types.CounterClockwise, 1e-12, types.DefaultEpsilon())
	// The star outline and the doubly-wound core pentagon.
	if len(rings) != 2 {
		t.Fatalf("expected outline and core pentagon, got %d: %v", len(rings), rings)
	}

	areas := []float64{
		math.Abs(predicates.RingArea(rings[0])),
		math.Abs(predicates.RingArea(rings[1])),
	}
	sort.Float64s(areas)
	if math.Abs(areas[0]-7.8842) > 0.001 || math.Abs(areas[1]-25.6158) > 0.001 {
		t.Fatalf("unexpected sub-ring areas: %v", areas)
	}

	for _, r := range rings {
		if predicates.RingSelfIntersects(r, 1e-9) {
			t.Fatalf("sub-ring still self-intersects: %v", r)
		}
	}
}

func TestRingVertexTouchBowTie(t *testing.T) {
	// Self-touch at the shared vertex (5,5): two clean triangles.
	bowTie := types.Ring{
		{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 10},
		{X: 10, Y: 10}, {X: 5, Y: 5}, {X: 10, Y: 0}, {X: 0, Y: 0},
	}
	rings := Ring(bowTie, types.CounterClockwise, 1e-12, types.DefaultEpsilon())
	if len(rings) != 2 {
		t.Fatalf("expected two triangles, got %d: %v", len(rings), rings)
	}
	for _, r := range rings {
		if a := math.Abs(predicates.RingArea(r)); math.Abs(a-25) > 1e-9 {
			t.Fatalf("expected triangle area 25, got %v", a)
		}
	}
}

func TestRingSpikeThreshold(t *testing.T) {
	// A sliver of area 0.5 vanishes under a larger threshold.
	sliver := types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.1}, {X: 0, Y: 0},
	}
	if rings := Ring(sliver, types.CounterClockwise, 1.0, types.DefaultEpsilon()); len(rings) != 0 {
		t.Fatalf("expected sliver to be suppressed, got %v", rings)
	}
	if rings := Ring(sliver, types.CounterClockwise, 0, types.DefaultEpsilon()); len(rings) != 1 {
		t.Fatalf("expected sliver to survive zero threshold, got %v", rings)
	}
}

func TestRingDegenerateInputs(t *testing.T) {
	eps := types.DefaultEpsilon()
	if rings := Ring(types.Ring{}, types.CounterClockwise, 0, eps); rings != nil {
		t.Fatalf("empty ring must dissolve to nothing")
	}
	if rings := Ring(types.Ring{{X: 1, Y: 1}}, types.CounterClockwise, 0, eps); rings != nil {
		t.Fatalf("single point must dissolve to nothing")
	}
	if rings := Ring(types.Ring{{X: 1, Y: 1}, {X: 2, Y: 2}}, types.CounterClockwise, 0, eps); rings != nil {
		t.Fatalf("two points must dissolve to nothing")
	}

	same := types.Ring{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}}
	if rings := Ring(same, types.CounterClockwise, 0, eps); rings != nil {
		t.Fatalf("identical points must dissolve to nothing, got %v", rings)
	}

	allNaN := types.Ring{
		{X: math.NaN(), Y: 1}, {X: 2, Y: math.NaN()}, {X: math.NaN(), Y: math.NaN()},
	}
	if rings := Ring(allNaN, types.CounterClockwise, 0, eps); rings != nil {
		t.Fatalf("all-invalid ring must dissolve to nothing, got %v", rings)
	}
}

func TestRingInputUntouched(t *testing.T) {
	cw := types.Ring{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	snapshot := cw.Clone()
	Ring(cw, types.CounterClockwise, 0, types.DefaultEpsilon())
	for i := range cw {
		if cw[i] != snapshot[i] {
			t.Fatalf("input ring was modified at %d", i)
		}
	}
}
