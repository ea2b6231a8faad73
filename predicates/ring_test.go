package predicates

import (
	"math"
	"testing"

	"github.com/iceisfun/gorepair/types"
)

func square() types.Ring {
	return types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
}

func pentagram() types.Ring {
	return types.Ring{
		{X: 5, Y: 0}, {X: 2.5, Y: 9}, {X: 9.5, Y: 3.5},
		{X: 0.5, Y: 3.5}, {X: 7.5, Y: 9}, {X: 5, Y: 0},
	}
}

func TestRingArea(t *testing.T) {
	if a := RingArea(square()); math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected area 100, got %v", a)
	}

	cw := square()
	cw.Reverse()
	if a := RingArea(cw); math.Abs(a+100) > 1e-9 {
		t.Fatalf("expected area -100, got %v", a)
	}

	// Same value with the closing point omitted.
	open := square()[:4]
	if a := RingArea(open); math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected open-ring area 100, got %v", a)
	}

	if a := RingArea(types.Ring{{X: 0, Y: 0}, {X: 1, Y: 1}}); a != 0 {
		t.Fatalf("expected zero area for degenerate ring, got %v", a)
	}
}

func TestRingBounds(t *testing.T) {
	b := RingBounds(pentagram())
	if b.Min.X != 0.5 || b.Min.Y != 0 || b.Max.X != 9.5 || b.Max.Y != 9 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
	if b.Width() != 9 || b.Height() != 9 {
		t.Fatalf("unexpected extents: %v x %v", b.Width(), b.Height())
	}
}

func TestPointInRing(t *testing.T) {
	sq := square()
	if !PointInRing(types.Point{X: 5, Y: 5}, sq, 1e-9) {
		t.Fatalf("expected interior point inside")
	}
	if !PointInRing(types.Point{X: 0, Y: 5}, sq, 1e-9) {
		t.Fatalf("expected boundary point inside")
	}
	if PointInRing(types.Point{X: 15, Y: 5}, sq, 1e-9) {
		t.Fatalf("expected exterior point outside")
	}
}

func TestRingSelfIntersects(t *testing.T) {
	if RingSelfIntersects(square(), 1e-9) {
		t.Fatalf("square must not self-intersect")
	}
	if !RingSelfIntersects(pentagram(), 1e-9) {
		t.Fatalf("pentagram must self-intersect")
	}

	figureEight := types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
	}
	if !RingSelfIntersects(figureEight, 1e-9) {
		t.Fatalf("figure-eight must self-intersect")
	}
}
