package formatting

import (
	"strings"
	"testing"

	"github.com/iceisfun/gorepair/types"
)

func TestPointString(t *testing.T) {
	if got := PointString(types.Point{X: 2.5, Y: 9}); got != "2.5 9" {
		t.Fatalf("unexpected point string: %q", got)
	}
}

func TestMultiPolygonString(t *testing.T) {
	m := types.MultiPolygon{{
		Outer: types.Ring{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0},
		},
		Inners: []types.Ring{{
			{X: 2, Y: 1}, {X: 4, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 1},
		}},
	}}
	got := MultiPolygonString(m)
	want := "MULTIPOLYGON(((0 0, 10 0, 10 10, 0 0), (2 1, 4 1, 3 3, 2 1)))"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if MultiPolygonString(nil) != "MULTIPOLYGON EMPTY" {
		t.Fatalf("unexpected empty rendering")
	}
}

func TestWriteMultiPolygon(t *testing.T) {
	var sb strings.Builder
	if err := WriteMultiPolygon(&sb, nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if sb.String() != "MULTIPOLYGON EMPTY" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}
