// Package overlay provides the planar set operations the repair
// pipeline consumes, backed by the simplefeatures geometry library.
//
// All operations are by-value: inputs are never modified and outputs
// share no storage with them. Operations that the underlying library
// cannot complete return an error; callers in the fill layer degrade
// conservatively instead of failing.
package overlay

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/iceisfun/gorepair/types"
)

// Union returns the planar union of two multi-polygons.
func Union(a, b types.MultiPolygon) (types.MultiPolygon, error) {
	if len(a) == 0 {
		return b.Clone(), nil
	}
	if len(b) == 0 {
		return a.Clone(), nil
	}
	g, err := geom.Union(toGeom(a), toGeom(b))
	if err != nil {
		return nil, err
	}
	return fromGeom(g), nil
}

// Difference returns the part of a not covered by b.
func Difference(a, b types.MultiPolygon) (types.MultiPolygon, error) {
	if len(a) == 0 {
		return nil, nil
	}
	if len(b) == 0 {
		return a.Clone(), nil
	}
	g, err := geom.Difference(toGeom(a), toGeom(b))
	if err != nil {
		return nil, err
	}
	return fromGeom(g), nil
}

// SymmetricDifference returns the regions covered by exactly one of a
// and b.
func SymmetricDifference(a, b types.MultiPolygon) (types.MultiPolygon, error) {
	if len(a) == 0 {
		return b.Clone(), nil
	}
	if len(b) == 0 {
		return a.Clone(), nil
	}
	g, err := geom.SymmetricDifference(toGeom(a), toGeom(b))
	if err != nil {
		return nil, err
	}
	return fromGeom(g), nil
}

// Intersects reports whether the closures of a and b share any point.
func Intersects(a, b types.MultiPolygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return geom.Intersects(toGeom(a), toGeom(b))
}

// CoveredBy reports whether a's closure lies entirely within b's
// closure.
func CoveredBy(a, b types.MultiPolygon) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return false, nil
	}
	return geom.CoveredBy(toGeom(a), toGeom(b))
}

// Valid reports whether the multi-polygon satisfies the OGC
// simple-features constraints, with a diagnostic error when it does
// not. The empty multi-polygon is valid.
func Valid(m types.MultiPolygon) error {
	return toGeom(m).Validate()
}

// Area returns the total unsigned area of the multi-polygon: the outer
// ring areas minus the hole areas.
func Area(m types.MultiPolygon) float64 {
	return toGeomMultiPolygon(m).Area()
}
