package overlay

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/iceisfun/gorepair/types"
)

// toGeom converts a multi-polygon to a simplefeatures geometry.
//
// Rings are closed on the way out. Validity is NOT established here;
// the planar operations are expected to cope with the ring sets the
// fill strategies feed them.
func toGeom(m types.MultiPolygon) geom.Geometry {
	return toGeomMultiPolygon(m).AsGeometry()
}

func toGeomMultiPolygon(m types.MultiPolygon) geom.MultiPolygon {
	polys := make([]geom.Polygon, 0, len(m))
	for _, p := range m {
		rings := make([]geom.LineString, 0, 1+len(p.Inners))
		rings = append(rings, toGeomRing(p.Outer))
		for _, inner := range p.Inners {
			rings = append(rings, toGeomRing(inner))
		}
		polys = append(polys, geom.NewPolygon(rings))
	}
	return geom.NewMultiPolygon(polys)
}

func toGeomRing(r types.Ring) geom.LineString {
	coords := make([]float64, 0, 2*(len(r)+1))
	for _, p := range r {
		coords = append(coords, p.X, p.Y)
	}
	if len(r) > 0 && r[0] != r[len(r)-1] {
		coords = append(coords, r[0].X, r[0].Y)
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimsXY))
}

// fromGeom extracts the polygonal content of a geometry. Lower
// dimensional pieces (points, lines) that planar operations sometimes
// leave behind are dropped.
func fromGeom(g geom.Geometry) types.MultiPolygon {
	switch g.Type() {
	case geom.TypePolygon:
		poly := fromGeomPolygon(g.MustAsPolygon())
		if len(poly.Outer) == 0 {
			return nil
		}
		return types.MultiPolygon{poly}
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		var out types.MultiPolygon
		for i := 0; i < mp.NumPolygons(); i++ {
			poly := fromGeomPolygon(mp.PolygonN(i))
			if len(poly.Outer) == 0 {
				continue
			}
			out = append(out, poly)
		}
		return out
	case geom.TypeGeometryCollection:
		gc := g.MustAsGeometryCollection()
		var out types.MultiPolygon
		for i := 0; i < gc.NumGeometries(); i++ {
			out = append(out, fromGeom(gc.GeometryN(i))...)
		}
		return out
	default:
		return nil
	}
}

func fromGeomPolygon(p geom.Polygon) types.Polygon {
	out := types.Polygon{Outer: fromGeomRing(p.ExteriorRing())}
	for i := 0; i < p.NumInteriorRings(); i++ {
		out.Inners = append(out.Inners, fromGeomRing(p.InteriorRingN(i)))
	}
	return out
}

func fromGeomRing(ls geom.LineString) types.Ring {
	seq := ls.Coordinates()
	ring := make(types.Ring, 0, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		xy := seq.GetXY(i)
		ring = append(ring, types.Point{X: xy.X, Y: xy.Y})
	}
	return ring
}
