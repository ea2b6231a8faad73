package types

// AABB represents an axis-aligned bounding box in 2D space.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X <= Max.X and Min.Y <= Max.Y. Empty or inverted AABBs
// should be handled explicitly by the caller.
//
// Example:
//
//	box := types.AABB{
//	    Min: types.Point{X: 0.0, Y: 0.0},
//	    Max: types.Point{X: 10.0, Y: 10.0},
//	}
type AABB struct {
	Min Point // Minimum (bottom-left) corner, inclusive
	Max Point // Maximum (top-right) corner, inclusive
}

// AABBForPoints returns the bounding box of the supplied points.
//
// The zero AABB is returned for an empty input.
func AABBForPoints(points ...Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

// Extend returns the smallest AABB covering both the box and the point.
func (b AABB) Extend(p Point) AABB {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Width returns the horizontal extent of the box.
func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}
