// Package repair rebuilds invalid polygons into OGC-valid
// multi-polygons.
//
// Each outer ring is sanitized and dissolved into simple sub-rings, a
// filling rule decides which sub-rings bound area and which bound
// holes, and hole rings are repaired recursively and carved out of the
// filled region.
//
// Example:
//
//	input := types.MultiPolygon{{Outer: selfIntersectingRing}}
//	fixed := repair.Correct(input)
package repair

import (
	"github.com/iceisfun/gorepair/dissolve"
	"github.com/iceisfun/gorepair/fill"
	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// maxHoleDepth bounds the recursive repair of hole rings. Valid input
// never nests holes, but malformed input may; anything deeper
// contributes nothing.
const maxHoleDepth = 8

type config struct {
	order   types.Order
	spike   float64
	epsilon types.Epsilon
}

// Option configures a repair run.
type Option func(*config)

// WithOrder sets the canonical orientation for outer rings in the
// output. The default is counter-clockwise.
func WithOrder(order types.Order) Option {
	return func(c *config) {
		c.order = order
	}
}

// WithSpikeThreshold sets the minimum absolute area below which a
// traced sub-ring is discarded. The default of zero keeps every
// non-degenerate sub-ring; a small value such as 1e-12 suppresses
// numerical spikes. Negative thresholds are treated as zero.
func WithSpikeThreshold(minArea float64) Option {
	return func(c *config) {
		if minArea < 0 {
			minArea = 0
		}
		c.spike = minArea
	}
}

// WithEpsilon sets the tolerance model used when classifying
// self-intersections.
func WithEpsilon(epsilon types.Epsilon) Option {
	return func(c *config) {
		c.epsilon = epsilon
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		order:   types.CounterClockwise,
		spike:   0,
		epsilon: types.DefaultEpsilon(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Correct repairs a multi-polygon under the non-zero-winding filling
// rule: a point of the plane is filled when the input rings wind
// around it a non-zero number of times.
//
// The input is never modified. Pathological input degrades to an empty
// result, not an error.
func Correct(input types.MultiPolygon, opts ...Option) types.MultiPolygon {
	return correctWith(input, fill.NonZeroWinding(), newConfig(opts))
}

// CorrectOddEven repairs a multi-polygon under the even-odd filling
// rule: a point is filled when it is covered by an odd number of
// rings.
func CorrectOddEven(input types.MultiPolygon, opts ...Option) types.MultiPolygon {
	return correctWith(input, fill.OddEven(), newConfig(opts))
}

// CorrectPolygon repairs a single polygon under the non-zero-winding
// filling rule.
func CorrectPolygon(input types.Polygon, opts ...Option) types.MultiPolygon {
	return Correct(types.MultiPolygon{input}, opts...)
}

// CorrectPolygonOddEven repairs a single polygon under the even-odd
// filling rule.
func CorrectPolygonOddEven(input types.Polygon, opts ...Option) types.MultiPolygon {
	return CorrectOddEven(types.MultiPolygon{input}, opts...)
}

func correctWith(input types.MultiPolygon, strategy fill.Strategy, cfg config) types.MultiPolygon {
	var output types.MultiPolygon
	for _, poly := range input {
		output = strategy.Combine(output, repairPolygon(poly, strategy, cfg, 0))
	}
	return orientOutput(output, cfg.order)
}

// orientOutput enforces the canonical orientation on the final rings:
// outers per the requested order, inners opposite. The planar backend
// makes no orientation promises, so this runs on every exit path.
func orientOutput(m types.MultiPolygon, order types.Order) types.MultiPolygon {
	for i := range m {
		if !order.Matches(predicates.RingArea(m[i].Outer)) {
			m[i].Outer.Reverse()
		}
		for _, inner := range m[i].Inners {
			if !order.Opposite().Matches(predicates.RingArea(inner)) {
				inner.Reverse()
			}
		}
	}
	return m
}

// repairPolygon dissolves the outer ring, resolves the sub-rings into
// a filled region, repairs every hole ring as if it were an outer, and
// carves the holes out.
func repairPolygon(p types.Polygon, strategy fill.Strategy, cfg config, depth int) types.MultiPolygon {
	if depth > maxHoleDepth {
		return nil
	}

	rings := dissolve.Ring(p.Outer, cfg.order, cfg.spike, cfg.epsilon)

	batch := make([]types.MultiPolygon, 0, len(rings))
	for _, r := range rings {
		batch = append(batch, types.MultiPolygon{{Outer: r}})
	}
	outers := strategy.Resolve(batch)

	var holes types.MultiPolygon
	for _, inner := range p.Inners {
		repaired := repairPolygon(types.Polygon{Outer: inner}, strategy, cfg, depth+1)
		holes = strategy.Combine(holes, repaired)
	}

	return strategy.Carve(outers, holes)
}
