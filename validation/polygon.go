// Package validation checks rings, polygons and multi-polygons against
// the OGC simple-features constraints.
//
// The repair pipeline never consults this package; it exists for
// callers that want to know whether repair is needed at all, and for
// the test suite.
package validation

import (
	"fmt"
	"math"

	"github.com/iceisfun/gorepair/overlay"
	"github.com/iceisfun/gorepair/predicates"
	"github.com/iceisfun/gorepair/types"
)

// Config holds validation options.
type Config struct {
	Epsilon float64     // Geometric tolerance
	Order   types.Order // Required outer ring orientation
	MinArea float64     // Absolute ring area a ring must exceed (0 rejects only zero-area rings)
}

// Option configures validation.
type Option func(*Config)

// WithEpsilon sets the geometric tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Config) {
		c.Epsilon = eps
	}
}

// WithOrder sets the required outer ring orientation.
func WithOrder(order types.Order) Option {
	return func(c *Config) {
		c.Order = order
	}
}

// WithMinArea sets the absolute ring area a ring must exceed.
//
// Rings whose absolute area does not exceed it are considered
// degenerate.
func WithMinArea(area float64) Option {
	return func(c *Config) {
		c.MinArea = area
	}
}

// DefaultConfig returns default validation settings.
func DefaultConfig() Config {
	return Config{
		Epsilon: 1e-9,
		Order:   types.CounterClockwise,
		MinArea: 0,
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ValidateRing checks that a ring is closed, simple, non-degenerate
// and free of invalid coordinates.
func ValidateRing(r types.Ring, opts ...Option) error {
	cfg := newConfig(opts)
	return validateRing(r, cfg)
}

func validateRing(r types.Ring, cfg Config) error {
	if len(r) < 4 {
		return fmt.Errorf("ring must have at least 4 points including closure, got %d", len(r))
	}
	for i, p := range r {
		if !p.Valid() {
			return fmt.Errorf("ring point %d has non-finite coordinates", i)
		}
	}
	if !r.Closed() {
		return fmt.Errorf("ring is not closed")
	}
	if area := math.Abs(predicates.RingArea(r)); area <= cfg.MinArea {
		return fmt.Errorf("ring area %.6g does not exceed minimum %.6g", area, cfg.MinArea)
	}
	if predicates.RingSelfIntersects(r, cfg.Epsilon) {
		return fmt.Errorf("ring self-intersects")
	}
	return nil
}

// ValidatePolygon checks the polygon's rings, their orientations, and
// the placement of holes: every hole inside the outer, hole interiors
// pairwise disjoint.
func ValidatePolygon(p types.Polygon, opts ...Option) error {
	cfg := newConfig(opts)
	return validatePolygon(p, cfg)
}

func validatePolygon(p types.Polygon, cfg Config) error {
	if err := validateRing(p.Outer, cfg); err != nil {
		return fmt.Errorf("outer ring: %w", err)
	}
	if area := predicates.RingArea(p.Outer); !cfg.Order.Matches(area) {
		return fmt.Errorf("outer ring orientation is not %v", cfg.Order)
	}

	outer := types.MultiPolygon{{Outer: p.Outer}}
	for i, inner := range p.Inners {
		if err := validateRing(inner, cfg); err != nil {
			return fmt.Errorf("inner ring %d: %w", i, err)
		}
		if area := predicates.RingArea(inner); !cfg.Order.Opposite().Matches(area) {
			return fmt.Errorf("inner ring %d orientation is not %v", i, cfg.Order.Opposite())
		}
		hole := types.MultiPolygon{{Outer: inner}}
		covered, err := overlay.CoveredBy(hole, outer)
		if err != nil {
			return fmt.Errorf("inner ring %d containment check: %w", i, err)
		}
		if !covered {
			return fmt.Errorf("inner ring %d lies outside the outer ring", i)
		}
	}

	// The full library check also covers hole-interior disjointness and
	// the subtler touch configurations.
	if err := overlay.Valid(types.MultiPolygon{p}); err != nil {
		return err
	}
	return nil
}

// ValidateMultiPolygon checks every polygon and the pairwise
// disjointness of polygon interiors.
func ValidateMultiPolygon(m types.MultiPolygon, opts ...Option) error {
	cfg := newConfig(opts)
	for i, p := range m {
		if err := validatePolygon(p, cfg); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	if err := overlay.Valid(m); err != nil {
		return err
	}
	return nil
}

// Valid is a convenience wrapper that reports validity as a bool.
func Valid(m types.MultiPolygon, opts ...Option) bool {
	return ValidateMultiPolygon(m, opts...) == nil
}
