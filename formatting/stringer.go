// Package formatting renders the geometry model as WKT-flavoured
// strings for logs, test failures and debugging.
package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/iceisfun/gorepair/types"
)

// PointString returns a WKT-style coordinate pair.
func PointString(p types.Point) string {
	return fmt.Sprintf("%.10g %.10g", p.X, p.Y)
}

// RingString renders a ring as a parenthesised coordinate list.
func RingString(r types.Ring) string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = PointString(p)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// PolygonString renders a polygon with its holes in WKT body form.
func PolygonString(p types.Polygon) string {
	parts := make([]string, 0, 1+len(p.Inners))
	parts = append(parts, RingString(p.Outer))
	for _, inner := range p.Inners {
		parts = append(parts, RingString(inner))
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// MultiPolygonString renders a complete WKT MULTIPOLYGON literal.
func MultiPolygonString(m types.MultiPolygon) string {
	if len(m) == 0 {
		return "MULTIPOLYGON EMPTY"
	}
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = PolygonString(p)
	}
	return fmt.Sprintf("MULTIPOLYGON(%s)", strings.Join(parts, ", "))
}

// WriteMultiPolygon writes the WKT representation to a writer.
func WriteMultiPolygon(w io.Writer, m types.MultiPolygon) error {
	_, err := io.WriteString(w, MultiPolygonString(m))
	return err
}
