package fill

import (
	"github.com/iceisfun/gorepair/overlay"
	"github.com/iceisfun/gorepair/types"
)

// resultCombine appends next to result, then repeatedly merges it with
// any earlier entry it intersects, provided the pairwise union reduces
// to exactly one polygon.
//
// A pair that merely touches at a point has a disconnected union and is
// deliberately left as two entries; forcing such mergers risks invalid
// output.
func resultCombine(result types.MultiPolygon, next types.Polygon) types.MultiPolygon {
	result = append(result, next)

	for i := 0; i < len(result)-1; {
		earlier := types.MultiPolygon{result[i]}
		newest := types.MultiPolygon{result[len(result)-1]}

		if !overlay.Intersects(earlier, newest) {
			i++
			continue
		}

		union, err := overlay.Union(earlier, newest)
		if err != nil || len(union) != 1 {
			i++
			continue
		}

		result[len(result)-1] = union[0]
		result = append(result[:i], result[i+1:]...)
	}

	return result
}

// ResultCombineMultiple folds every polygon of next into result using
// the conservative pairwise union.
func ResultCombineMultiple(result, next types.MultiPolygon) types.MultiPolygon {
	for _, p := range next {
		result = resultCombine(result, p)
	}
	return result
}
