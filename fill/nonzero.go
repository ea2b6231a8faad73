package fill

import (
	"math"
	"sort"

	"github.com/iceisfun/gorepair/overlay"
	"github.com/iceisfun/gorepair/types"
)

type nonZeroWinding struct{}

// NonZeroWinding returns the strategy that fills every region the
// original ring winds around a non-zero number of times.
func NonZeroWinding() Strategy {
	return nonZeroWinding{}
}

// Resolve scores each sub-ring with the summed winding signs of the
// sub-rings containing it. Rings with a non-zero final score bound
// filled area; rings whose windings cancel become holes.
func (nonZeroWinding) Resolve(batch []types.MultiPolygon) types.MultiPolygon {
	if len(batch) == 0 {
		return nil
	}

	// Containers sort before contained, so scores[j] only ever needs
	// contributions from earlier entries.
	sort.SliceStable(batch, func(i, j int) bool {
		return math.Abs(signedArea(batch[i])) > math.Abs(signedArea(batch[j]))
	})

	scores := make([]int, len(batch))
	for i, m := range batch {
		if signedArea(m) > 0 {
			scores[i] = 1
		} else {
			scores[i] = -1
		}
	}

	normalize(batch)

	for i := range batch {
		for j := i + 1; j < len(batch); j++ {
			covered, err := overlay.CoveredBy(batch[j], batch[i])
			if err == nil && covered {
				scores[j] += scores[i]
			}
		}
	}

	var outers, inners types.MultiPolygon
	for i, m := range batch {
		if scores[i] != 0 {
			outers = ResultCombineMultiple(outers, m)
		} else {
			inners = ResultCombineMultiple(inners, m)
		}
	}

	out, err := overlay.Difference(outers, inners)
	if err != nil {
		return outers
	}
	return out
}

// Combine folds with the conservative pairwise union.
func (nonZeroWinding) Combine(acc, next types.MultiPolygon) types.MultiPolygon {
	return ResultCombineMultiple(acc, next)
}

// Carve subtracts the hole contribution.
func (nonZeroWinding) Carve(outers, holes types.MultiPolygon) types.MultiPolygon {
	out, err := overlay.Difference(outers, holes)
	if err != nil {
		return outers.Clone()
	}
	return out
}
