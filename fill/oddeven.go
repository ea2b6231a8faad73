package fill

import (
	"math"
	"sort"

	"github.com/iceisfun/gorepair/overlay"
	"github.com/iceisfun/gorepair/types"
)

type oddEven struct{}

// OddEven returns the strategy that fills every region covered by an
// odd number of sub-rings.
func OddEven() Strategy {
	return oddEven{}
}

// Resolve folds the batch with symmetric differences, halving the list
// each round by pairing entry i with entry i+ceil(n/2).
//
// The tree-shaped reduction keeps each pairing between regions of
// comparable size, bounding the complexity of the intermediate
// geometry; a linear fold would repeatedly diff tiny rings against one
// huge accumulator.
func (oddEven) Resolve(batch []types.MultiPolygon) types.MultiPolygon {
	if len(batch) == 0 {
		return nil
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return math.Abs(signedArea(batch[i])) < math.Abs(signedArea(batch[j]))
	})

	normalize(batch)

	for len(batch) > 1 {
		half := len(batch)/2 + len(batch)%2
		for i := 0; i < len(batch)/2; i++ {
			batch[i] = xor(batch[i], batch[i+half])
		}
		batch = batch[:half]
	}

	return batch[0]
}

// Combine folds with a symmetric difference.
func (oddEven) Combine(acc, next types.MultiPolygon) types.MultiPolygon {
	return xor(acc, next)
}

// Carve removes holes with a symmetric difference, so a hole falling
// outside the filled region re-emerges as a filled peer.
func (oddEven) Carve(outers, holes types.MultiPolygon) types.MultiPolygon {
	return xor(outers, holes)
}

func xor(a, b types.MultiPolygon) types.MultiPolygon {
	out, err := overlay.SymmetricDifference(a, b)
	if err != nil {
		// Degrade to concatenation rather than dropping content.
		return append(a.Clone(), b.Clone()...)
	}
	return out
}
