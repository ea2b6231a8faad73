package repair

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/iceisfun/gorepair/fill"
	"github.com/iceisfun/gorepair/types"
)

// CorrectConcurrent repairs the constituent polygons of a
// multi-polygon on parallel goroutines and combines the results in
// input order, so the output matches Correct exactly.
//
// The polygons share no state, which is what makes this safe; the
// repair of a single polygon is never parallelized.
func CorrectConcurrent(input types.MultiPolygon, opts ...Option) types.MultiPolygon {
	return correctConcurrentWith(input, fill.NonZeroWinding(), newConfig(opts))
}

// CorrectOddEvenConcurrent is the even-odd counterpart of
// CorrectConcurrent.
func CorrectOddEvenConcurrent(input types.MultiPolygon, opts ...Option) types.MultiPolygon {
	return correctConcurrentWith(input, fill.OddEven(), newConfig(opts))
}

func correctConcurrentWith(input types.MultiPolygon, strategy fill.Strategy, cfg config) types.MultiPolygon {
	results := make([]types.MultiPolygon, len(input))

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, poly := range input {
		group.Go(func() error {
			results[i] = repairPolygon(poly, strategy, cfg, 0)
			return nil
		})
	}
	// The workers never return errors; Wait only synchronizes.
	_ = group.Wait()

	var output types.MultiPolygon
	for _, repaired := range results {
		output = strategy.Combine(output, repaired)
	}
	return orientOutput(output, cfg.order)
}
