package cluster

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selivant/harmonia/resonance"
)

// Build constructs a CSR view grouping every coordinate of data by its
// resonance class. data must be one or more whole 256-byte pages; each
// coordinate i in [0, len(data)) lands in the class of data[i].
//
// opts may be nil, which selects DefaultOptions (sequential, silent).
// With Workers > 1 the build partitions pages into contiguous chunks and
// runs both passes in parallel; the per-chunk counts are merged
// sequentially before the prefix sum, so the resulting view is identical
// to a sequential build.
//
// Returns ErrEmptyInput for empty data and ErrPageAlign when len(data)
// is not a multiple of 256.
//
// Complexity: O(N) time, O(N + 97) memory, N = len(data).
func Build(data []byte, opts *Options) (*View, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data)%resonance.PageSize != 0 {
		return nil, ErrPageAlign
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	n := len(data)
	pages := n / resonance.PageSize

	workers := o.Workers
	if workers > pages {
		workers = pages
	}

	var view *View
	if workers <= 1 {
		view = buildSequential(data)
	} else {
		view = buildParallel(data, workers)
	}

	log.Debug("cluster built",
		zap.Int("pages", pages),
		zap.Int("coordinates", n),
		zap.Int("workers", max(workers, 1)))

	return view, nil
}

// buildSequential is the two-pass counting sort over the whole input.
func buildSequential(data []byte) *View {
	n := len(data)

	// Pass 1: per-class occurrence counts.
	var counts [resonance.NumClasses]int
	for _, b := range data {
		counts[resonance.Classify(b)]++
	}

	offsets := prefixSum(counts)

	// Pass 2: scatter coordinates through a cursor copy of the offsets.
	var cursor [resonance.NumClasses]int
	copy(cursor[:], offsets[:resonance.NumClasses])
	indices := make([]int, n)
	for i, b := range data {
		r := resonance.Classify(b)
		indices[cursor[r]] = i
		cursor[r]++
	}
	checkCursors(&cursor, offsets, &counts)

	return &View{offsets: offsets, indices: indices, n: n}
}

// buildParallel partitions the pages into contiguous chunks, counts and
// scatters per chunk, and merges counts sequentially in chunk order so
// encounter order is preserved end to end.
func buildParallel(data []byte, workers int) *View {
	n := len(data)
	pages := n / resonance.PageSize

	// Contiguous page ranges per worker: [bounds[w], bounds[w+1]) bytes.
	bounds := make([]int, workers+1)
	for w := 0; w <= workers; w++ {
		bounds[w] = (pages * w / workers) * resonance.PageSize
	}

	// Pass 1 (parallel): local class counts per chunk.
	local := make([][resonance.NumClasses]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // pre-go1.22 loop variable semantics under the go 1.21 directive
		g.Go(func() error {
			for _, b := range data[bounds[w]:bounds[w+1]] {
				local[w][resonance.Classify(b)]++
			}

			return nil
		})
	}
	_ = g.Wait() // workers never fail; errgroup provides the join

	// Sequential merge: global counts, then per-chunk write origins.
	var counts [resonance.NumClasses]int
	starts := make([][resonance.NumClasses]int, workers)
	for r := 0; r < resonance.NumClasses; r++ {
		for w := 0; w < workers; w++ {
			starts[w][r] = counts[r]
			counts[r] += local[w][r]
		}
	}
	offsets := prefixSum(counts)

	// Pass 2 (parallel): each chunk scatters into disjoint index ranges.
	indices := make([]int, n)
	var g2 errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // pre-go1.22 loop variable semantics under the go 1.21 directive
		g2.Go(func() error {
			var cursor [resonance.NumClasses]int
			for r := 0; r < resonance.NumClasses; r++ {
				cursor[r] = offsets[r] + starts[w][r]
			}
			base := bounds[w]
			for i, b := range data[base:bounds[w+1]] {
				r := resonance.Classify(b)
				indices[cursor[r]] = base + i
				cursor[r]++
			}
			for r := 0; r < resonance.NumClasses; r++ {
				if cursor[r] != offsets[r]+starts[w][r]+local[w][r] {
					panic(fmt.Sprintf("cluster: chunk %d cursor for class %d drifted", w, r))
				}
			}

			return nil
		})
	}
	_ = g2.Wait()

	return &View{offsets: offsets, indices: indices, n: n}
}

// prefixSum builds the 97-entry exclusive prefix sum of the class counts.
func prefixSum(counts [resonance.NumClasses]int) []int {
	offsets := make([]int, resonance.NumClasses+1)
	for r := 0; r < resonance.NumClasses; r++ {
		offsets[r+1] = offsets[r] + counts[r]
	}

	return offsets
}

// checkCursors asserts every cursor landed exactly on the next class
// offset. A drift here is a broken invariant, not bad input.
func checkCursors(cursor *[resonance.NumClasses]int, offsets []int, counts *[resonance.NumClasses]int) {
	for r := 0; r < resonance.NumClasses; r++ {
		if cursor[r] != offsets[r]+counts[r] {
			panic(fmt.Sprintf("cluster: cursor for class %d drifted", r))
		}
	}
}
