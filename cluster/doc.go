// Package cluster groups page coordinates by resonance class into a
// compact CSR (offsets/indices) view for fast bulk access.
//
// 🚀 What is resonance clustering?
//
//	Downstream batch processors want "every coordinate of class r" as one
//	contiguous slice, without allocating 96 separate arrays.  CSR gives
//	exactly that: a 97-entry offsets table (exclusive prefix sums of the
//	per-class counts) and a flat indices array of all N coordinates,
//	grouped by class in encounter order.
//
// Algorithm Outline (counting sort, two passes):
//  1. Pass 1: classify every byte (coordinate i ↦ data[i] mod 96) and
//     count occurrences per class — 96 counters.
//  2. Exclusive prefix sum over the counters → offsets[0..96], with
//     offsets[0] = 0 and offsets[96] = N.
//  3. Pass 2: copy offsets into a cursor array; scan coordinates in
//     original order and scatter each into indices[cursor[class]++].
//
// Parallel builds (Options.Workers > 1) partition the pages into
// contiguous chunks: pass 1 runs per chunk with local counters, a single
// sequential merge adds them up before the prefix sum, and pass 2 scatters
// chunks in parallel into disjoint ranges computed from the merged
// offsets — encounter order is preserved because chunks are contiguous
// and merged in chunk order.
//
// ✨ View invariants (checked by tests, assumed by consumers):
//   - offsets[0] == 0, offsets[96] == N, offsets nondecreasing
//   - indices[offsets[r]:offsets[r+1]] holds exactly the coordinates whose
//     byte classifies to r, in encounter order
//   - after Destroy, every accessor returns ErrViewDestroyed — stale views
//     fail loudly instead of reading freed state
//
// Complexity: O(N) time, O(N + 97) memory, N = 256 · pages.
//
// ⚙️ Usage:
//
//	view, err := cluster.Build(data, nil) // nil opts → DefaultOptions()
//	if err != nil { ... }
//	defer view.Destroy()
//
//	coords, err := view.CoordinatesForClass(17)
//	for _, c := range coords { ... }
package cluster
