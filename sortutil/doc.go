// Package sortutil sorts (item, distance) entries in ascending order of
// distance, the way the bulk builder needs them sorted at every pivot
// split.
//
// Two strategies share one entry point, Sort:
//
//   - n < Threshold: an in-place shellsort using Shell's halving gap
//     sequence (n/2, n/4, ..., 1). Simple, cache-friendly, and fast enough
//     that spinning up goroutines would only add overhead.
//   - n >= Threshold: the slice is split into Config.Threads roughly equal
//     runs (the last run absorbs any remainder), each run is shellsorted
//     on its own goroutine — the calling goroutine does the last run
//     itself rather than spawning an extra one — and the sorted runs are
//     merged with a k-way merge into a scratch buffer that Sort allocates
//     itself, which is then copied back over the input.
//
// Sort is not stable: entries with equal distance may be reordered.
package sortutil
