package foldersize

import (
	"context"
	"sync"
)

// DefaultConcurrency is the default cap on concurrently outstanding stat
// operations.
const DefaultConcurrency = 32

// statResult is the outcome of one stat in a batch. ok is false when the
// path became inaccessible between listing and statting, or when the batch
// was cancelled before the result could be delivered.
type statResult struct {
	info Info
	ok   bool
}

// resolver issues batches of stat operations with a fixed upper bound on
// how many are in flight at once.
type resolver struct {
	fsys  FS
	limit int
}

// newResolver creates a resolver statting at most limit paths concurrently.
// A limit below 1 falls back to DefaultConcurrency.
func newResolver(fsys FS, limit int) *resolver {
	if limit < 1 {
		limit = DefaultConcurrency
	}

	return &resolver{fsys: fsys, limit: limit}
}

// resolveAll stats every path and returns one result per path, index-aligned
// with the input. Paths are processed in chunks of at most the configured
// limit: all stats within a chunk run concurrently, and the next chunk does
// not start until the previous one has fully completed. Peak concurrency
// therefore never exceeds the limit regardless of batch size.
//
// Cancellation is checked before each chunk and again once a chunk has
// joined. A cancelled batch still waits for its in-flight chunk so no stat
// is left unresolved, but the chunk's results are discarded and the rest of
// the batch is abandoned. A single stat failure resolves to an absent result
// for that path only.
func (r *resolver) resolveAll(ctx context.Context, paths []string) []statResult {
	results := make([]statResult, len(paths))

	for start := 0; start < len(paths); start += r.limit {
		if ctx.Err() != nil {
			break
		}

		end := min(start+r.limit, len(paths))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				break
			}

			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				info, err := r.fsys.Stat(ctx, paths[i])
				if err != nil {
					return // Absent result; path vanished or is inaccessible
				}

				results[i] = statResult{info: info, ok: true}
			}(i)
		}

		wg.Wait()

		if ctx.Err() != nil {
			// The chunk was awaited to completion, but its results are
			// discarded along with the remainder of the batch.
			for i := start; i < end; i++ {
				results[i] = statResult{}
			}

			break
		}
	}

	return results
}
