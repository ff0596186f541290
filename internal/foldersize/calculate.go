package foldersize

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Root identifies one directory whose total size is requested. It is owned
// by the caller; the core only reads it.
type Root struct {
	// Name is the display label, typically the folder name.
	Name string `json:"name"`
	// Path is the location handed to the FS.
	Path string `json:"path"`
}

// Result pairs a root with its accumulated total size in bytes.
type Result struct {
	Root Root  `json:"root"`
	Size int64 `json:"size"`
}

// Options configures a Calculate invocation.
type Options struct {
	// FS is the filesystem to scan. Nil means the local filesystem.
	FS FS
	// Concurrency caps concurrently outstanding stat operations.
	// Values below 1 fall back to DefaultConcurrency.
	Concurrency int
	// Progress, if non-nil, is invoked periodically with the number of files
	// sized and bytes accumulated so far, across all roots.
	Progress func(files, bytes int64)
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
}

// counters aggregates progress across all roots of one scan. The per-root
// totals never read these; they exist only for reporting.
type counters struct {
	files atomic.Int64
	bytes atomic.Int64
}

func (c *counters) add(files, bytes int64) {
	c.files.Add(files)
	c.bytes.Add(bytes)
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done.
func startProgressReporter(ctx context.Context, c *counters, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.files.Load(), c.bytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Calculate computes the total size of each root, scanning all roots
// concurrently. The returned slice has one Result per input root, in input
// order regardless of completion order.
//
// Listing and stat failures for individual paths are absorbed inside the
// scan and never surface here. A panic escaping one root's traversal is
// recovered and fails the whole call; no partial result set is returned in
// that case.
//
// Cancelling ctx is not an error: Calculate stops promptly and returns the
// partial totals accumulated up to that point with a nil error. Callers that
// treat superseded scans as stale should check ctx themselves and discard
// the output.
func Calculate(ctx context.Context, roots []Root, opt Options) ([]Result, error) {
	fsys := opt.FS
	if fsys == nil {
		fsys = OS
	}

	s := &scan{
		fsys:     fsys,
		res:      newResolver(fsys, opt.Concurrency),
		counters: &counters{},
	}

	// Child context so the progress reporter winds down with the call.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, s.counters, opt.Progress, opt.ProgressInterval)

	results := make([]Result, len(roots))

	var group errgroup.Group

	for i, root := range roots {
		i, root := i, root
		results[i].Root = root

		group.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("computing size of %q: %v", root.Path, p)
				}
			}()

			results[i].Size = s.computeFolderSize(ctx, root.Path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
