// Package fastscan totals a local directory tree with fastwalk's parallel
// walker. It trades the portable listing/stat interface of the foldersize
// core for raw speed on plain OS paths, and is used by the CLI fast path and
// as a cross-check in tests.
package fastscan

import (
	"context"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Total walks root and returns the cumulative size and count of the regular
// files beneath it. Symlinks are not followed. Per-entry errors are skipped
// silently; the walk itself only fails on cancellation or a root-level error.
func Total(ctx context.Context, root string) (bytes, files int64, err error) {
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	walkErr := fastwalk.Walk(conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		atomic.AddInt64(&files, 1)
		atomic.AddInt64(&bytes, info.Size())

		return nil
	})
	if walkErr != nil {
		return 0, 0, walkErr
	}

	return bytes, files, nil
}
