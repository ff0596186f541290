package foldersize

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// fakeFS is an in-memory FS for tests. Directory listings and stat results
// are declared up front; call counts and peak stat concurrency are tracked
// so tests can assert on I/O behavior, not just totals.
type fakeFS struct {
	dirs  map[string][]Entry
	infos map[string]Info

	listErrs map[string]bool
	statErrs map[string]bool

	statDelay time.Duration
	onStat    func(path string)

	reads       atomic.Int64
	stats       atomic.Int64
	inflight    atomic.Int64
	maxInflight atomic.Int64
}

func (f *fakeFS) ReadDir(_ context.Context, path string) ([]Entry, error) {
	f.reads.Add(1)

	if f.listErrs[path] {
		return nil, fmt.Errorf("list %s: access denied", path)
	}

	entries, ok := f.dirs[path]
	if !ok {
		return nil, fmt.Errorf("list %s: no such directory", path)
	}

	return entries, nil
}

func (f *fakeFS) Stat(_ context.Context, path string) (Info, error) {
	f.stats.Add(1)

	cur := f.inflight.Add(1)
	defer f.inflight.Add(-1)

	for {
		peak := f.maxInflight.Load()
		if cur <= peak || f.maxInflight.CompareAndSwap(peak, cur) {
			break
		}
	}

	if f.onStat != nil {
		f.onStat(path)
	}

	if f.statDelay > 0 {
		time.Sleep(f.statDelay)
	}

	if f.statErrs[path] {
		return Info{}, fmt.Errorf("stat %s: no such file", path)
	}

	info, ok := f.infos[path]
	if !ok {
		return Info{}, fmt.Errorf("stat %s: no such file", path)
	}

	return info, nil
}
