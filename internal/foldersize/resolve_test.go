package foldersize

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestResolveAllBoundsConcurrency(t *testing.T) {
	const (
		limit = 3
		batch = 20
	)

	fs := &fakeFS{
		infos:     map[string]Info{},
		statDelay: 2 * time.Millisecond,
	}

	paths := make([]string, batch)
	for i := range paths {
		paths[i] = fmt.Sprintf("f%d", i)
		fs.infos[paths[i]] = Info{Type: TypeFile, Size: int64(i)}
	}

	results := newResolver(fs, limit).resolveAll(context.Background(), paths)

	for i, r := range results {
		if !r.ok {
			t.Errorf("path %d: expected a result", i)
			continue
		}

		if r.info.Size != int64(i) {
			t.Errorf("path %d: got size %d, expected %d", i, r.info.Size, i)
		}
	}

	if peak := fs.maxInflight.Load(); peak > limit {
		t.Errorf("peak concurrency %d exceeds limit %d", peak, limit)
	}
}

func TestResolveAllStatFailureIsPerPath(t *testing.T) {
	fs := &fakeFS{
		infos: map[string]Info{
			"a": {Type: TypeFile, Size: 1},
			"c": {Type: TypeFile, Size: 3},
		},
		statErrs: map[string]bool{"b": true},
	}

	results := newResolver(fs, 2).resolveAll(context.Background(), []string{"a", "b", "c"})

	if !results[0].ok || results[0].info.Size != 1 {
		t.Errorf("path a: got %+v", results[0])
	}

	if results[1].ok {
		t.Errorf("path b: expected an absent result, got %+v", results[1])
	}

	if !results[2].ok || results[2].info.Size != 3 {
		t.Errorf("path c: got %+v", results[2])
	}
}

func TestResolveAllAbandonsBatchOnCancel(t *testing.T) {
	const limit = 4

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel from inside the first chunk: its stats still complete, but
	// their results must be discarded and no further chunk may start.
	fs := &fakeFS{
		infos:  map[string]Info{},
		onStat: func(string) { cancel() },
	}

	paths := make([]string, 3*limit)
	for i := range paths {
		paths[i] = fmt.Sprintf("f%d", i)
		fs.infos[paths[i]] = Info{Type: TypeFile, Size: 1}
	}

	results := newResolver(fs, limit).resolveAll(ctx, paths)

	for i, r := range results {
		if r.ok {
			t.Errorf("path %d: expected discarded result after cancellation", i)
		}
	}

	if statted := fs.stats.Load(); statted > limit {
		t.Errorf("%d stats issued after cancellation, expected at most %d", statted, limit)
	}
}

func TestResolveAllEmptyBatch(t *testing.T) {
	fs := &fakeFS{infos: map[string]Info{}}

	if results := newResolver(fs, 1).resolveAll(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestNewResolverClampsLimit(t *testing.T) {
	for _, limit := range []int{-5, 0} {
		if got := newResolver(&fakeFS{}, limit).limit; got != DefaultConcurrency {
			t.Errorf("limit %d: got %d, expected %d", limit, got, DefaultConcurrency)
		}
	}

	if got := newResolver(&fakeFS{}, 1).limit; got != 1 {
		t.Errorf("limit 1: got %d, expected 1", got)
	}
}
