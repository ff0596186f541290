package foldersize

import (
	"context"
	"path/filepath"
)

// scan bundles the collaborators shared by every root of one Calculate
// invocation. All fields are read-only after construction; the counters are
// atomic and only feed progress reporting, never the totals.
type scan struct {
	fsys     FS
	res      *resolver
	counters *counters
}

// pending is a queued stat request for one directory's entries, remembering
// whether the entry needed the stat for type resolution (TypeUnknown) or
// only for its size (TypeFile).
type pending struct {
	path    string
	unknown bool
}

// computeFolderSize walks one root and returns the total size of all regular
// files beneath it.
//
// The walk is iterative: a frontier stack holds directories discovered but
// not yet listed, and a visited set keyed by the cleaned location guards
// against listing the same directory twice, so link cycles and repeated
// discovery paths terminate and count each directory at most once. Listing
// failures contribute zero entries, which also absorbs roots that are not
// directories at all.
//
// A cancelled context halts the walk at the next check point and the partial
// total accumulated so far is returned.
func (s *scan) computeFolderSize(ctx context.Context, root string) int64 {
	frontier := []string{root}
	visited := make(map[string]struct{})

	var total int64

	for len(frontier) > 0 && ctx.Err() == nil {
		dir := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		key := filepath.Clean(dir)
		if _, seen := visited[key]; seen {
			continue
		}

		visited[key] = struct{}{}

		entries, err := s.fsys.ReadDir(ctx, dir)
		if err != nil {
			continue // Directory vanished, permission denied, or not a directory
		}

		var queue []pending

		for _, entry := range entries {
			if ctx.Err() != nil {
				break // Partial directories are acceptable on cancellation
			}

			path := filepath.Join(dir, entry.Name)

			switch entry.Type {
			case TypeDir:
				frontier = append(frontier, path)
			case TypeFile:
				queue = append(queue, pending{path: path})
			case TypeSymlink:
				// Never followed or sized; avoids cycles and double counting.
			case TypeUnknown:
				queue = append(queue, pending{path: path, unknown: true})
			}
		}

		if len(queue) == 0 {
			continue
		}

		paths := make([]string, len(queue))
		for i, p := range queue {
			paths[i] = p.path
		}

		for i, result := range s.res.resolveAll(ctx, paths) {
			if ctx.Err() != nil {
				break
			}

			if !result.ok {
				continue // Path became inaccessible; contributes nothing
			}

			switch {
			case result.info.Type == TypeFile:
				// The stat is the authoritative source: entries listed as
				// files are re-checked here before their size counts.
				total += result.info.Size
				s.counters.add(1, result.info.Size)
			case result.info.Type == TypeDir && queue[i].unknown:
				frontier = append(frontier, queue[i].path)
			}
		}
	}

	return total
}
