package foldersize

import (
	"context"
	"io/fs"
	"os"
)

// Type is the coarse classification of a directory entry or stat result.
type Type uint8

const (
	// TypeUnknown marks entries the listing could not classify; a stat
	// resolves them authoritatively.
	TypeUnknown Type = iota
	// TypeFile is a regular file.
	TypeFile
	// TypeDir is a directory.
	TypeDir
	// TypeSymlink is a symbolic link. Links are never followed or sized.
	TypeSymlink
)

// Entry is one item returned by listing a directory.
type Entry struct {
	// Name is a single path segment, relative to the listed directory.
	Name string
	// Type is the type hint from the listing. It may be coarser or staler
	// than what a stat reports.
	Type Type
}

// Info is the authoritative metadata for a path.
type Info struct {
	// Type is the resolved type.
	Type Type
	// Size is the logical size in bytes. Meaningful for files only.
	Size int64
}

// FS is the filesystem surface the scan runs against. Implementations only
// need to list a directory and stat a path; the engine builds everything
// else on top of those two calls.
//
// Both calls may fail per invocation. The engine absorbs such failures
// locally: a failed listing contributes zero entries and a failed stat
// contributes zero bytes. Neither aborts a scan.
type FS interface {
	// ReadDir lists the entries of the directory at path.
	ReadDir(ctx context.Context, path string) ([]Entry, error)
	// Stat resolves the type and size of the path.
	Stat(ctx context.Context, path string) (Info, error)
}

// OS is an FS backed by the local filesystem.
//
//nolint:gochecknoglobals // Stateless default backend
var OS FS = osFS{}

type osFS struct{}

// ReadDir lists a local directory. Symlinks are reported as such and never
// resolved here; entries whose type the kernel does not report land as
// TypeUnknown for the caller to stat.
func (osFS) ReadDir(_ context.Context, path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), Type: entryType(d.Type())})
	}

	return entries, nil
}

// Stat resolves a local path, following symlinks. The result reflects the
// target, which is what makes it suitable for resolving TypeUnknown entries.
func (osFS) Stat(_ context.Context, path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}

	return Info{Type: statType(fi.Mode()), Size: fi.Size()}, nil
}

// entryType maps a listing mode to the coarse entry classification.
func entryType(mode fs.FileMode) Type {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDir
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeUnknown
	}
}

// statType maps a stat mode to the resolved classification. Stat follows
// links, so TypeSymlink cannot occur here; sockets, devices and the like
// stay TypeUnknown and contribute nothing.
func statType(mode fs.FileMode) Type {
	switch {
	case mode.IsDir():
		return TypeDir
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeUnknown
	}
}
