package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/foldersize/internal/fastscan"
	"github.com/idelchi/foldersize/internal/foldersize"
)

func run(opt options, paths []string) error {
	roots := make([]foldersize.Root, 0, len(paths))

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving path %q: %w", p, err)
		}

		roots = append(roots, foldersize.Root{Name: filepath.Base(abs), Path: abs})
	}

	// Ctrl-C cancels the scan; whatever accumulated by then is printed as
	// partial.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opt.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	enableProgress := opt.Output != "json" && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s", files, foldersize.FormatBytes(bytes))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	var (
		results []foldersize.Result
		err     error
	)

	if opt.Fast {
		results, err = fastTotals(ctx, roots)
	} else {
		results, err = foldersize.Calculate(ctx, roots, foldersize.Options{
			Concurrency: opt.Concurrency,
			Progress:    progressHook,
		})
	}

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "scan interrupted; totals are partial")
	}

	if opt.MinSize > 0 {
		kept := results[:0]

		for _, r := range results {
			if r.Size >= opt.MinSize {
				kept = append(kept, r)
			}
		}

		results = kept
	}

	switch opt.Output {
	case "json":
		return PrintJSON(results, os.Stdout)
	case "table":
		return PrintTable(results, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", opt.Output)
	}
}

// fastTotals runs the native walker once per root, sequentially. It exists
// for plain local paths where walk parallelism beats the portable engine's
// batched stats.
func fastTotals(ctx context.Context, roots []foldersize.Root) ([]foldersize.Result, error) {
	results := make([]foldersize.Result, len(roots))

	for i, root := range roots {
		bytes, _, err := fastscan.Total(ctx, root.Path)
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("scanning %q: %w", root.Path, err)
		}

		results[i] = foldersize.Result{Root: root, Size: bytes}
	}

	return results, nil
}
