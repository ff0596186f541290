package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/foldersize/internal/foldersize"
	"github.com/idelchi/foldersize/internal/integration"
)

// options carries the parsed command-line configuration.
type options struct {
	// Concurrency caps concurrently outstanding stat operations.
	Concurrency int
	// Output is the output format (table or json).
	Output string
	// MinSize hides roots smaller than this many bytes from the output.
	MinSize int64
	// Timeout cancels the scan after this duration (0 = none).
	Timeout time.Duration
	// Fast switches to the native fastwalk scanner for local paths.
	Fast bool
	// Integration outputs the shell integration script and exits.
	Integration bool
}

// New builds the foldersize command.
func New(version string) *cobra.Command {
	var (
		opt        options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "foldersize [flags] [path...]",
		Short: "Compute the total size of the files beneath each given folder",
		Long: heredoc.Doc(`
			foldersize sums the sizes of all regular files beneath each given folder
			and prints one total per folder, in the order the folders were given.

			Symbolic links are never followed or sized, so link cycles cannot inflate
			a total or hang the scan. Folders that vanish or deny access mid-scan
			simply contribute nothing.

			Stat operations run concurrently up to a fixed limit (--concurrency) to
			stay fast on large trees without overwhelming slow or remote storage.

			With no path arguments the current directory is scanned.

			The '-i' flag prints a shell integration script for interactive use
			with fzf.
		`),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				cmd.Println(rendered)

				return nil
			}

			if !slices.Contains(allowedOutputs, opt.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", opt.Output, allowedOutputs)
			}

			if opt.Timeout < 0 {
				return errors.New("timeout cannot be negative")
			}

			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				opt.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			return run(opt, args)
		},
	}

	cmd.Flags().IntVarP(&opt.Concurrency, "concurrency", "c", foldersize.DefaultConcurrency,
		"Maximum number of concurrent stat operations")
	cmd.Flags().StringVarP(&opt.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "", "Hide folders below this size (e.g., 1KB)")
	cmd.Flags().DurationVarP(&opt.Timeout, "timeout", "t", 0, "Cancel the scan after this duration (0 = none)")
	cmd.Flags().BoolVar(&opt.Fast, "fast", false, "Use the native parallel walker instead of the portable engine")
	cmd.Flags().BoolVarP(&opt.Integration, "init", "i", false, "Output init script for shell usage")

	cmd.Flags().SortFlags = false

	return cmd
}
