package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/foldersize/internal/foldersize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs results in JSON format.
func PrintJSON(results []foldersize.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs results in human-readable table format, one row per
// folder in input order, with a total row when more than one folder was
// scanned.
func PrintTable(results []foldersize.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	var total int64

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t(%s bytes)\n",
			r.Root.Name, foldersize.FormatBytes(r.Size), humanize.Comma(r.Size))

		total += r.Size
	}

	if len(results) > 1 {
		fmt.Fprintf(w, "\nTotal:\t%s\t(%s bytes)\n",
			foldersize.FormatBytes(total), humanize.Comma(total))
	}

	return w.Flush()
}
