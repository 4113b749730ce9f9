package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/icemarkom/syncfmt/internal/format"
)

// Formatters turns entry fields into display strings.
type Formatters struct {
	Sizes format.SizeFormatter
	Types format.MimeTable
	Times *format.Timestamps
	Exact bool // Append the exact byte count to sizes
}

// Row is the display form of an Entry.
type Row struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Type     string `json:"type"`
	Modified string `json:"modified"`
}

// Row formats e for display.
func (f Formatters) Row(e Entry) Row {
	name := e.Name
	if e.IsDir {
		name += "/"
	}
	size := f.Sizes.Format(e.Size)
	if f.Exact && e.Size >= 0 {
		size = fmt.Sprintf("%s (%s bytes)", size, humanize.Comma(e.Size))
	}
	return Row{
		Name:     name,
		Size:     size,
		Type:     f.Types.Prettify(e.MIME),
		Modified: f.Times.Relative(e.ModTime.UnixMilli()),
	}
}

// WriteTable prints entries as aligned columns.
func (f Formatters) WriteTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tTYPE\tMODIFIED")
	for _, e := range entries {
		r := f.Row(e)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Size, r.Type, r.Modified)
	}
	return tw.Flush()
}

type jsonEntry struct {
	Entry
	Display Row `json:"display"`
}

// WriteJSON prints entries with their raw and formatted values.
func (f Formatters) WriteJSON(w io.Writer, entries []Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, jsonEntry{Entry: e, Display: f.Row(e)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	return nil
}
