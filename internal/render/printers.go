package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/mood"
)

// Formats accepted by Print.
const (
	FormatJSON  = "json"
	FormatText  = "text"
	FormatTable = "table"
)

// Print writes entries to w in the named format.
func Print(w io.Writer, format string, entries []model.Entry, width int) error {
	switch format {
	case FormatJSON:
		return PrintJSON(w, entries)
	case FormatText, "":
		pp := &PrettyPrint{Out: w, Width: width}
		pp.Entries(entries)
		return nil
	case FormatTable:
		return PrintTable(w, entries)
	default:
		return fmt.Errorf("unknown format %q (use json, text or table)", format)
	}
}

// PrintJSON writes entries as an indented JSON array.
func PrintJSON(w io.Writer, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// PrintTable writes one row per entry.
func PrintTable(w io.Writer, entries []model.Entry) error {
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "DATE", "TITLE", "MOOD", "ARCHIVED")
	for _, e := range entries {
		archived := ""
		if e.Archived {
			archived = "yes"
		}
		table.AddRow(e.ID, e.Date.Long(), e.Title, e.Mood, archived)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

// PrettyPrint writes coloured, word-wrapped entries.
type PrettyPrint struct {
	Out   io.Writer
	Width int
}

var moodAttrs = map[mood.Category][]color.Attribute{
	mood.Reflective: {color.FgMagenta},
	mood.Calm:       {color.FgCyan},
	mood.Productive: {color.FgGreen},
	mood.Melancholy: {color.FgRed},
	mood.Neutral:    {color.Faint},
}

// Entries prints each entry followed by a count footer. An empty list
// prints the "no entries" hint instead.
func (pp *PrettyPrint) Entries(entries []model.Entry) {
	if len(entries) == 0 {
		pp.Empty()
		return
	}
	for _, e := range entries {
		pp.Entry(e)
	}
	pp.Footer(len(entries))
}

// Entry prints one entry.
func (pp *PrettyPrint) Entry(e model.Entry) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)
	m := color.New(moodAttrs[mood.Classify(e.Mood)]...)

	_, _ = t.Fprint(pp.Out, e.Title)
	_, _ = m.Fprintf(pp.Out, "  [%s]", e.Mood)
	if e.Archived {
		_, _ = f.Fprint(pp.Out, "  Archived")
	}
	_, _ = fmt.Fprintln(pp.Out)
	_, _ = f.Fprintln(pp.Out, e.Date.Long())

	width := pp.Width
	if width <= 0 {
		width = 80
	}
	_, _ = fmt.Fprintln(pp.Out, wordwrap.String(e.Body, width))
	_, _ = fmt.Fprintln(pp.Out)
}

// Empty prints the no-entries state.
func (pp *PrettyPrint) Empty() {
	f := color.New(color.Faint, color.Italic)
	_, _ = fmt.Fprintln(pp.Out, EmptyTitle)
	_, _ = f.Fprintln(pp.Out, EmptyHint)
}

// Footer prints the displayed-entries count.
func (pp *PrettyPrint) Footer(n int) {
	f := color.New(color.Faint)
	_, _ = f.Fprintln(pp.Out, Count(n))
}

// Shared page copy.
const (
	EmptyTitle = "No entries found"
	EmptyHint  = "Try adjusting your search or toggle archived entries"
)

// Count renders "1 entry displayed" / "N entries displayed".
func Count(n int) string {
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%d %s displayed", n, noun)
}
