// Package filter selects the visible subset of a journal collection.
package filter

import (
	"strings"

	"github.com/rcliao/journal-archive/internal/model"
)

// Params holds the page state the visible set depends on.
type Params struct {
	Query        string
	ShowArchived bool
}

// Apply returns the entries that pass the archived toggle and, when the
// query is non-empty, contain it in title, body or mood. Order is kept and
// the input is not modified.
func Apply(entries []model.Entry, p Params) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	query := strings.ToLower(p.Query)
	for _, e := range entries {
		if !p.ShowArchived && e.Archived {
			continue
		}
		if query != "" && !matchLower(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Match reports whether query is a case-insensitive substring of the
// entry's title, body or mood. An empty query matches everything.
func Match(e model.Entry, query string) bool {
	return matchLower(e, strings.ToLower(query))
}

func matchLower(e model.Entry, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Body), query) ||
		strings.Contains(strings.ToLower(e.Mood), query)
}
