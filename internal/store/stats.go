package store

import (
	"context"
	"os"

	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/mood"
)

// Stats holds collection statistics.
type Stats struct {
	DBPath      string      `json:"db_path,omitempty"`
	DBSizeBytes int64       `json:"db_size_bytes,omitempty"`
	Total       int         `json:"total"`
	Archived    int         `json:"archived"`
	Moods       []MoodCount `json:"moods"`
	LastImport  *Batch      `json:"last_import,omitempty"`
}

// MoodCount holds per-category counts.
type MoodCount struct {
	Category mood.Category `json:"category"`
	Count    int           `json:"count"`
}

func newMoodCounts() []MoodCount {
	var counts []MoodCount
	for _, c := range append(mood.Categories(), mood.Neutral) {
		counts = append(counts, MoodCount{Category: c})
	}
	return counts
}

func addMood(counts []MoodCount, c mood.Category, n int) {
	for i := range counts {
		if counts[i].Category == c {
			counts[i].Count += n
			return
		}
	}
}

// Summarize computes Stats for an in-memory collection.
func Summarize(entries []model.Entry) *Stats {
	st := &Stats{Total: len(entries), Moods: newMoodCounts()}
	for _, e := range entries {
		if e.Archived {
			st.Archived++
		}
		addMood(st.Moods, mood.Classify(e.Mood), 1)
	}
	return st
}

// Stats returns snapshot statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{Moods: newMoodCounts()}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.Total); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE archived = 1`).Scan(&st.Archived); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT mood, COUNT(*) FROM entries GROUP BY mood`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var m string
		var n int
		if err := rows.Scan(&m, &n); err != nil {
			return st, err
		}
		addMood(st.Moods, mood.Classify(m), n)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	st.LastImport, err = s.LastImport(ctx)
	return st, err
}

// FileStats fills in the database file location and size.
func (st *Stats) FileStats(dbPath string) {
	st.DBPath = dbPath
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}
}
