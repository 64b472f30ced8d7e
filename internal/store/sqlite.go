package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/journal-archive/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// timeLayout is fixed width so imported_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS imports (
		id          TEXT PRIMARY KEY,
		source      TEXT,
		count       INTEGER NOT NULL,
		imported_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_imports_at ON imports(imported_at DESC);

	CREATE TABLE IF NOT EXISTS entries (
		id        INTEGER PRIMARY KEY,
		seq       INTEGER NOT NULL,
		title     TEXT NOT NULL,
		date      TEXT NOT NULL,
		body      TEXT NOT NULL,
		mood      TEXT NOT NULL,
		archived  INTEGER NOT NULL DEFAULT 0,
		import_id TEXT NOT NULL REFERENCES imports(id)
	);
	CREATE INDEX IF NOT EXISTS idx_entries_seq ON entries(seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Import replaces the snapshot. Duplicate ids fail the whole import and
// leave the previous snapshot in place.
func (s *SQLiteStore) Import(ctx context.Context, p ImportParams) (*Batch, error) {
	now := time.Now().UTC()
	batch := &Batch{
		ID:         s.newID(),
		Source:     p.Source,
		Count:      len(p.Entries),
		ImportedAt: now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return nil, fmt.Errorf("clear entries: %w", err)
	}

	var source *string
	if p.Source != "" {
		source = &p.Source
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO imports (id, source, count, imported_at) VALUES (?, ?, ?, ?)`,
		batch.ID, source, batch.Count, now.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, seq, title, date, body, mood, archived, import_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, e := range p.Entries {
		_, err = stmt.ExecContext(ctx, e.ID, i, e.Title, e.Date.Raw, e.Body, e.Mood, e.Archived, batch.ID)
		if err != nil {
			return nil, fmt.Errorf("insert entry %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *SQLiteStore) Entries(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, date, body, mood, archived FROM entries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) LastImport(ctx context.Context) (*Batch, error) {
	var b Batch
	var source sql.NullString
	var importedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, count, imported_at FROM imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`).
		Scan(&b.ID, &source, &b.Count, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if source.Valid {
		b.Source = source.String
	}
	b.ImportedAt, _ = time.Parse(timeLayout, importedAt)
	return &b, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var date string

	err := row.Scan(&e.ID, &e.Title, &date, &e.Body, &e.Mood, &e.Archived)
	if err != nil {
		return e, err
	}
	e.Date = model.ParseDate(date)
	return e, nil
}
