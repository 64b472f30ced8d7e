// Package store provides a SQLite snapshot of a journal collection.
package store

import (
	"context"
	"time"

	"github.com/rcliao/journal-archive/internal/model"
)

// Batch records one import into the snapshot.
type Batch struct {
	ID         string    `json:"id"`
	Source     string    `json:"source,omitempty"`
	Count      int       `json:"count"`
	ImportedAt time.Time `json:"imported_at"`
}

// ImportParams holds parameters for replacing the snapshot.
type ImportParams struct {
	Source  string
	Entries []model.Entry
}

// Store defines the snapshot interface.
type Store interface {
	// Import replaces the snapshot with p.Entries, keeping their order.
	Import(ctx context.Context, p ImportParams) (*Batch, error)

	// Entries returns the snapshot in import order.
	Entries(ctx context.Context) ([]model.Entry, error)

	// LastImport returns the newest batch, or nil if nothing was imported.
	LastImport(ctx context.Context) (*Batch, error)

	// Stats summarises the snapshot.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the store.
	Close() error
}
