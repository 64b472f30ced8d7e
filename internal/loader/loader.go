// Package loader reads a journal collection from a JSON file, a URL or a
// SQLite snapshot. Each load is a single best-effort attempt.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/store"
)

// ErrLoadFailed is the one failure class for loading: network, I/O,
// status and parse faults all wrap it.
var ErrLoadFailed = errors.New("entries failed to load")

// Source produces an entry collection.
type Source interface {
	Load(ctx context.Context) ([]model.Entry, error)
	String() string
}

func failed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrLoadFailed, fmt.Sprintf(format, args...))
}

// Decode parses a JSON array of entries. A JSON null yields an empty
// collection.
func Decode(r io.Reader) ([]model.Entry, error) {
	var entries []model.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, failed("parse json: %v", err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Open returns the source for a location: http(s) URLs are fetched,
// sqlite:// locations and .db files are read as snapshots, anything else
// is a JSON file.
func Open(location string) Source {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location)
	case strings.HasPrefix(location, "sqlite://"):
		return &StoreSource{Path: strings.TrimPrefix(location, "sqlite://")}
	case strings.HasSuffix(location, ".db"):
		return &StoreSource{Path: location}
	default:
		return &FileSource{Path: location}
	}
}

// --- JSON file ---

// FileSource reads a JSON document from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]model.Entry, error) {
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, failed("expand %s: %v", s.Path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, failed("%v", err)
	}
	defer f.Close()
	return Decode(f)
}

func (s *FileSource) String() string { return s.Path }

// --- HTTP ---

// HTTPSource fetches a JSON document with a GET request.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates an HTTP source. The client sets no timeout; the
// caller's context is the only bound on the request.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, client: &http.Client{}}
}

func (s *HTTPSource) Load(ctx context.Context) ([]model.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.URL, nil)
	if err != nil {
		return nil, failed("%v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, failed("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, failed("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return Decode(resp.Body)
}

func (s *HTTPSource) String() string { return s.URL }

// --- SQLite snapshot ---

// StoreSource reads a snapshot written by store.Import. A missing
// database is a load failure, not an empty collection.
type StoreSource struct {
	Path string
}

func (s *StoreSource) Load(ctx context.Context) ([]model.Entry, error) {
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, failed("expand %s: %v", s.Path, err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, failed("%v", err)
	}

	st, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, failed("%v", err)
	}
	defer st.Close()

	entries, err := st.Entries(ctx)
	if err != nil {
		return nil, failed("read snapshot: %v", err)
	}
	return entries, nil
}

func (s *StoreSource) String() string { return "sqlite://" + s.Path }
