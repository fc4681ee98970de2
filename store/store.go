// Package store keeps the name to UTC offset table and mirrors it to disk.
package store

import (
	"context"

	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var log = logging.NewLogger("store")

// Entry is one stored name and its whole-hour offset from UTC.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Offset int64  `json:"offset" yaml:"offset"`
}

// Table is the insertion-ordered name to offset mapping.
type Table = orderedmap.OrderedMap[string, int64]

// NewTable returns an empty table.
func NewTable() *Table {
	return orderedmap.New[string, int64]()
}

// Store is the in-memory table plus the backend it is flushed to. It is not
// safe for concurrent use; the controller owns it.
type Store struct {
	backend Backend
	entries *Table
}

// Load opens the store file at path, picking the backend from its extension.
func Load(path string) (*Store, error) {
	return LoadContext(context.Background(), path)
}

// LoadContext is Load with a context for the backend I/O.
func LoadContext(ctx context.Context, path string) (*Store, error) {
	backend, err := NewBackend(path)
	if err != nil {
		return nil, err
	}
	s, err := Open(ctx, backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return s, nil
}

// Open reads the backend. A store that does not exist yet is created empty
// and written immediately.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	entries, exists, err := backend.Read(ctx)
	if err != nil {
		return nil, err
	}

	s := &Store{backend: backend, entries: entries}
	if !exists {
		log.WithField("path", backend.Path()).Info("Creating empty store")
		if err := s.FlushContext(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	log.WithField("path", backend.Path()).WithField("entries", entries.Len()).Debug("Loaded store")
	return s, nil
}

// Add inserts name or overwrites its offset. Existing names keep their position.
func (s *Store) Add(name string, offset int64) {
	s.entries.Set(name, offset)
}

// Contains reports whether name is stored.
func (s *Store) Contains(name string) bool {
	_, ok := s.entries.Get(name)
	return ok
}

// Get returns the offset stored for name.
func (s *Store) Get(name string) (int64, bool) {
	return s.entries.Get(name)
}

// Remove deletes name. Removing a missing name is a no-op.
func (s *Store) Remove(name string) {
	s.entries.Delete(name)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return s.entries.Len()
}

// Snapshot returns a copy of the entries in insertion order.
func (s *Store) Snapshot() []Entry {
	out := make([]Entry, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Name: pair.Key, Offset: pair.Value})
	}
	return out
}

// Path reports where the store is persisted.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Flush rewrites the whole table to the backend.
func (s *Store) Flush() error {
	return s.FlushContext(context.Background())
}

// FlushContext is Flush with a context for the backend I/O.
func (s *Store) FlushContext(ctx context.Context) error {
	if err := s.backend.Write(ctx, s.entries); err != nil {
		if errors.Is(err, errors.ErrCodeStoreWrite) {
			return err
		}
		return errors.StoreWrite(s.backend.Path(), err)
	}
	log.WithField("path", s.backend.Path()).WithField("entries", s.entries.Len()).Debug("Flushed store")
	return nil
}

// Close releases the backend. It does not flush.
func (s *Store) Close() error {
	return s.backend.Close()
}
