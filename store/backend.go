package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/tzclock/errors"
)

// Backend persists a Table. Read reports exists=false, with an empty table,
// when nothing has been persisted yet. Write replaces everything stored.
type Backend interface {
	Read(ctx context.Context) (entries *Table, exists bool, err error)
	Write(ctx context.Context, entries *Table) error
	Path() string
	Close() error
}

// NewBackend selects a backend from the file extension: .yaml and .yml use
// YAML, .db .sqlite and .sqlite3 use SQLite, anything else JSON.
func NewBackend(path string) (Backend, error) {
	if path == "" {
		return nil, errors.StoreWrite(path, os.ErrInvalid).WithDetail("reason", "empty store path")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLBackend(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteBackend(path), nil
	default:
		return NewJSONBackend(path), nil
	}
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func readFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.StoreCorrupt(path, err)
	}
	return data, true, nil
}
