package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/grovetools/tzclock/errors"
)

// JSONBackend stores the table as a single JSON object, {"name": offset}.
type JSONBackend struct {
	path string
}

// NewJSONBackend returns a backend for the JSON file at path.
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

func (b *JSONBackend) Read(ctx context.Context) (*Table, bool, error) {
	data, exists, err := readFile(b.path)
	if err != nil || !exists {
		return NewTable(), false, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, true, errors.StoreCorrupt(b.path, fmt.Errorf("expected a JSON object"))
	}

	entries := NewTable()
	if err := json.Unmarshal(trimmed, entries); err != nil {
		return nil, true, errors.StoreCorrupt(b.path, err)
	}
	return entries, true, nil
}

func (b *JSONBackend) Write(ctx context.Context, entries *Table) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.StoreWrite(b.path, err)
	}
	if err := writeFileAtomic(b.path, data); err != nil {
		return errors.StoreWrite(b.path, err)
	}
	return nil
}

func (b *JSONBackend) Path() string { return b.path }

func (b *JSONBackend) Close() error { return nil }
