package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/grovetools/tzclock/errors"

	_ "modernc.org/sqlite"
)

const createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	timezone_offset INTEGER
)`

// SQLiteBackend stores the table in a SQLite "users" table. Rows are read
// back in id order, which is insertion order.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

// NewSQLiteBackend returns a backend for the database at path. The
// connection is opened on first use.
func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

func (b *SQLiteBackend) open(ctx context.Context) (*sql.DB, error) {
	if b.db != nil {
		return b.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
		createUsersTable,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	b.db = db
	return db, nil
}

func (b *SQLiteBackend) Read(ctx context.Context) (*Table, bool, error) {
	_, statErr := os.Stat(b.path)
	exists := statErr == nil

	db, err := b.open(ctx)
	if err != nil {
		return nil, exists, errors.StoreCorrupt(b.path, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT name, timezone_offset FROM users ORDER BY id")
	if err != nil {
		return nil, exists, errors.StoreCorrupt(b.path, err)
	}
	defer rows.Close()

	entries := NewTable()
	for rows.Next() {
		var name string
		var offset sql.NullInt64
		if err := rows.Scan(&name, &offset); err != nil {
			return nil, exists, errors.StoreCorrupt(b.path, err)
		}
		entries.Set(name, offset.Int64)
	}
	if err := rows.Err(); err != nil {
		return nil, exists, errors.StoreCorrupt(b.path, err)
	}
	return entries, exists, nil
}

func (b *SQLiteBackend) Write(ctx context.Context, entries *Table) error {
	db, err := b.open(ctx)
	if err != nil {
		return errors.StoreWrite(b.path, err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return errors.StoreWrite(b.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return errors.StoreWrite(b.path, err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO users (name, timezone_offset) VALUES (?, ?)")
	if err != nil {
		return errors.StoreWrite(b.path, err)
	}
	defer stmt.Close()

	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := stmt.ExecContext(ctx, pair.Key, pair.Value); err != nil {
			return errors.StoreWrite(b.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.StoreWrite(b.path, err)
	}
	return nil
}

func (b *SQLiteBackend) Path() string { return b.path }

func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
