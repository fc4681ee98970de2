package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/grovetools/tzclock/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var backendFiles = []string{"storage.json", "storage.yaml", "storage.db"}

func TestLoadCreatesMissingStore(t *testing.T) {
	for _, name := range backendFiles {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s, err := Load(path)
			require.NoError(t, err)
			defer s.Close()

			assert.Equal(t, 0, s.Len())
			assert.Equal(t, path, s.Path())
			_, err = os.Stat(path)
			require.NoError(t, err, "store file should be written immediately")
		})
	}
}

func TestEmptyJSONStoreIsAnObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	s, err := Load(path)
	require.NoError(t, err)
	defer s.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestRoundTrip(t *testing.T) {
	for _, name := range backendFiles {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			s, err := Load(path)
			require.NoError(t, err)
			s.Add("alice", 2)
			s.Add("bob", -5)
			s.Add("carol", 0)
			s.Add("dave", 99)
			require.NoError(t, s.Flush())
			require.NoError(t, s.Close())

			reloaded, err := Load(path)
			require.NoError(t, err)
			defer reloaded.Close()

			assert.Equal(t, []Entry{
				{Name: "alice", Offset: 2},
				{Name: "bob", Offset: -5},
				{Name: "carol", Offset: 0},
				{Name: "dave", Offset: 99},
			}, reloaded.Snapshot())
		})
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	s.Add("alice", 3)
	first := s.Snapshot()
	s.Add("alice", 3)
	assert.Equal(t, first, s.Snapshot())
}

func TestAddOverwritesInPlace(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	s.Add("alice", 1)
	s.Add("bob", 2)
	s.Add("alice", -7)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Entry{{Name: "alice", Offset: -7}, {Name: "bob", Offset: 2}}, s.Snapshot())

	offset, ok := s.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, int64(-7), offset)
}

func TestContainsAndRemove(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	s.Add("alice", 1)
	assert.True(t, s.Contains("alice"))
	assert.False(t, s.Contains("bob"))

	s.Remove("bob")
	assert.Equal(t, 1, s.Len())

	s.Remove("alice")
	assert.False(t, s.Contains("alice"))
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	s.Add("alice", 1)
	snap := s.Snapshot()
	snap[0].Offset = 42
	s.Add("bob", 2)

	assert.Len(t, snap, 1)
	offset, _ := s.Get("alice")
	assert.Equal(t, int64(1), offset)
}

func TestMemoryDivergesUntilFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s, err := Load(path)
	require.NoError(t, err)

	s.Add("alice", 1)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, s.Flush())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alice":1}`, string(data))
}

func TestCorruptStore(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json garbage", "storage.json", "not json"},
		{"json array", "storage.json", "[1, 2]"},
		{"json empty file", "storage.json", ""},
		{"json string offset", "storage.json", `{"alice": "two"}`},
		{"yaml sequence", "storage.yaml", "- alice\n- bob\n"},
		{"yaml bad offset", "storage.yml", "alice: two\n"},
		{"sqlite garbage", "storage.db", strings.Repeat("this is not a database file\n", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeStoreCorrupt, errors.GetCode(err))
		})
	}
}

func TestYAMLKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zed: 1\nalpha: -3\nmid: 0\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"zed", 1}, {"alpha", -3}, {"mid", 0}}, s.Snapshot())

	require.NoError(t, s.Flush())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "zed: 1\nalpha: -3\nmid: 0\n", string(data))
}

func TestFlushFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "storage.json")
	s, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o500))
	defer os.Chmod(dir, 0o755)

	s.Add("alice", 1)
	err = s.Flush()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStoreWrite, errors.GetCode(err))
}

type failingBackend struct {
	JSONBackend
}

func (failingBackend) Write(context.Context, *Table) error {
	return os.ErrPermission
}

func TestFlushWrapsBackendErrors(t *testing.T) {
	backend := &failingBackend{JSONBackend{path: filepath.Join(t.TempDir(), "storage.json")}}

	_, err := Open(context.Background(), backend)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeStoreWrite))
}

func TestNewBackend(t *testing.T) {
	tests := []struct {
		path string
		want interface{}
	}{
		{"a.json", &JSONBackend{}},
		{"a.YAML", &YAMLBackend{}},
		{"a.yml", &YAMLBackend{}},
		{"a.db", &SQLiteBackend{}},
		{"a.sqlite", &SQLiteBackend{}},
		{"a", &JSONBackend{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			b, err := NewBackend(tt.path)
			require.NoError(t, err)
			assert.IsType(t, tt.want, b)
			assert.Equal(t, tt.path, b.Path())
		})
	}

	_, err := NewBackend("")
	assert.Error(t, err)
}
