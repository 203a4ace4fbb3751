// Package jsondb is the mock backend's storage: a single JSON document of
// named top-level collections, rewritten in full on every change.
package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tidwall/jsonc"
)

var ErrNoCollection = errors.New("collection not found")

// Collections every fresh database starts with.
var defaultCollections = []string{"users", "addresses", "orders"}

// DB guards one JSON file. Concurrent writers within the process are
// serialized; writers in other processes race and the last rename wins.
type DB struct {
	path string

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// Open loads path, creating it with empty default collections if missing.
// The file may contain comments and trailing commas.
func Open(path string) (*DB, error) {
	db := &DB{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		for _, name := range defaultCollections {
			db.data[name] = json.RawMessage("[]")
		}
		if err := db.flush(); err != nil {
			return nil, err
		}
		return db, nil
	case err != nil:
		return nil, fmt.Errorf("jsondb: read %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(raw), &db.data); err != nil {
		return nil, fmt.Errorf("jsondb: parse %s: %w", path, err)
	}
	for _, name := range defaultCollections {
		if _, ok := db.data[name]; !ok {
			db.data[name] = json.RawMessage("[]")
		}
	}
	return db, nil
}

func (db *DB) Path() string { return db.path }

// Raw returns a top-level collection as stored.
func (db *DB) Raw(name string) (json.RawMessage, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCollection, name)
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, nil
}

// Names lists the top-level collections.
func (db *DB) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, 0, len(db.data))
	for name := range db.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Read decodes collection name into a slice of T. A missing collection reads
// as empty.
func Read[T any](db *DB, name string) ([]T, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return decode[T](db.data, name)
}

// Update decodes collection name, hands it to fn, and writes the result back
// to disk. If fn returns an error nothing is written.
func Update[T any](db *DB, name string, fn func(items []T) ([]T, error)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	items, err := decode[T](db.data, name)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("jsondb: encode %s: %w", name, err)
	}

	prev, had := db.data[name]
	db.data[name] = encoded
	if err := db.flush(); err != nil {
		if had {
			db.data[name] = prev
		} else {
			delete(db.data, name)
		}
		return err
	}
	return nil
}

func decode[T any](data map[string]json.RawMessage, name string) ([]T, error) {
	raw, ok := data[name]
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("jsondb: decode %s: %w", name, err)
	}
	return items, nil
}

// flush writes the whole document to a temp file and renames it over path.
// Callers hold db.mu.
func (db *DB) flush() error {
	encoded, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("jsondb: encode: %w", err)
	}
	dir := filepath.Dir(db.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsondb: ensure dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".jsondb-*")
	if err != nil {
		return fmt.Errorf("jsondb: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		return fmt.Errorf("jsondb: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsondb: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), db.path); err != nil {
		return fmt.Errorf("jsondb: replace %s: %w", db.path, err)
	}
	return nil
}
