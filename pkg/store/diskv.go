package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Store is diskv-backed persistence. Every collection is one whole-snapshot
// JSON value under a single key; keys are flat file names under the base
// path, suffixed with the session identity by the caller via session.Key.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Store rooted at the configured base path.
func Open(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}

	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Read returns the raw value for key. Missing keys report ok=false.
func (s *Store) Read(key string) ([]byte, bool) {
	data, err := s.d.Read(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Write replaces the value for key.
func (s *Store) Write(key string, data []byte) error {
	return s.d.Write(key, data)
}

// Erase removes key. Erasing an absent key is not an error.
func (s *Store) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// BasePath exposes the storage directory, primarily for the watcher.
func (s *Store) BasePath() string {
	return s.basePath
}

// loadSlice decodes a collection snapshot. Absent or malformed data is an
// empty collection, never an error.
func loadSlice[T any](s *Store, key string) []T {
	data, ok := s.Read(key)
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

// saveSlice overwrites a collection snapshot wholesale. There is no partial
// update; callers own the read-modify-write cycle.
func saveSlice[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Write(key, data)
}

func loadValue[T any](s *Store, key string) (T, bool) {
	var v T
	data, ok := s.Read(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func saveValue[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(key, data)
}
