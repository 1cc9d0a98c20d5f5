package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/RAJAT9988/news-publisher/backend/common"
)

var ErrNotFound = errors.New("news not found")

// NewsDB is the process-wide store handle, set up by InitStore.
var NewsDB *Store

// Store owns the persisted news collection, a single pretty-printed JSON
// array rewritten wholesale on every mutation. The file is the only source
// of truth: every operation re-reads it. A mutex serializes each
// read-modify-write cycle so concurrent mutations cannot lose updates.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// InitStore creates the data and upload directories if absent and wires the
// global store handle.
func InitStore() error {
	if dir := filepath.Dir(common.DataFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}
	if err := os.MkdirAll(common.UploadPath, 0o755); err != nil {
		return fmt.Errorf("create upload directory %s: %w", common.UploadPath, err)
	}
	NewsDB = NewStore(common.DataFile)
	return nil
}

// load reads the full collection. A missing, unreadable or malformed file
// yields an empty collection, never an error.
func (s *Store) load() []News {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []News{}
	}

	var items []News
	if err := json.Unmarshal(data, &items); err != nil {
		return []News{}
	}
	if items == nil {
		items = []News{}
	}
	return items
}

func (s *Store) save(items []News) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode news collection: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write news collection %s: %w", s.path, err)
	}
	return nil
}

// All returns the full collection, newest-created first.
func (s *Store) All() []News {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ByID returns the item with the given id, or ErrNotFound.
func (s *Store) ByID(id int) (News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.load() {
		if item.ID == id {
			return item, nil
		}
	}
	return News{}, ErrNotFound
}

// Insert assigns the next id, prepends the item and persists the collection.
// The stored item is returned with its id filled in.
func (s *Store) Insert(item News) (News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	item.ID = nextID(items)
	items = append([]News{item}, items...)
	if err := s.save(items); err != nil {
		return News{}, err
	}
	return item, nil
}

// Delete removes the item with the given id and persists the reduced
// collection. The removed item is returned so callers can clean up its
// upload file. Returns ErrNotFound if no item matches.
func (s *Store) Delete(id int) (News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := s.save(items); err != nil {
				return News{}, err
			}
			return item, nil
		}
	}
	return News{}, ErrNotFound
}
