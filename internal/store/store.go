// Package store owns the on-disk JSON document that backs every collection.
// The document is the single source of truth: each operation re-reads it from
// disk and every mutation rewrites it whole. That full-document rewrite does
// not scale past toy datasets, which is fine for a mock API and is the
// documented trade-off here.
//
// Mutations are linearized: Update holds a write lock across its
// read-modify-write cycle, so concurrent requests cannot lose updates within
// this process.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hirewire/employment-api/internal/models"
)

var (
	// ErrNotFound means no record matched the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownCollection means the document has no such top-level key.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Store is the sole access path to the datastore file. Callers never touch
// the file directly.
type Store struct {
	path string
	mu   sync.RWMutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Bootstrap creates the datastore file with empty collections if it does not
// exist yet. An existing file is left untouched; corruption is still surfaced
// by the next Read rather than papered over here.
func (s *Store) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat datastore %s: %w", s.path, err)
	}

	doc := make(map[string][]models.Record, len(models.DefaultCollections))
	for _, name := range models.DefaultCollections {
		doc[name] = []models.Record{}
	}
	return s.flush(doc)
}

// Read returns the current contents of a collection. A missing or malformed
// file is an error — defaulting to empty would mask corruption.
func (s *Store) Read(collection string) ([]models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	records, ok := doc[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return records, nil
}

// Collections reports the top-level keys currently present in the document.
func (s *Store) Collections() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	return names, nil
}

// Update applies fn to a collection under the write lock and persists the
// result. fn receives the current records (nil if the collection does not
// exist yet) and returns the full replacement sequence; returning an error
// aborts without writing. The lock spans the whole read-modify-write cycle,
// so one mutation is in flight at a time.
func (s *Store) Update(collection string, fn func(records []models.Record) ([]models.Record, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	updated, err := fn(doc[collection])
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []models.Record{}
	}
	doc[collection] = updated
	return s.flush(doc)
}

// Write replaces a collection wholesale. Thin wrapper over Update, kept for
// callers (and tests) that already hold the replacement sequence.
func (s *Store) Write(collection string, records []models.Record) error {
	return s.Update(collection, func([]models.Record) ([]models.Record, error) {
		return records, nil
	})
}

func (s *Store) load() (map[string][]models.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read datastore %s: %w", s.path, err)
	}
	var doc map[string][]models.Record
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse datastore %s: %w", s.path, err)
	}
	return doc, nil
}

// flush writes the document to a temp file in the same directory and renames
// it into place, so a crash mid-write never leaves a truncated datastore.
func (s *Store) flush(doc map[string][]models.Record) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode datastore: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp datastore: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp datastore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp datastore: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace datastore: %w", err)
	}
	return nil
}

// NextID returns the next sequence-assigned internal id for a collection:
// one past the highest numeric id currently present. Ids are never reused
// while the records that hold them exist.
func NextID(records []models.Record) float64 {
	var max float64
	for _, rec := range records {
		if id, ok := rec["id"].(float64); ok && id > max {
			max = id
		}
	}
	return max + 1
}
