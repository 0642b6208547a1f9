package blobstore

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// store persists documents in a single SQLite table keyed by
// (collection, key).
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new BlobStore backed by the given database.
func New(db *sql.DB) BlobStore {
	return &store{
		db: db,
	}
}

func (s *store) Get(collection, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM documents WHERE collection = ? AND key = ?", collection, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		log.Error("Failed to read document", "error", err, "collection", collection, "key", key)
		return nil, fmt.Errorf("failed to read document %s/%s: %w", collection, key, err)
	}
	return []byte(value), nil
}

func (s *store) Put(collection, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO documents (collection, key, value) VALUES (?, ?, ?)
		ON CONFLICT(collection, key) DO UPDATE SET value = excluded.value;
	`, collection, key, string(value))
	if err != nil {
		log.Error("Failed to write document", "error", err, "collection", collection, "key", key)
		return fmt.Errorf("failed to write document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *store) Delete(collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM documents WHERE collection = ? AND key = ?", collection, key)
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *store) Keys(collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key FROM documents WHERE collection = ? ORDER BY key", collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys in %s: %w", collection, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.Error("Failed to scan key row", "error", err, "collection", collection)
			continue
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM documents")
	if err != nil {
		log.Error("Failed to clear document store", "error", err)
		return err
	}
	return nil
}
