package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chantraine-avenir/cavserver/internal/services"
)

// BlobStore persists questionnaire entries in a single SQLite table. SQLite
// provides the read-after-write consistency and concurrent access the
// submission and reporting handlers assume of the store.
type BlobStore struct {
	db *sql.DB
}

func NewBlobStore(db *sql.DB) (*BlobStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &BlobStore{db: db}, nil
}

// NewStore opens a BlobStore behind the service-level interface.
func NewStore(db *sql.DB) (services.BlobStore, error) {
	return NewBlobStore(db)
}

// Get returns the stored value, or nil without error when the key is absent.
func (s *BlobStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM responses WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *BlobStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO responses (key, value, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) ListKeys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM responses ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

var _ services.BlobStore = (*BlobStore)(nil)
