package localkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
)

// SQLiteKVStore persists string keys and values in a single sqlite table,
// mirroring the synchronous key-value contract of the browser storage the
// register originally lived in.
type SQLiteKVStore struct {
	db *sqlx.DB
}

// NewSQLiteKVStore creates a KVStore backed by the given sqlite database.
// The kv_store table is created by the migrations run at startup.
func NewSQLiteKVStore(db *sqlx.DB) portsrepo.KVStore {
	return &SQLiteKVStore{db: db}
}

// Ensure SQLiteKVStore implements portsrepo.KVStore
var _ portsrepo.KVStore = (*SQLiteKVStore)(nil)

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
