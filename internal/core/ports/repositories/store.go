package repositories

import (
	"context"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
)

// KVStore is the platform key-value storage the document store persists into.
// Values are UTF-8 text. Get returns apperrors.ErrNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// DocumentStore owns the two persisted documents: the root document under one
// fixed key and the current session under another. The full document is the
// unit of persistence; there are no partial writes.
type DocumentStore interface {
	// Load reads the root document, returning a fresh empty document when the
	// key is absent and repairing per collection when content is malformed.
	// It never fails on malformed content, only on storage I/O.
	Load(ctx context.Context) (domain.Document, error)

	// Save serializes the full document and overwrites the stored value.
	Save(ctx context.Context, doc domain.Document) error

	// LoadSession returns the current session user, or nil when no session is
	// stored. Malformed session content is cleared as a side effect and
	// reported as absent.
	LoadSession(ctx context.Context) (*domain.User, error)

	// SaveSession marks the user as the current session.
	SaveSession(ctx context.Context, user domain.User) error

	// ClearSession removes the current session.
	ClearSession(ctx context.Context) error
}
