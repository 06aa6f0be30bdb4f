package localkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
)

// Fixed storage keys, carried over from the browser build of this tool so a
// migrated data file keeps working.
const (
	rootDocumentKey = "safetyOfficerData"
	sessionKey      = "currentUser"
)

// DocumentStore persists the root document and the session document through
// a KVStore. The whole root document is written on every save.
type DocumentStore struct {
	kv portsrepo.KVStore
}

// NewDocumentStore creates a DocumentStore over the given key-value store.
func NewDocumentStore(kv portsrepo.KVStore) portsrepo.DocumentStore {
	return &DocumentStore{kv: kv}
}

// Ensure DocumentStore implements portsrepo.DocumentStore
var _ portsrepo.DocumentStore = (*DocumentStore)(nil)

// Load reads the root document. An absent key or unparseable value yields a
// fresh empty document. A parseable value is repaired per collection: valid
// collections are kept, missing or malformed ones become empty. Collections
// added in later schema versions therefore never invalidate existing data.
func (s *DocumentStore) Load(ctx context.Context) (domain.Document, error) {
	doc := domain.NewDocument()

	raw, err := s.kv.Get(ctx, rootDocumentKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to load root document: %w", err)
	}

	var collections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &collections); err != nil {
		return doc, nil
	}

	repairCollection(collections["users"], &doc.Users)
	repairCollection(collections["rollCalls"], &doc.RollCalls)
	repairCollection(collections["checklists"], &doc.Checklists)
	repairCollection(collections["hazards"], &doc.Hazards)
	repairCollection(collections["workPermits"], &doc.WorkPermits)
	repairCollection(collections["vehiclePermits"], &doc.VehiclePermits)
	return doc, nil
}

// repairCollection decodes one collection in isolation. Malformed or null
// content leaves the empty default in place without touching its siblings.
func repairCollection[T any](raw json.RawMessage, dst *[]T) {
	if len(raw) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return
	}
	*dst = items
}

// Save serializes the full document and overwrites the stored value.
func (s *DocumentStore) Save(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize root document: %w", err)
	}
	return s.kv.Set(ctx, rootDocumentKey, string(data))
}

// LoadSession returns the current session user, or nil when none is stored.
// A malformed session value is unusable; it is removed so the next load
// starts clean.
func (s *DocumentStore) LoadSession(ctx context.Context) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		if rmErr := s.kv.Remove(ctx, sessionKey); rmErr != nil {
			return nil, rmErr
		}
		return nil, nil
	}
	return &user, nil
}

// SaveSession marks the user as the current session.
func (s *DocumentStore) SaveSession(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.kv.Set(ctx, sessionKey, string(data))
}

// ClearSession removes the current session.
func (s *DocumentStore) ClearSession(ctx context.Context) error {
	return s.kv.Remove(ctx, sessionKey)
}
