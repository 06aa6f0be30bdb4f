package services

import (
	"context"
	"fmt"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
)

// sessionUsername resolves the acting user from the persisted session. Every
// event record stamps this username as its submitter.
func sessionUsername(ctx context.Context, store portsrepo.DocumentStore) (string, error) {
	user, err := store.LoadSession(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	if user == nil {
		return "", apperrors.ErrUnauthorized
	}
	return user.Username, nil
}
