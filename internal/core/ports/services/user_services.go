package services

import (
	"context"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// UserSvcFacade handles registration, credential checks and the session.
type UserSvcFacade interface {
	// Register validates the candidate, derives username and employee number,
	// appends the user and marks them as the current session.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate matches a user whose email or username equals identifier
	// and whose stored password equals the supplied password verbatim. On
	// success the user becomes the current session.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)

	// CurrentUser returns the session user, or ErrUnauthorized when no
	// session is stored.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// Logout clears the current session.
	Logout(ctx context.Context) error
}
