package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// emailPattern is the minimal address shape the registration form accepts:
// something@something.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type userService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewUserService creates the user service. The mutex is shared across all
// services so load-modify-save cycles never interleave.
func NewUserService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.UserSvcFacade {
	return &userService{store: store, mu: mu}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for registration: %w", err)
	}

	verr := apperrors.NewValidationError()
	if firstName == "" {
		verr.Add("firstName", "First name is required")
	}
	if lastName == "" {
		verr.Add("lastName", "Last name is required")
	}
	switch {
	case email == "":
		verr.Add("email", "Email is required")
	case !emailPattern.MatchString(email):
		verr.Add("email", "Please enter a valid email")
	case emailTaken(doc.Users, email):
		verr.Add("email", "Email is already registered")
	}
	if len(req.Password) < 6 {
		verr.Add("password", "Password must be at least 6 characters")
	}
	if !req.Position.Valid() {
		verr.Add("position", "Please select a position")
	}

	username := deriveUsername(firstName, lastName)
	if firstName != "" && lastName != "" && usernameTaken(doc.Users, username) {
		verr.Add("username", "Username is already taken")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	user := domain.User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Password:       req.Password, // stored as entered; Authenticate compares verbatim
		Position:       req.Position,
		Username:       username,
		EmployeeNumber: deriveEmployeeNumber(doc.Users, req.Position),
		RegisteredAt:   time.Now().UTC(),
	}

	doc.Users = append(doc.Users, user)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist new user: %w", err)
	}

	// Registration logs the new user in.
	if err := s.store.SaveSession(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for authentication: %w", err)
	}

	for i := range doc.Users {
		user := doc.Users[i]
		if (user.Email == identifier || user.Username == identifier) && user.Password == password {
			if err := s.store.SaveSession(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to persist session: %w", err)
			}
			return &user, nil
		}
	}
	return nil, apperrors.ErrUnauthorized
}

func (s *userService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.store.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) Logout(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// deriveUsername joins the lower-cased names with a dot: "Jane Doe" becomes
// "jane.doe".
func deriveUsername(firstName, lastName string) string {
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName)
}

// deriveEmployeeNumber ranks the new user after the existing holders of the
// same position: the first miner is MIN001, the next MIN002.
func deriveEmployeeNumber(users []domain.User, position domain.Position) string {
	rank := 1
	for _, u := range users {
		if u.Position == position {
			rank++
		}
	}
	return fmt.Sprintf("%s%03d", position.EmployeePrefix(), rank)
}

func emailTaken(users []domain.User, email string) bool {
	for _, u := range users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func usernameTaken(users []domain.User, username string) bool {
	for _, u := range users {
		if u.Username == username {
			return true
		}
	}
	return false
}
