package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
)

// --- Mock DocumentStore ---

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Load(ctx context.Context) (domain.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentStore) Save(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentStore) LoadSession(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockDocumentStore) SaveSession(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockDocumentStore) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portsrepo.DocumentStore = (*MockDocumentStore)(nil)

// --- In-memory DocumentStore ---

// memDocumentStore holds the document and session in memory so multi-step
// flows can be exercised without mock choreography.
type memDocumentStore struct {
	doc     domain.Document
	session *domain.User
}

func newMemDocumentStore() *memDocumentStore {
	return &memDocumentStore{doc: domain.NewDocument()}
}

func (m *memDocumentStore) Load(ctx context.Context) (domain.Document, error) {
	return m.doc, nil
}

func (m *memDocumentStore) Save(ctx context.Context, doc domain.Document) error {
	m.doc = doc
	return nil
}

func (m *memDocumentStore) LoadSession(ctx context.Context) (*domain.User, error) {
	return m.session, nil
}

func (m *memDocumentStore) SaveSession(ctx context.Context, user domain.User) error {
	m.session = &user
	return nil
}

func (m *memDocumentStore) ClearSession(ctx context.Context) error {
	m.session = nil
	return nil
}

var _ portsrepo.DocumentStore = (*memDocumentStore)(nil)

// signIn stores a session user directly, standing in for a completed login.
func (m *memDocumentStore) signIn(username string) {
	m.session = &domain.User{Username: username}
}
