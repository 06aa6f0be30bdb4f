package localkv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mkhumalo/site_safety_app/internal/adapters/storage/localkv"
	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
)

// fakeKVStore keeps values in a map so document round trips can be tested
// without a database.
type fakeKVStore struct {
	data map[string]string
}

func newFakeKVStore() *fakeKVStore {
	return &fakeKVStore{data: make(map[string]string)}
}

func (f *fakeKVStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (f *fakeKVStore) Set(ctx context.Context, key string, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKVStore) Remove(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

var _ portsrepo.KVStore = (*fakeKVStore)(nil)

type DocumentStoreTestSuite struct {
	suite.Suite
	kv    *fakeKVStore
	store portsrepo.DocumentStore
}

func (suite *DocumentStoreTestSuite) SetupTest() {
	suite.kv = newFakeKVStore()
	suite.store = localkv.NewDocumentStore(suite.kv)
}

func (suite *DocumentStoreTestSuite) TestLoad_MissingKeyReturnsEmptyDocument() {
	doc, err := suite.store.Load(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(doc.Users)
	suite.Empty(doc.Users)
	suite.NotNil(doc.RollCalls)
	suite.Empty(doc.RollCalls)
	suite.NotNil(doc.Hazards)
	suite.Empty(doc.Hazards)
}

func (suite *DocumentStoreTestSuite) TestLoad_UnparseableValueReturnsEmptyDocument() {
	suite.kv.data["safetyOfficerData"] = "{not json at all"

	doc, err := suite.store.Load(context.Background())

	suite.Require().NoError(err)
	suite.Empty(doc.Users)
	suite.Empty(doc.RollCalls)
}

func (suite *DocumentStoreTestSuite) TestLoad_RepairsCollectionsIndependently() {
	tests := []struct {
		name      string
		stored    string
		wantUsers int
		wantCalls int
	}{
		{
			name:      "users valid, rollCalls malformed",
			stored:    `{"users":[{"firstName":"Jane"}],"rollCalls":"oops"}`,
			wantUsers: 1,
			wantCalls: 0,
		},
		{
			name:      "users null, rollCalls valid",
			stored:    `{"users":null,"rollCalls":[{"workerId":"W-1"}]}`,
			wantUsers: 0,
			wantCalls: 1,
		},
		{
			name:      "collections missing entirely",
			stored:    `{"users":[{"firstName":"Jane"}]}`,
			wantUsers: 1,
			wantCalls: 0,
		},
		{
			name:      "rollCalls is an object, not an array",
			stored:    `{"rollCalls":{"workerId":"W-1"}}`,
			wantUsers: 0,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.kv.data["safetyOfficerData"] = tt.stored

			doc, err := suite.store.Load(context.Background())

			suite.Require().NoError(err)
			suite.Len(doc.Users, tt.wantUsers)
			suite.Len(doc.RollCalls, tt.wantCalls)
		})
	}
}

func (suite *DocumentStoreTestSuite) TestSaveThenLoadRoundTrip() {
	ctx := context.Background()
	doc := domain.NewDocument()
	doc.Users = append(doc.Users, domain.User{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Password:       "secret1",
		Position:       domain.PositionMiner,
		Username:       "jane.doe",
		EmployeeNumber: "MIN001",
		RegisteredAt:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	doc.Hazards = append(doc.Hazards, domain.Hazard{
		Type:        domain.HazardRockfall,
		Location:    "Tunnel B",
		Description: "Loose rock above the east drive",
		Severity:    domain.SeverityHigh,
		Status:      domain.HazardOpen,
		Timestamp:   time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		ReportedBy:  "jane.doe",
	})

	suite.Require().NoError(suite.store.Save(ctx, doc))

	loaded, err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.Equal(doc, loaded)
}

func (suite *DocumentStoreTestSuite) TestLoadSession_AbsentReturnsNil() {
	user, err := suite.store.LoadSession(context.Background())

	suite.Require().NoError(err)
	suite.Nil(user)
}

func (suite *DocumentStoreTestSuite) TestLoadSession_MalformedValueIsCleared() {
	suite.kv.data["currentUser"] = "{broken"

	user, err := suite.store.LoadSession(context.Background())

	suite.Require().NoError(err)
	suite.Nil(user)
	_, stillThere := suite.kv.data["currentUser"]
	suite.False(stillThere)
}

func (suite *DocumentStoreTestSuite) TestSessionRoundTrip() {
	ctx := context.Background()
	user := domain.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane.doe",
		Position:  domain.PositionMiner,
	}

	suite.Require().NoError(suite.store.SaveSession(ctx, user))

	loaded, err := suite.store.LoadSession(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded)
	suite.Equal("jane.doe", loaded.Username)

	suite.Require().NoError(suite.store.ClearSession(ctx))

	loaded, err = suite.store.LoadSession(ctx)
	suite.Require().NoError(err)
	suite.Nil(loaded)
}

func TestDocumentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreTestSuite))
}
