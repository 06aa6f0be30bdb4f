package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/core/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	store   *memDocumentStore
	service portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.store = newMemDocumentStore()
	suite.service = services.NewUserService(suite.store, &sync.Mutex{})
}

func validRegistration() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
		Position:  domain.PositionMiner,
	}
}

// --- Register Tests ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	user, err := suite.service.Register(ctx, validRegistration())

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("jane.doe", user.Username)
	suite.Equal("MIN001", user.EmployeeNumber)
	suite.Equal("secret1", user.Password)
	suite.False(user.RegisteredAt.IsZero())

	// Registration appends the user and signs them in
	suite.Len(suite.store.doc.Users, 1)
	suite.Require().NotNil(suite.store.session)
	suite.Equal("jane.doe", suite.store.session.Username)
}

func (suite *UserServiceTestSuite) TestRegister_EmployeeNumbersCountPerPosition() {
	ctx := context.Background()

	first, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)
	suite.Equal("MIN001", first.EmployeeNumber)

	second := validRegistration()
	second.FirstName = "John"
	second.Email = "john@example.com"
	secondUser, err := suite.service.Register(ctx, second)
	suite.Require().NoError(err)
	suite.Equal("MIN002", secondUser.EmployeeNumber)

	third := validRegistration()
	third.FirstName = "Sam"
	third.Email = "sam@example.com"
	third.Position = domain.PositionSupervisor
	thirdUser, err := suite.service.Register(ctx, third)
	suite.Require().NoError(err)
	suite.Equal("SUP001", thirdUser.EmployeeNumber)
}

func (suite *UserServiceTestSuite) TestRegister_OtherPositionGetsFallbackPrefix() {
	req := validRegistration()
	req.Position = domain.PositionOther

	user, err := suite.service.Register(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("EMP001", user.EmployeeNumber)
}

func (suite *UserServiceTestSuite) TestRegister_CollectsAllFieldErrors() {
	req := dto.RegisterUserRequest{
		FirstName: "  ",
		LastName:  "",
		Email:     "not-an-email",
		Password:  "abc",
		Position:  domain.Position("astronaut"),
	}

	user, err := suite.service.Register(context.Background(), req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("First name is required", verr.Fields["firstName"])
	suite.Equal("Last name is required", verr.Fields["lastName"])
	suite.Equal("Please enter a valid email", verr.Fields["email"])
	suite.Equal("Password must be at least 6 characters", verr.Fields["password"])
	suite.Equal("Please select a position", verr.Fields["position"])

	// Nothing was persisted
	suite.Empty(suite.store.doc.Users)
	suite.Nil(suite.store.session)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmailRejected() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)

	dup := validRegistration()
	dup.FirstName = "Janet"
	user, err := suite.service.Register(ctx, dup)

	suite.Require().Error(err)
	suite.Nil(user)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("Email is already registered", verr.Fields["email"])
	suite.Len(suite.store.doc.Users, 1)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsernameRejected() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)

	// Same name, different email, derives the same username
	dup := validRegistration()
	dup.Email = "jane.other@example.com"
	user, err := suite.service.Register(ctx, dup)

	suite.Require().Error(err)
	suite.Nil(user)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("Username is already taken", verr.Fields["username"])
}

func (suite *UserServiceTestSuite) TestRegister_TrimsNamesBeforeDeriving() {
	req := validRegistration()
	req.FirstName = "  Jane "
	req.LastName = " Doe  "

	user, err := suite.service.Register(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("Jane", user.FirstName)
	suite.Equal("jane.doe", user.Username)
}

// --- Authenticate Tests ---

func (suite *UserServiceTestSuite) TestAuthenticate_ByEmail() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Logout(ctx))

	user, err := suite.service.Authenticate(ctx, "jane@example.com", "secret1")

	suite.Require().NoError(err)
	suite.Equal("jane.doe", user.Username)
	suite.Require().NotNil(suite.store.session)
	suite.Equal("jane.doe", suite.store.session.Username)
}

func (suite *UserServiceTestSuite) TestAuthenticate_ByUsername() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)

	user, err := suite.service.Authenticate(ctx, "jane.doe", "secret1")

	suite.Require().NoError(err)
	suite.Equal("jane@example.com", user.Email)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Logout(ctx))

	user, err := suite.service.Authenticate(ctx, "jane.doe", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(suite.store.session)
}

func (suite *UserServiceTestSuite) TestAuthenticate_PasswordIsCaseSensitive() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)

	user, err := suite.service.Authenticate(ctx, "jane.doe", "SECRET1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownIdentifier() {
	user, err := suite.service.Authenticate(context.Background(), "nobody", "secret1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Session Tests ---

func (suite *UserServiceTestSuite) TestCurrentUser_NoSession() {
	user, err := suite.service.CurrentUser(context.Background())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestLogout_ClearsSession() {
	ctx := context.Background()
	_, err := suite.service.Register(ctx, validRegistration())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Logout(ctx))

	suite.Nil(suite.store.session)
	_, err = suite.service.CurrentUser(ctx)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
