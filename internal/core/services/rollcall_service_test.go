package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/core/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

type RollCallServiceTestSuite struct {
	suite.Suite
	store   *memDocumentStore
	service portssvc.RollCallSvcFacade
}

func (suite *RollCallServiceTestSuite) SetupTest() {
	suite.store = newMemDocumentStore()
	suite.store.signIn("jane.doe")
	suite.service = services.NewRollCallService(suite.store, &sync.Mutex{})
}

func (suite *RollCallServiceTestSuite) TestRecord_Success() {
	req := dto.RecordRollCallRequest{
		WorkerID:   "W-042",
		Supervisor: "T. Banda",
		Shift:      "night",
		Location:   "Shaft 2",
	}

	rollCall, err := suite.service.Record(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("W-042", rollCall.WorkerID)
	suite.Equal("night", rollCall.Shift)
	suite.Equal("jane.doe", rollCall.SubmittedBy)
	suite.False(rollCall.Timestamp.IsZero())
	suite.Len(suite.store.doc.RollCalls, 1)
}

func (suite *RollCallServiceTestSuite) TestRecord_ShiftIsOptional() {
	req := dto.RecordRollCallRequest{
		WorkerID:   "W-042",
		Supervisor: "T. Banda",
		Location:   "Shaft 2",
	}

	rollCall, err := suite.service.Record(context.Background(), req)

	suite.Require().NoError(err)
	suite.Empty(rollCall.Shift)
}

func (suite *RollCallServiceTestSuite) TestRecord_MissingFields() {
	rollCall, err := suite.service.Record(context.Background(), dto.RecordRollCallRequest{Shift: "day"})

	suite.Require().Error(err)
	suite.Nil(rollCall)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("Worker ID is required", verr.Fields["workerId"])
	suite.Equal("Supervisor is required", verr.Fields["supervisor"])
	suite.Equal("Location is required", verr.Fields["location"])
	suite.Empty(suite.store.doc.RollCalls)
}

func (suite *RollCallServiceTestSuite) TestRecord_RequiresSession() {
	suite.store.session = nil

	rollCall, err := suite.service.Record(context.Background(), dto.RecordRollCallRequest{
		WorkerID:   "W-042",
		Supervisor: "T. Banda",
		Location:   "Shaft 2",
	})

	suite.Require().Error(err)
	suite.Nil(rollCall)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *RollCallServiceTestSuite) TestList_PreservesInsertionOrder() {
	ctx := context.Background()
	for _, id := range []string{"W-001", "W-002", "W-003"} {
		_, err := suite.service.Record(ctx, dto.RecordRollCallRequest{
			WorkerID:   id,
			Supervisor: "T. Banda",
			Location:   "Shaft 2",
		})
		suite.Require().NoError(err)
	}

	rollCalls, err := suite.service.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rollCalls, 3)
	suite.Equal("W-001", rollCalls[0].WorkerID)
	suite.Equal("W-003", rollCalls[2].WorkerID)
}

func (suite *RollCallServiceTestSuite) TestRecord_SaveErrorPropagates() {
	mockStore := new(MockDocumentStore)
	service := services.NewRollCallService(mockStore, &sync.Mutex{})
	ctx := context.Background()

	mockStore.On("LoadSession", ctx).Return(&domain.User{Username: "jane.doe"}, nil).Once()
	mockStore.On("Load", ctx).Return(domain.NewDocument(), nil).Once()
	mockStore.On("Save", ctx, mock.AnythingOfType("domain.Document")).Return(assert.AnError).Once()

	rollCall, err := service.Record(ctx, dto.RecordRollCallRequest{
		WorkerID:   "W-042",
		Supervisor: "T. Banda",
		Location:   "Shaft 2",
	})

	suite.Require().Error(err)
	suite.Nil(rollCall)
	suite.ErrorIs(err, assert.AnError)
	mockStore.AssertExpectations(suite.T())
}

func TestRollCallServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RollCallServiceTestSuite))
}
