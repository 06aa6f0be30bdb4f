package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/core/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

type PermitServiceTestSuite struct {
	suite.Suite
	store   *memDocumentStore
	service portssvc.PermitSvcFacade
}

func (suite *PermitServiceTestSuite) SetupTest() {
	suite.store = newMemDocumentStore()
	suite.store.signIn("jane.doe")
	suite.service = services.NewPermitService(suite.store, &sync.Mutex{})
}

func validWorkPermit() dto.IssueWorkPermitRequest {
	return dto.IssueWorkPermitRequest{
		Type:        "hot_work",
		Location:    "Workshop",
		Description: "Welding on conveyor frame",
		StartTime:   time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC),
		Issuer:      "S. Dlamini",
		Receiver:    "K. Moyo",
		Precautions: []string{"fire-extinguisher", "area-barricaded"},
	}
}

func validVehiclePermit() dto.IssueVehiclePermitRequest {
	return dto.IssueVehiclePermitRequest{
		Type:         "haul_truck",
		Registration: "ND 123-456",
		MakeModel:    "Komatsu HD785",
		Driver:       "K. Moyo",
		Area:         "Pit 1 haul road",
		Purpose:      "Ore haulage",
		Issuer:       "S. Dlamini",
		ValidFrom:    time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
		ValidTo:      time.Date(2026, 3, 9, 6, 0, 0, 0, time.UTC),
		SafetyChecks: []string{"lights", "brakes", "unknown-id"},
	}
}

// --- Work Permit Tests ---

func (suite *PermitServiceTestSuite) TestIssueWorkPermit_Success() {
	permit, err := suite.service.IssueWorkPermit(context.Background(), validWorkPermit())

	suite.Require().NoError(err)
	suite.Equal(domain.WorkPermitHotWork, permit.Type)
	suite.Equal(domain.PermitActive, permit.Status)
	suite.Equal("jane.doe", permit.IssuedBy)
	suite.False(permit.Timestamp.IsZero())
	suite.Len(suite.store.doc.WorkPermits, 1)
}

func (suite *PermitServiceTestSuite) TestIssueWorkPermit_PrecautionsResolveInCanonicalOrder() {
	// Submitted out of display order; resolved labels follow the fixed set
	permit, err := suite.service.IssueWorkPermit(context.Background(), validWorkPermit())

	suite.Require().NoError(err)
	suite.Equal([]string{
		"Area barricaded and signposted",
		"Fire extinguisher on site",
	}, permit.Precautions)
}

func (suite *PermitServiceTestSuite) TestIssueWorkPermit_DefaultsType() {
	req := validWorkPermit()
	req.Type = ""

	permit, err := suite.service.IssueWorkPermit(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal(domain.WorkPermitGeneral, permit.Type)
}

func (suite *PermitServiceTestSuite) TestIssueWorkPermit_MissingFields() {
	permit, err := suite.service.IssueWorkPermit(context.Background(), dto.IssueWorkPermitRequest{})

	suite.Require().Error(err)
	suite.Nil(permit)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("Location is required", verr.Fields["location"])
	suite.Equal("Description is required", verr.Fields["description"])
	suite.Equal("Start time is required", verr.Fields["startTime"])
	suite.Equal("End time is required", verr.Fields["endTime"])
	suite.Equal("Issuer is required", verr.Fields["issuer"])
	suite.Equal("Receiver is required", verr.Fields["receiver"])
}

func (suite *PermitServiceTestSuite) TestIssueWorkPermit_RequiresSession() {
	suite.store.session = nil

	permit, err := suite.service.IssueWorkPermit(context.Background(), validWorkPermit())

	suite.Require().Error(err)
	suite.Nil(permit)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Vehicle Permit Tests ---

func (suite *PermitServiceTestSuite) TestIssueVehiclePermit_Success() {
	permit, err := suite.service.IssueVehiclePermit(context.Background(), validVehiclePermit())

	suite.Require().NoError(err)
	suite.Equal(domain.VehicleHaulTruck, permit.Type)
	suite.Equal(domain.PermitActive, permit.Status)
	suite.Equal("jane.doe", permit.IssuedBy)
	suite.Len(suite.store.doc.VehiclePermits, 1)
}

func (suite *PermitServiceTestSuite) TestIssueVehiclePermit_UnknownCheckIDsIgnored() {
	permit, err := suite.service.IssueVehiclePermit(context.Background(), validVehiclePermit())

	suite.Require().NoError(err)
	suite.Equal([]string{
		"Brakes operational",
		"Lights and indicators working",
	}, permit.SafetyChecks)
}

func (suite *PermitServiceTestSuite) TestIssueVehiclePermit_DefaultsType() {
	req := validVehiclePermit()
	req.Type = ""

	permit, err := suite.service.IssueVehiclePermit(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal(domain.VehicleLightVehicle, permit.Type)
}

func (suite *PermitServiceTestSuite) TestIssueVehiclePermit_MissingFields() {
	permit, err := suite.service.IssueVehiclePermit(context.Background(), dto.IssueVehiclePermitRequest{})

	suite.Require().Error(err)
	suite.Nil(permit)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("Registration is required", verr.Fields["registration"])
	suite.Equal("Make and model is required", verr.Fields["makeModel"])
	suite.Equal("Driver is required", verr.Fields["driver"])
	suite.Equal("Operating area is required", verr.Fields["area"])
	suite.Equal("Purpose is required", verr.Fields["purpose"])
	suite.Equal("Issuer is required", verr.Fields["issuer"])
	suite.Equal("Valid-from time is required", verr.Fields["validFrom"])
	suite.Equal("Valid-to time is required", verr.Fields["validTo"])
}

func (suite *PermitServiceTestSuite) TestListPermits() {
	ctx := context.Background()
	_, err := suite.service.IssueWorkPermit(ctx, validWorkPermit())
	suite.Require().NoError(err)
	_, err = suite.service.IssueVehiclePermit(ctx, validVehiclePermit())
	suite.Require().NoError(err)

	workPermits, err := suite.service.ListWorkPermits(ctx)
	suite.Require().NoError(err)
	suite.Len(workPermits, 1)

	vehiclePermits, err := suite.service.ListVehiclePermits(ctx)
	suite.Require().NoError(err)
	suite.Len(vehiclePermits, 1)
}

func TestPermitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermitServiceTestSuite))
}
