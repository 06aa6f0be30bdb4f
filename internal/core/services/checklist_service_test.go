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

type ChecklistServiceTestSuite struct {
	suite.Suite
	store   *memDocumentStore
	service portssvc.ChecklistSvcFacade
}

func (suite *ChecklistServiceTestSuite) SetupTest() {
	suite.store = newMemDocumentStore()
	suite.store.signIn("jane.doe")
	suite.service = services.NewChecklistService(suite.store, &sync.Mutex{})
}

func (suite *ChecklistServiceTestSuite) TestRecord_Success() {
	req := dto.RecordChecklistRequest{
		Type:           "confined_space",
		JobDescription: "Tank inspection",
		PPEItems: []dto.ChecklistItemInput{
			{ID: "helmet", Name: "Hard hat", Checked: true},
			{ID: "boots", Name: "Safety boots", Checked: false},
		},
		Notes: "Boots replaced mid-shift",
	}

	checklist, err := suite.service.Record(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal(domain.ChecklistConfinedSpace, checklist.Type)
	suite.Equal("jane.doe", checklist.SubmittedBy)
	suite.Require().Len(checklist.PPEItems, 2)
	// Unchecked items are kept so the full reviewed set is preserved
	suite.False(checklist.PPEItems[1].Checked)
	suite.Len(suite.store.doc.Checklists, 1)
}

func (suite *ChecklistServiceTestSuite) TestRecord_EmptySubmissionGetsDefaultType() {
	checklist, err := suite.service.Record(context.Background(), dto.RecordChecklistRequest{})

	suite.Require().NoError(err)
	suite.Equal(domain.ChecklistPreShiftPPE, checklist.Type)
	suite.Empty(checklist.PPEItems)
}

func (suite *ChecklistServiceTestSuite) TestRecord_OtherPPEOnlyWhenChecked() {
	tests := []struct {
		name         string
		otherChecked bool
		otherPPE     string
		want         string
	}{
		{name: "checked captures text", otherChecked: true, otherPPE: "Welding apron", want: "Welding apron"},
		{name: "unchecked drops text", otherChecked: false, otherPPE: "Welding apron", want: ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			checklist, err := suite.service.Record(context.Background(), dto.RecordChecklistRequest{
				OtherChecked: tt.otherChecked,
				OtherPPE:     tt.otherPPE,
			})

			suite.Require().NoError(err)
			suite.Equal(tt.want, checklist.OtherPPE)
		})
	}
}

func (suite *ChecklistServiceTestSuite) TestRecord_RequiresSession() {
	suite.store.session = nil

	checklist, err := suite.service.Record(context.Background(), dto.RecordChecklistRequest{})

	suite.Require().Error(err)
	suite.Nil(checklist)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *ChecklistServiceTestSuite) TestList() {
	ctx := context.Background()
	_, err := suite.service.Record(ctx, dto.RecordChecklistRequest{Type: "hot_work"})
	suite.Require().NoError(err)
	_, err = suite.service.Record(ctx, dto.RecordChecklistRequest{})
	suite.Require().NoError(err)

	checklists, err := suite.service.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(checklists, 2)
	suite.Equal(domain.ChecklistHotWork, checklists[0].Type)
	suite.Equal(domain.ChecklistPreShiftPPE, checklists[1].Type)
}

func TestChecklistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistServiceTestSuite))
}
