package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

type checklistService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewChecklistService creates the checklist service.
func NewChecklistService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.ChecklistSvcFacade {
	return &checklistService{store: store, mu: mu}
}

// Record appends a checklist. The checklist form has no required fields; an
// omitted type falls back to the default and the full checkbox set is stored
// as submitted, checked or not.
func (s *checklistService) Record(ctx context.Context, req dto.RecordChecklistRequest) (*domain.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := sessionUsername(ctx, s.store)
	if err != nil {
		return nil, err
	}

	checklistType := domain.ChecklistType(req.Type)
	if checklistType == "" {
		checklistType = domain.DefaultChecklistType
	}

	items := make([]domain.PPEItem, 0, len(req.PPEItems))
	for _, item := range req.PPEItems {
		items = append(items, domain.PPEItem{ID: item.ID, Name: item.Name, Checked: item.Checked})
	}

	// The free-text "other" entry only counts when its checkbox is set.
	otherPPE := ""
	if req.OtherChecked {
		otherPPE = req.OtherPPE
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for checklist: %w", err)
	}

	checklist := domain.Checklist{
		Type:           checklistType,
		Timestamp:      time.Now().UTC(),
		JobDescription: req.JobDescription,
		PPEItems:       items,
		OtherPPE:       otherPPE,
		Notes:          req.Notes,
		SubmittedBy:    actor,
	}

	doc.Checklists = append(doc.Checklists, checklist)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist checklist: %w", err)
	}
	return &checklist, nil
}

func (s *checklistService) List(ctx context.Context) ([]domain.Checklist, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for checklist list: %w", err)
	}
	return doc.Checklists, nil
}
