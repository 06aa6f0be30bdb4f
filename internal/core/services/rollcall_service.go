package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mkhumalo/site_safety_app/internal/apperrors"
	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

type rollCallService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewRollCallService creates the roll call service.
func NewRollCallService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.RollCallSvcFacade {
	return &rollCallService{store: store, mu: mu}
}

func (s *rollCallService) Record(ctx context.Context, req dto.RecordRollCallRequest) (*domain.RollCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := sessionUsername(ctx, s.store)
	if err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if strings.TrimSpace(req.WorkerID) == "" {
		verr.Add("workerId", "Worker ID is required")
	}
	if strings.TrimSpace(req.Supervisor) == "" {
		verr.Add("supervisor", "Supervisor is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		verr.Add("location", "Location is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for roll call: %w", err)
	}

	rollCall := domain.RollCall{
		WorkerID:    req.WorkerID,
		Supervisor:  req.Supervisor,
		Shift:       req.Shift,
		Location:    req.Location,
		Timestamp:   time.Now().UTC(),
		SubmittedBy: actor,
	}

	doc.RollCalls = append(doc.RollCalls, rollCall)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist roll call: %w", err)
	}
	return &rollCall, nil
}

func (s *rollCallService) List(ctx context.Context) ([]domain.RollCall, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for roll call list: %w", err)
	}
	return doc.RollCalls, nil
}
