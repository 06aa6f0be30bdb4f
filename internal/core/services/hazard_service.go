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

// defaultRecentHazards is how many reports the dashboard shows.
const defaultRecentHazards = 5

type hazardService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewHazardService creates the hazard service.
func NewHazardService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.HazardSvcFacade {
	return &hazardService{store: store, mu: mu}
}

func (s *hazardService) Record(ctx context.Context, req dto.RecordHazardRequest) (*domain.Hazard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := sessionUsername(ctx, s.store)
	if err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if strings.TrimSpace(req.Location) == "" {
		verr.Add("location", "Location is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		verr.Add("description", "Description is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	hazardType := domain.HazardType(req.Type)
	if hazardType == "" {
		hazardType = domain.DefaultHazardType
	}
	severity := domain.Severity(req.Severity)
	if severity == "" {
		severity = domain.SeverityLow
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for hazard report: %w", err)
	}

	hazard := domain.Hazard{
		Type:        hazardType,
		Location:    req.Location,
		Description: req.Description,
		Severity:    severity,
		Timestamp:   time.Now().UTC(),
		Status:      domain.HazardOpen,
		ReportedBy:  actor,
	}

	doc.Hazards = append(doc.Hazards, hazard)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist hazard report: %w", err)
	}
	return &hazard, nil
}

func (s *hazardService) List(ctx context.Context) ([]domain.Hazard, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for hazard list: %w", err)
	}
	return doc.Hazards, nil
}

// Recent returns the last n hazards most-recent-first.
func (s *hazardService) Recent(ctx context.Context, n int) ([]domain.Hazard, error) {
	if n <= 0 {
		n = defaultRecentHazards
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for recent hazards: %w", err)
	}

	start := len(doc.Hazards) - n
	if start < 0 {
		start = 0
	}
	tail := doc.Hazards[start:]

	recent := make([]domain.Hazard, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		recent = append(recent, tail[i])
	}
	return recent, nil
}
