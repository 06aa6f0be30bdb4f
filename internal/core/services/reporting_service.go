package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
)

type reportingService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewReportingService creates the reporting service.
func NewReportingService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.ReportingSvcFacade {
	return &reportingService{store: store, mu: mu}
}

// Summarize recomputes the dashboard view from the current document. Active
// permit counts depend on the clock: a permit is active while its window end
// is strictly after now.
func (s *reportingService) Summarize(ctx context.Context) (*domain.Summary, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for summary: %w", err)
	}

	now := time.Now()
	summary := &domain.Summary{}

	summary.Users.Total = len(doc.Users)
	if n := len(doc.Users); n > 0 {
		summary.Users.LastTimestamp = timePtr(doc.Users[n-1].RegisteredAt)
	}

	summary.RollCalls.Total = len(doc.RollCalls)
	if n := len(doc.RollCalls); n > 0 {
		summary.RollCalls.LastTimestamp = timePtr(doc.RollCalls[n-1].Timestamp)
	}

	summary.Checklists.Total = len(doc.Checklists)
	if n := len(doc.Checklists); n > 0 {
		summary.Checklists.LastTimestamp = timePtr(doc.Checklists[n-1].Timestamp)
	}

	summary.Hazards.Total = len(doc.Hazards)
	if n := len(doc.Hazards); n > 0 {
		summary.Hazards.LastTimestamp = timePtr(doc.Hazards[n-1].Timestamp)
	}
	for _, h := range doc.Hazards {
		if h.Status == domain.HazardOpen {
			summary.Hazards.Open++
		}
	}

	summary.WorkPermits.Total = len(doc.WorkPermits)
	if n := len(doc.WorkPermits); n > 0 {
		summary.WorkPermits.LastTimestamp = timePtr(doc.WorkPermits[n-1].Timestamp)
	}
	for _, p := range doc.WorkPermits {
		if p.EndTime.After(now) {
			summary.WorkPermits.Active++
		}
	}

	summary.VehiclePermits.Total = len(doc.VehiclePermits)
	if n := len(doc.VehiclePermits); n > 0 {
		summary.VehiclePermits.LastTimestamp = timePtr(doc.VehiclePermits[n-1].Timestamp)
	}
	for _, p := range doc.VehiclePermits {
		if p.ValidTo.After(now) {
			summary.VehiclePermits.Active++
		}
	}

	return summary, nil
}

// Export serializes the full root document for download.
func (s *reportingService) Export(ctx context.Context) ([]byte, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for export: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// ClearOperationalData empties the five event collections and keeps users.
func (s *reportingService) ClearOperationalData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load document for clear: %w", err)
	}

	cleared := domain.NewDocument()
	cleared.Users = doc.Users
	if err := s.store.Save(ctx, cleared); err != nil {
		return fmt.Errorf("failed to persist cleared document: %w", err)
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
