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

type permitService struct {
	store portsrepo.DocumentStore
	mu    *sync.Mutex
}

// NewPermitService creates the permit service covering both work and vehicle
// permits.
func NewPermitService(store portsrepo.DocumentStore, mu *sync.Mutex) portssvc.PermitSvcFacade {
	return &permitService{store: store, mu: mu}
}

func (s *permitService) IssueWorkPermit(ctx context.Context, req dto.IssueWorkPermitRequest) (*domain.WorkPermit, error) {
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
	if req.StartTime.IsZero() {
		verr.Add("startTime", "Start time is required")
	}
	if req.EndTime.IsZero() {
		verr.Add("endTime", "End time is required")
	}
	if strings.TrimSpace(req.Issuer) == "" {
		verr.Add("issuer", "Issuer is required")
	}
	if strings.TrimSpace(req.Receiver) == "" {
		verr.Add("receiver", "Receiver is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	permitType := domain.WorkPermitType(req.Type)
	if permitType == "" {
		permitType = domain.DefaultWorkPermitType
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for work permit: %w", err)
	}

	permit := domain.WorkPermit{
		Type:        permitType,
		Location:    req.Location,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Issuer:      req.Issuer,
		Receiver:    req.Receiver,
		Precautions: domain.SelectedLabels(domain.WorkPermitPrecautions, req.Precautions),
		Timestamp:   time.Now().UTC(),
		IssuedBy:    actor,
		Status:      domain.PermitActive,
	}

	doc.WorkPermits = append(doc.WorkPermits, permit)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist work permit: %w", err)
	}
	return &permit, nil
}

func (s *permitService) IssueVehiclePermit(ctx context.Context, req dto.IssueVehiclePermitRequest) (*domain.VehiclePermit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := sessionUsername(ctx, s.store)
	if err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if strings.TrimSpace(req.Registration) == "" {
		verr.Add("registration", "Registration is required")
	}
	if strings.TrimSpace(req.MakeModel) == "" {
		verr.Add("makeModel", "Make and model is required")
	}
	if strings.TrimSpace(req.Driver) == "" {
		verr.Add("driver", "Driver is required")
	}
	if strings.TrimSpace(req.Area) == "" {
		verr.Add("area", "Operating area is required")
	}
	if strings.TrimSpace(req.Purpose) == "" {
		verr.Add("purpose", "Purpose is required")
	}
	if strings.TrimSpace(req.Issuer) == "" {
		verr.Add("issuer", "Issuer is required")
	}
	if req.ValidFrom.IsZero() {
		verr.Add("validFrom", "Valid-from time is required")
	}
	if req.ValidTo.IsZero() {
		verr.Add("validTo", "Valid-to time is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	vehicleType := domain.VehicleType(req.Type)
	if vehicleType == "" {
		vehicleType = domain.DefaultVehicleType
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for vehicle permit: %w", err)
	}

	permit := domain.VehiclePermit{
		Type:         vehicleType,
		Registration: req.Registration,
		MakeModel:    req.MakeModel,
		Driver:       req.Driver,
		Area:         req.Area,
		Purpose:      req.Purpose,
		Issuer:       req.Issuer,
		ValidFrom:    req.ValidFrom,
		ValidTo:      req.ValidTo,
		SafetyChecks: domain.SelectedLabels(domain.VehicleSafetyChecks, req.SafetyChecks),
		Timestamp:    time.Now().UTC(),
		IssuedBy:     actor,
		Status:       domain.PermitActive,
	}

	doc.VehiclePermits = append(doc.VehiclePermits, permit)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist vehicle permit: %w", err)
	}
	return &permit, nil
}

func (s *permitService) ListWorkPermits(ctx context.Context) ([]domain.WorkPermit, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for work permit list: %w", err)
	}
	return doc.WorkPermits, nil
}

func (s *permitService) ListVehiclePermits(ctx context.Context) ([]domain.VehiclePermit, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for vehicle permit list: %w", err)
	}
	return doc.VehiclePermits, nil
}
