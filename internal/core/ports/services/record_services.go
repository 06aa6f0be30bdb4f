package services

import (
	"context"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// RollCallSvcFacade records and lists roll calls.
type RollCallSvcFacade interface {
	Record(ctx context.Context, req dto.RecordRollCallRequest) (*domain.RollCall, error)
	List(ctx context.Context) ([]domain.RollCall, error)
}

// ChecklistSvcFacade records and lists PPE checklists.
type ChecklistSvcFacade interface {
	Record(ctx context.Context, req dto.RecordChecklistRequest) (*domain.Checklist, error)
	List(ctx context.Context) ([]domain.Checklist, error)
}

// HazardSvcFacade records and lists hazard reports.
type HazardSvcFacade interface {
	Record(ctx context.Context, req dto.RecordHazardRequest) (*domain.Hazard, error)
	List(ctx context.Context) ([]domain.Hazard, error)

	// Recent returns the last n hazards by insertion order, most recent
	// first. n <= 0 selects the default of 5.
	Recent(ctx context.Context, n int) ([]domain.Hazard, error)
}

// PermitSvcFacade issues and lists work and vehicle permits.
type PermitSvcFacade interface {
	IssueWorkPermit(ctx context.Context, req dto.IssueWorkPermitRequest) (*domain.WorkPermit, error)
	IssueVehiclePermit(ctx context.Context, req dto.IssueVehiclePermitRequest) (*domain.VehiclePermit, error)
	ListWorkPermits(ctx context.Context) ([]domain.WorkPermit, error)
	ListVehiclePermits(ctx context.Context) ([]domain.VehiclePermit, error)
}
