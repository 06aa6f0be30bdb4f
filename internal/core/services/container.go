package services

import (
	"sync"

	portsrepo "github.com/mkhumalo/site_safety_app/internal/core/ports/repositories"
	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
)

// NewServiceContainer wires every service to the shared document store. One
// mutex serializes all load-modify-save cycles: the store holds a single
// document, so there is exactly one logical writer.
func NewServiceContainer(store portsrepo.DocumentStore) *portssvc.ServiceContainer {
	mu := &sync.Mutex{}

	container := &portssvc.ServiceContainer{}
	container.User = NewUserService(store, mu)
	container.RollCall = NewRollCallService(store, mu)
	container.Checklist = NewChecklistService(store, mu)
	container.Hazard = NewHazardService(store, mu)
	container.Permit = NewPermitService(store, mu)
	container.Reporting = NewReportingService(store, mu)
	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.RollCallSvcFacade  = (*rollCallService)(nil)
	_ portssvc.ChecklistSvcFacade = (*checklistService)(nil)
	_ portssvc.HazardSvcFacade    = (*hazardService)(nil)
	_ portssvc.PermitSvcFacade    = (*permitService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
