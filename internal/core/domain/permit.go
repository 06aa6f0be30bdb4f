package domain

import "time"

// WorkPermitType categorizes a work permit.
type WorkPermitType string

const (
	WorkPermitHotWork          WorkPermitType = "hot_work"
	WorkPermitConfinedSpace    WorkPermitType = "confined_space"
	WorkPermitWorkingAtHeights WorkPermitType = "working_at_heights"
	WorkPermitElectrical       WorkPermitType = "electrical"
	WorkPermitExcavation       WorkPermitType = "excavation"
	WorkPermitGeneral          WorkPermitType = "general"
)

// DefaultWorkPermitType is applied when a permit omits the type.
const DefaultWorkPermitType = WorkPermitGeneral

// VehicleType categorizes a vehicle permit.
type VehicleType string

const (
	VehicleLightVehicle VehicleType = "ldv"
	VehicleHaulTruck    VehicleType = "haul_truck"
	VehicleExcavator    VehicleType = "excavator"
	VehicleDrillRig     VehicleType = "drill_rig"
	VehicleLoader       VehicleType = "loader"
	VehicleDozer        VehicleType = "dozer"
	VehicleGrader       VehicleType = "grader"
	VehicleUtility      VehicleType = "utility"
)

// DefaultVehicleType is applied when a permit omits the type.
const DefaultVehicleType = VehicleLightVehicle

// PermitStatus tracks the lifecycle of a permit. Permits are issued active;
// expiry is computed from the permit window, not stored.
type PermitStatus string

const PermitActive PermitStatus = "active"

// FixedOption is one entry of a fixed checkbox set on a permit form.
type FixedOption struct {
	ID    string
	Label string
}

// WorkPermitPrecautions is the fixed precaution checkbox set on the work
// permit form, in display order.
var WorkPermitPrecautions = []FixedOption{
	{ID: "area-barricaded", Label: "Area barricaded and signposted"},
	{ID: "energy-isolated", Label: "Energy sources isolated and locked out"},
	{ID: "atmosphere-tested", Label: "Atmosphere tested for gas"},
	{ID: "fire-extinguisher", Label: "Fire extinguisher on site"},
	{ID: "ppe-verified", Label: "Required PPE verified"},
	{ID: "escape-route", Label: "Emergency escape route identified"},
}

// VehicleSafetyChecks is the fixed safety checkbox set on the vehicle permit
// form, in display order.
var VehicleSafetyChecks = []FixedOption{
	{ID: "brakes", Label: "Brakes operational"},
	{ID: "lights", Label: "Lights and indicators working"},
	{ID: "horn-alarm", Label: "Horn and reverse alarm working"},
	{ID: "tyres", Label: "Tyres in good condition"},
	{ID: "seatbelts", Label: "Seatbelts functional"},
	{ID: "fire-extinguisher", Label: "Fire extinguisher fitted"},
	{ID: "mirrors", Label: "Windscreen and mirrors intact"},
	{ID: "leaks", Label: "No fluid leaks"},
}

// SelectedLabels resolves checked option ids against a fixed set, returning
// the matching labels in the set's order. Unknown ids are ignored.
func SelectedLabels(options []FixedOption, checkedIDs []string) []string {
	checked := make(map[string]bool, len(checkedIDs))
	for _, id := range checkedIDs {
		checked[id] = true
	}
	labels := make([]string, 0, len(options))
	for _, opt := range options {
		if checked[opt.ID] {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}

// WorkPermit authorizes a piece of work for a time window.
type WorkPermit struct {
	Type        WorkPermitType `json:"type"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	StartTime   time.Time      `json:"startTime"`
	EndTime     time.Time      `json:"endTime"`
	Issuer      string         `json:"issuer"`
	Receiver    string         `json:"receiver"`
	Precautions []string       `json:"precautions"`
	Timestamp   time.Time      `json:"timestamp"`
	IssuedBy    string         `json:"issuedBy"`
	Status      PermitStatus   `json:"status"`
}

// VehiclePermit authorizes a vehicle to operate in an area for a time window.
type VehiclePermit struct {
	Type         VehicleType  `json:"type"`
	Registration string       `json:"registration"`
	MakeModel    string       `json:"makeModel"`
	Driver       string       `json:"driver"`
	Area         string       `json:"area"`
	Purpose      string       `json:"purpose"`
	Issuer       string       `json:"issuer"`
	ValidFrom    time.Time    `json:"validFrom"`
	ValidTo      time.Time    `json:"validTo"`
	SafetyChecks []string     `json:"safetyChecks"`
	Timestamp    time.Time    `json:"timestamp"`
	IssuedBy     string       `json:"issuedBy"`
	Status       PermitStatus `json:"status"`
}
