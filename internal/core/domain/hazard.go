package domain

import "time"

// HazardType categorizes a reported hazard.
type HazardType string

const (
	HazardRockfall   HazardType = "rockfall"
	HazardGasLeak    HazardType = "gas_leak"
	HazardFlooding   HazardType = "flooding"
	HazardEquipment  HazardType = "equipment_failure"
	HazardElectrical HazardType = "electrical"
	HazardTypeOther  HazardType = "other"
)

// DefaultHazardType is applied when a report omits the type.
const DefaultHazardType = HazardRockfall

// Severity grades a hazard.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// HazardStatus tracks whether a hazard is still outstanding. New reports are
// always open; the schema allows closing but no operation does it yet.
type HazardStatus string

const (
	HazardOpen   HazardStatus = "open"
	HazardClosed HazardStatus = "closed"
)

// Hazard is a reported safety hazard.
type Hazard struct {
	Type        HazardType   `json:"type"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      HazardStatus `json:"status"`
	ReportedBy  string       `json:"reportedBy"`
}
