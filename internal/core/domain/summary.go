package domain

import "time"

// CollectionSummary is the per-collection slice of the dashboard summary.
type CollectionSummary struct {
	Total         int        `json:"total"`
	LastTimestamp *time.Time `json:"lastTimestamp,omitempty"`
}

// HazardSummary adds the open-report count to the base summary.
type HazardSummary struct {
	CollectionSummary
	Open int `json:"open"`
}

// PermitSummary adds the count of permits whose window has not yet closed.
// Active counts are computed against the clock at summarize time, not stored.
type PermitSummary struct {
	CollectionSummary
	Active int `json:"active"`
}

// Summary is a point-in-time view over the whole document.
type Summary struct {
	Users          CollectionSummary `json:"users"`
	RollCalls      CollectionSummary `json:"rollCalls"`
	Checklists     CollectionSummary `json:"checklists"`
	Hazards        HazardSummary     `json:"hazards"`
	WorkPermits    PermitSummary     `json:"workPermits"`
	VehiclePermits PermitSummary     `json:"vehiclePermits"`
}
