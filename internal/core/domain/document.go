package domain

// Document is the root persisted structure. Every collection is append-only
// and insertion ordered: records are never reordered or removed individually,
// only appended or bulk-cleared (users survive a clear).
type Document struct {
	Users          []User          `json:"users"`
	RollCalls      []RollCall      `json:"rollCalls"`
	Checklists     []Checklist     `json:"checklists"`
	Hazards        []Hazard        `json:"hazards"`
	WorkPermits    []WorkPermit    `json:"workPermits"`
	VehiclePermits []VehiclePermit `json:"vehiclePermits"`
}

// NewDocument returns a document with every collection empty but non-nil, so
// a fresh store serializes to empty arrays rather than nulls.
func NewDocument() Document {
	return Document{
		Users:          []User{},
		RollCalls:      []RollCall{},
		Checklists:     []Checklist{},
		Hazards:        []Hazard{},
		WorkPermits:    []WorkPermit{},
		VehiclePermits: []VehiclePermit{},
	}
}
