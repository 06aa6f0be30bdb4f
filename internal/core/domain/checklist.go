package domain

import "time"

// ChecklistType identifies the kind of PPE checklist submitted.
type ChecklistType string

const (
	ChecklistPreShiftPPE      ChecklistType = "pre_shift_ppe"
	ChecklistConfinedSpace    ChecklistType = "confined_space"
	ChecklistWorkingAtHeights ChecklistType = "working_at_heights"
	ChecklistHotWork          ChecklistType = "hot_work"
)

// DefaultChecklistType is applied when a submission omits the type.
const DefaultChecklistType = ChecklistPreShiftPPE

// PPEItem is one checkbox on the checklist form, recorded whether checked or
// not so the submission preserves the full set the worker reviewed.
type PPEItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// Checklist is a completed PPE checklist.
type Checklist struct {
	Type           ChecklistType `json:"type"`
	Timestamp      time.Time     `json:"timestamp"`
	JobDescription string        `json:"jobDescription"`
	PPEItems       []PPEItem     `json:"ppeItems"`
	OtherPPE       string        `json:"otherPPE"`
	Notes          string        `json:"notes"`
	SubmittedBy    string        `json:"submittedBy"`
}
