package dto

import "time"

// RecordRollCallRequest carries the roll call form fields. Shift is optional.
type RecordRollCallRequest struct {
	WorkerID   string `json:"workerId" binding:"required"`
	Supervisor string `json:"supervisor" binding:"required"`
	Shift      string `json:"shift"`
	Location   string `json:"location" binding:"required"`
}

// ChecklistItemInput is one checkbox as submitted, checked or not.
type ChecklistItemInput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// RecordChecklistRequest carries the checklist form fields. No field is
// required; an omitted type gets the default. OtherPPE is only captured when
// its checkbox is set.
type RecordChecklistRequest struct {
	Type           string               `json:"type"`
	JobDescription string               `json:"jobDescription"`
	PPEItems       []ChecklistItemInput `json:"ppeItems"`
	OtherChecked   bool                 `json:"otherChecked"`
	OtherPPE       string               `json:"otherPPE"`
	Notes          string               `json:"notes"`
}

// RecordHazardRequest carries the hazard report form fields. Type and
// severity default when omitted.
type RecordHazardRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	Severity    string `json:"severity"`
}

// IssueWorkPermitRequest carries the work permit form fields. Precautions
// holds the ids of the checked boxes from the fixed precaution set.
type IssueWorkPermitRequest struct {
	Type        string    `json:"type"`
	Location    string    `json:"location" binding:"required"`
	Description string    `json:"description" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Issuer      string    `json:"issuer" binding:"required"`
	Receiver    string    `json:"receiver" binding:"required"`
	Precautions []string  `json:"precautions"`
}

// IssueVehiclePermitRequest carries the vehicle permit form fields.
// SafetyChecks holds the ids of the checked boxes from the fixed check set.
type IssueVehiclePermitRequest struct {
	Type         string    `json:"type"`
	Registration string    `json:"registration" binding:"required"`
	MakeModel    string    `json:"makeModel" binding:"required"`
	Driver       string    `json:"driver" binding:"required"`
	Area         string    `json:"area" binding:"required"`
	Purpose      string    `json:"purpose" binding:"required"`
	Issuer       string    `json:"issuer" binding:"required"`
	ValidFrom    time.Time `json:"validFrom" binding:"required"`
	ValidTo      time.Time `json:"validTo" binding:"required"`
	SafetyChecks []string  `json:"safetyChecks"`
}
