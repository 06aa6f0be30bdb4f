package domain

import "time"

// RollCall records the presence of one worker on a shift.
type RollCall struct {
	WorkerID    string    `json:"workerId"`
	Supervisor  string    `json:"supervisor"`
	Shift       string    `json:"shift"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	SubmittedBy string    `json:"submittedBy"`
}
