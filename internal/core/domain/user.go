package domain

import "time"

// Position is the role a user holds on site.
type Position string

const (
	PositionSupervisor    Position = "supervisor"
	PositionMiner         Position = "miner"
	PositionSafetyOfficer Position = "safetyofficer"
	PositionOther         Position = "other"
)

// Valid reports whether the position is one of the accepted registration values.
func (p Position) Valid() bool {
	switch p {
	case PositionSupervisor, PositionMiner, PositionSafetyOfficer, PositionOther:
		return true
	}
	return false
}

// EmployeePrefix returns the employee-number prefix assigned to the position.
// Positions without a dedicated prefix fall back to EMP.
func (p Position) EmployeePrefix() string {
	switch p {
	case PositionSupervisor:
		return "SUP"
	case PositionMiner:
		return "MIN"
	case PositionSafetyOfficer:
		return "SFO"
	default:
		return "EMP"
	}
}

// User is an identity record in the register. The password is stored exactly
// as entered; Authenticate compares it verbatim.
type User struct {
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Password       string    `json:"password"`
	Position       Position  `json:"position"`
	Username       string    `json:"username"`
	EmployeeNumber string    `json:"employeeNumber"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// FullName returns the display name for the user.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
