package dto

import (
	"time"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
)

// RegisterUserRequest carries the registration form fields. Username and
// employee number are derived by the service, never supplied.
type RegisterUserRequest struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Email     string          `json:"email" binding:"required"`
	Password  string          `json:"password" binding:"required,min=6"`
	Position  domain.Position `json:"position" binding:"required"`
}

// UserResponse is the outward user shape; it never includes the stored
// password.
type UserResponse struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Position       domain.Position `json:"position"`
	Username       string          `json:"username"`
	EmployeeNumber string          `json:"employeeNumber"`
	RegisteredAt   time.Time       `json:"registeredAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Position:       u.Position,
		Username:       u.Username,
		EmployeeNumber: u.EmployeeNumber,
		RegisteredAt:   u.RegisteredAt,
	}
}
