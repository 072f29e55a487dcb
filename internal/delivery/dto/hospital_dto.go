package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateAvailabilityRequest replaces the hospital's whole stock map.
// All 8 canonical groups must be present; pointers distinguish an
// omitted key from an explicit zero.
type UpdateAvailabilityRequest struct {
	APos  *int `json:"A+" validate:"required,gte=0"`
	ANeg  *int `json:"A-" validate:"required,gte=0"`
	BPos  *int `json:"B+" validate:"required,gte=0"`
	BNeg  *int `json:"B-" validate:"required,gte=0"`
	ABPos *int `json:"AB+" validate:"required,gte=0"`
	ABNeg *int `json:"AB-" validate:"required,gte=0"`
	OPos  *int `json:"O+" validate:"required,gte=0"`
	ONeg  *int `json:"O-" validate:"required,gte=0"`
}

type HospitalResponse struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	FullName     string         `json:"full_name"`
	Location     string         `json:"location"`
	PhoneNumber  string         `json:"phone_number,omitempty"`
	Availability map[string]int `json:"blood_availability"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
