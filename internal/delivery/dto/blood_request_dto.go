package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBloodRequestRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Phone       string   `json:"phone" validate:"required,max=20"`
	Email       string   `json:"email" validate:"required,email"`
	BloodGroup  string   `json:"blood_group" validate:"required,bloodgroup"`
	Location    string   `json:"location" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Urgency     string   `json:"urgency" validate:"omitempty,oneof=Normal Urgent"`
	UnitsNeeded int      `json:"units_needed" validate:"omitempty,gte=1"`
}

type BloodRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	BloodGroup  string    `json:"blood_group"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Urgency     string    `json:"urgency"`
	UnitsNeeded int       `json:"units_needed"`
	CreatedAt   time.Time `json:"created_at"`
}

type BloodRequestListResponse struct {
	Requests []BloodRequestResponse `json:"requests"`
	Total    int                    `json:"total"`
}

// AlertResponse is a blood request annotated with the distance from
// the donor, returned by the alerts endpoint.
type AlertResponse struct {
	BloodRequestResponse
	DistanceKm float64 `json:"distance"`
}
