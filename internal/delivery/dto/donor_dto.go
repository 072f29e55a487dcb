package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateDonorProfileRequest updates profile fields and alert
// preferences. Pointer fields are left untouched when absent.
type UpdateDonorProfileRequest struct {
	FullName      *string  `json:"full_name" validate:"omitempty,min=3,max=255"`
	BloodGroup    *string  `json:"blood_group" validate:"omitempty,bloodgroup"`
	Location      *string  `json:"location" validate:"omitempty,max=255"`
	PhoneNumber   *string  `json:"phone_number" validate:"omitempty,max=20"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,longitude"`
	ReceiveAlerts *bool    `json:"receive_alerts"`
	AlertRadiusKm *float64 `json:"alert_radius_km" validate:"omitempty,gt=0"`
	UrgencyLevel  *string  `json:"urgency_level" validate:"omitempty,oneof=All Urgent Normal"`
}

type DonorResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	BloodGroup    string    `json:"blood_group"`
	Location      string    `json:"location"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	ReceiveAlerts bool      `json:"receive_alerts"`
	AlertRadiusKm float64   `json:"alert_radius_km"`
	UrgencyLevel  string    `json:"urgency_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DonorListResponse struct {
	Donors []DonorResponse `json:"donors"`
	Total  int             `json:"total"`
}

// RespondToRequestRequest records a donor's offer to help with a
// specific blood request.
type RespondToRequestRequest struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
}

type DonorResponseResponse struct {
	ID        uuid.UUID `json:"id"`
	DonorID   uuid.UUID `json:"donor_id"`
	RequestID uuid.UUID `json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
}
