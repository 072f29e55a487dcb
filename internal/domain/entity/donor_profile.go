package entity

import (
	"github.com/google/uuid"
)

// DonorProfile represents donor-specific profile data and alert preferences
type DonorProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BloodGroup  string    `gorm:"type:varchar(3);not null;index" json:"blood_group"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`

	// Resolved coordinates; nil until the donor picks a point on the map.
	// Geocoding of the free-text location happens outside this service.
	Latitude  *float64 `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:double precision" json:"longitude,omitempty"`

	// Alert preferences
	ReceiveAlerts *bool   `gorm:"not null;default:true" json:"receive_alerts"`
	AlertRadiusKm float64 `gorm:"not null;default:10" json:"alert_radius_km"`
	UrgencyLevel  string  `gorm:"type:varchar(10);not null;default:'All'" json:"urgency_level"`

	// Relationships
	User      User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Responses []DonorResponse `gorm:"foreignKey:DonorID" json:"responses,omitempty"`
}

func (DonorProfile) TableName() string {
	return "donor_profiles"
}

// WantsAlerts reports the receive_alerts flag, treating an unset value as true.
func (p *DonorProfile) WantsAlerts() bool {
	return p.ReceiveAlerts == nil || *p.ReceiveAlerts
}

// HasCoordinates reports whether the profile carries a resolved coordinate pair.
func (p *DonorProfile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
