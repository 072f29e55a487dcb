package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequest is a submitted need for blood. Requests are immutable
// after creation; requester contact details are recorded as free text,
// not as a reference to a donor or hospital account.
type BloodRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	BloodGroup  string    `gorm:"type:varchar(3);not null;index" json:"blood_group"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Latitude    float64   `gorm:"type:double precision;not null" json:"latitude"`
	Longitude   float64   `gorm:"type:double precision;not null" json:"longitude"`
	Urgency     string    `gorm:"type:varchar(10);not null;default:'Normal'" json:"urgency"`
	UnitsNeeded int       `gorm:"not null;default:1" json:"units_needed"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}
