package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonorResponse records that a donor offered to help with a specific
// blood request. Append-only; a donor can respond to a request once.
type DonorResponse struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DonorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donor_request" json:"donor_id"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donor_request" json:"request_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Donor   DonorProfile `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Request BloodRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}

func (DonorResponse) TableName() string {
	return "donor_responses"
}
