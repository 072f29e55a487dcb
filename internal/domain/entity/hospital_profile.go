package entity

import (
	"github.com/google/uuid"
)

// BloodAvailability tracks unit counts for each of the 8 canonical blood
// groups. The JSON keys mirror the group labels the dashboard uses.
type BloodAvailability struct {
	APos  int `gorm:"column:units_a_pos;not null;default:0" json:"A+"`
	ANeg  int `gorm:"column:units_a_neg;not null;default:0" json:"A-"`
	BPos  int `gorm:"column:units_b_pos;not null;default:0" json:"B+"`
	BNeg  int `gorm:"column:units_b_neg;not null;default:0" json:"B-"`
	ABPos int `gorm:"column:units_ab_pos;not null;default:0" json:"AB+"`
	ABNeg int `gorm:"column:units_ab_neg;not null;default:0" json:"AB-"`
	OPos  int `gorm:"column:units_o_pos;not null;default:0" json:"O+"`
	ONeg  int `gorm:"column:units_o_neg;not null;default:0" json:"O-"`
}

// Units returns the count for a canonical group label, false when the
// label is not one of the 8 groups.
func (a BloodAvailability) Units(group string) (int, bool) {
	switch group {
	case BloodGroupAPos:
		return a.APos, true
	case BloodGroupANeg:
		return a.ANeg, true
	case BloodGroupBPos:
		return a.BPos, true
	case BloodGroupBNeg:
		return a.BNeg, true
	case BloodGroupABPos:
		return a.ABPos, true
	case BloodGroupABNeg:
		return a.ABNeg, true
	case BloodGroupOPos:
		return a.OPos, true
	case BloodGroupONeg:
		return a.ONeg, true
	}
	return 0, false
}

// HospitalProfile represents hospital-specific profile data and stock
type HospitalProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`

	// Always carries all 8 groups; replaced wholesale on dashboard save.
	Availability BloodAvailability `gorm:"embedded" json:"blood_availability"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (HospitalProfile) TableName() string {
	return "hospital_profiles"
}
