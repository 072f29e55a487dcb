package entity

// Canonical ABO/Rh blood group labels
const (
	BloodGroupAPos  = "A+"
	BloodGroupANeg  = "A-"
	BloodGroupBPos  = "B+"
	BloodGroupBNeg  = "B-"
	BloodGroupABPos = "AB+"
	BloodGroupABNeg = "AB-"
	BloodGroupOPos  = "O+"
	BloodGroupONeg  = "O-"
)

// BloodGroups lists the 8 canonical groups in display order.
var BloodGroups = []string{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
	BloodGroupOPos, BloodGroupONeg,
}

// IsValidBloodGroup reports whether s is one of the canonical labels.
func IsValidBloodGroup(s string) bool {
	for _, g := range BloodGroups {
		if s == g {
			return true
		}
	}
	return false
}

// Request urgency values
const (
	UrgencyNormal = "Normal"
	UrgencyUrgent = "Urgent"
)

// Donor urgency preference values (UrgencyAll means no urgency filter)
const (
	UrgencyLevelAll = "All"
)

// IsValidUrgency reports whether s is a valid request urgency.
func IsValidUrgency(s string) bool {
	return s == UrgencyNormal || s == UrgencyUrgent
}

// IsValidUrgencyLevel reports whether s is a valid donor urgency preference.
func IsValidUrgencyLevel(s string) bool {
	return s == UrgencyLevelAll || s == UrgencyNormal || s == UrgencyUrgent
}
