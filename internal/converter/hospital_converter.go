package converter

import (
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
)

// HospitalProfileToResponse converts a HospitalProfile entity + User entity to HospitalResponse DTO
func HospitalProfileToResponse(profile *entity.HospitalProfile, user *entity.User) *dto.HospitalResponse {
	if profile == nil || user == nil {
		return nil
	}

	availability := make(map[string]int, len(entity.BloodGroups))
	for _, group := range entity.BloodGroups {
		units, _ := profile.Availability.Units(group)
		availability[group] = units
	}

	return &dto.HospitalResponse{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Location:     profile.Location,
		PhoneNumber:  profile.PhoneNumber,
		Availability: availability,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
