package converter

import (
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
)

// DonorProfileToResponse converts a DonorProfile entity + User entity to DonorResponse DTO
func DonorProfileToResponse(profile *entity.DonorProfile, user *entity.User) *dto.DonorResponse {
	if profile == nil || user == nil {
		return nil
	}

	return &dto.DonorResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		BloodGroup:    profile.BloodGroup,
		Location:      profile.Location,
		PhoneNumber:   profile.PhoneNumber,
		Latitude:      profile.Latitude,
		Longitude:     profile.Longitude,
		ReceiveAlerts: profile.WantsAlerts(),
		AlertRadiusKm: profile.AlertRadiusKm,
		UrgencyLevel:  profile.UrgencyLevel,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// DonorResponseToResponse converts a DonorResponse entity to its DTO
func DonorResponseToResponse(response *entity.DonorResponse) *dto.DonorResponseResponse {
	if response == nil {
		return nil
	}

	return &dto.DonorResponseResponse{
		ID:        response.ID,
		DonorID:   response.DonorID,
		RequestID: response.RequestID,
		CreatedAt: response.CreatedAt,
	}
}
