package converter

import (
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/service"
)

// BloodRequestToResponse converts a BloodRequest entity to its DTO
func BloodRequestToResponse(request *entity.BloodRequest) *dto.BloodRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.BloodRequestResponse{
		ID:          request.ID,
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		BloodGroup:  request.BloodGroup,
		Location:    request.Location,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Urgency:     request.Urgency,
		UnitsNeeded: request.UnitsNeeded,
		CreatedAt:   request.CreatedAt,
	}
}

// AlertMatchToResponse converts an AlertMatch to the alert DTO
func AlertMatchToResponse(match service.AlertMatch) dto.AlertResponse {
	return dto.AlertResponse{
		BloodRequestResponse: *BloodRequestToResponse(&match.Request),
		DistanceKm:           match.DistanceKm,
	}
}
