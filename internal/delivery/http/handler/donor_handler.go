package handler

import (
	"encoding/json"
	"net/http"

	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/delivery/http/middleware"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"
	"bloodlink/pkg/geo"
	"bloodlink/pkg/response"
	"bloodlink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// ListDonors returns donors, optionally filtered by blood group and location
func (h *DonorHandler) ListDonors(w http.ResponseWriter, r *http.Request) {
	filter := repository.DonorFilter{
		BloodGroup: r.URL.Query().Get("blood_group"),
		Location:   r.URL.Query().Get("location"),
	}

	donors, err := h.donorUsecase.ListDonors(r.Context(), filter)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBloodGroup:
			response.Error(w, http.StatusBadRequest, "Invalid blood group filter", nil)
		default:
			response.InternalServerError(w, "Failed to list donors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donors retrieved successfully", donors)
}

// GetDonor returns a single donor profile
func (h *DonorHandler) GetDonor(w http.ResponseWriter, r *http.Request) {
	donorID, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	donor, err := h.donorUsecase.GetDonor(r.Context(), donorID)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		default:
			response.InternalServerError(w, "Failed to get donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor retrieved successfully", donor)
}

// UpdateProfile updates the donor's own profile and alert preferences
func (h *DonorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	donorID, ok := requireSelf(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDonorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.UpdateProfile(r.Context(), donorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrInvalidAlertRadius, usecase.ErrInvalidUrgencyLevel,
			usecase.ErrInvalidBloodGroup, usecase.ErrIncompleteCoordinate,
			geo.ErrInvalidCoordinate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", donor)
}

// parseIDVar reads the {id} path variable as a UUID.
func parseIDVar(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// requireSelf reads the {id} path variable and verifies it matches the
// authenticated user, so accounts can only act on their own resources.
func requireSelf(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return uuid.Nil, false
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, false
	}
	if userID != id {
		response.Forbidden(w, "You can only access your own resources")
		return uuid.Nil, false
	}

	return id, true
}
