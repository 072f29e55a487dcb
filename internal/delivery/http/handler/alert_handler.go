package handler

import (
	"encoding/json"
	"net/http"

	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/usecase"
	"bloodlink/pkg/response"
	"bloodlink/pkg/validator"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
	validator    *validator.CustomValidator
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase, validator *validator.CustomValidator) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
		validator:    validator,
	}
}

// GetAlerts returns the blood requests matching the donor's blood group,
// urgency preference and alert radius, nearest first
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	donorID, ok := requireSelf(w, r)
	if !ok {
		return
	}

	alerts, err := h.alertUsecase.GetAlerts(r.Context(), donorID)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrDonorNotGeocoded:
			response.Error(w, http.StatusBadRequest, "Set your location coordinates to receive alerts", nil)
		default:
			response.InternalServerError(w, "Failed to get alerts")
		}
		return
	}

	response.Success(w, http.StatusOK, "Alerts retrieved successfully", alerts)
}

// RespondToRequest records the donor's offer to help with a request
func (h *AlertHandler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	donorID, ok := requireSelf(w, r)
	if !ok {
		return
	}

	var req dto.RespondToRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.alertUsecase.RespondToRequest(r.Context(), donorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrAlreadyResponded:
			response.Conflict(w, "You have already responded to this request")
		default:
			response.InternalServerError(w, "Failed to record response")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Response recorded successfully", result)
}
