package handler

import (
	"encoding/json"
	"net/http"

	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/usecase"
	"bloodlink/pkg/response"
	"bloodlink/pkg/validator"
)

type BloodRequestHandler struct {
	requestUsecase usecase.BloodRequestUsecase
	validator      *validator.CustomValidator
}

func NewBloodRequestHandler(requestUsecase usecase.BloodRequestUsecase, validator *validator.CustomValidator) *BloodRequestHandler {
	return &BloodRequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// CreateRequest submits a new blood request
func (h *BloodRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBloodRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.requestUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestCoordinatesInvalid:
			response.Error(w, http.StatusBadRequest, "Latitude and longitude must be valid coordinates", nil)
		default:
			response.InternalServerError(w, "Failed to submit request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Request submitted successfully", request)
}

// ListRequests returns all blood requests, newest first
func (h *BloodRequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestUsecase.ListRequests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved successfully", requests)
}
