package usecase

import (
	"context"
	"errors"

	"bloodlink/internal/converter"
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/service"
	"bloodlink/pkg/geo"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRequestCoordinatesInvalid = errors.New("request coordinates are invalid")

type BloodRequestUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error)
	ListRequests(ctx context.Context) (*dto.BloodRequestListResponse, error)
}

type bloodRequestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	requestRepo  repository.BloodRequestRepository
	auditService service.AuditService
}

func NewBloodRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.BloodRequestRepository,
	auditService service.AuditService,
) BloodRequestUsecase {
	return &bloodRequestUsecase{
		db:           db,
		log:          log,
		requestRepo:  requestRepo,
		auditService: auditService,
	}
}

func (u *bloodRequestUsecase) CreateRequest(ctx context.Context, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error) {
	// A request without a usable position can never be matched, so it
	// is rejected at creation rather than silently defaulted.
	coord := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := coord.Validate(); err != nil {
		return nil, ErrRequestCoordinatesInvalid
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = entity.UrgencyNormal
	}
	unitsNeeded := req.UnitsNeeded
	if unitsNeeded == 0 {
		unitsNeeded = 1
	}

	request := &entity.BloodRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		BloodGroup:  req.BloodGroup,
		Location:    req.Location,
		Latitude:    coord.Latitude,
		Longitude:   coord.Longitude,
		Urgency:     urgency,
		UnitsNeeded: unitsNeeded,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.requestRepo.Create(ctx, tx, request); err != nil {
		u.log.Warnf("Failed to create blood request: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, nil, entity.AuditActionRequestCreate, "blood_request", request.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BloodRequestToResponse(request), nil
}

func (u *bloodRequestUsecase) ListRequests(ctx context.Context) (*dto.BloodRequestListResponse, error) {
	requests, err := u.requestRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list blood requests: %+v", err)
		return nil, err
	}

	responses := make([]dto.BloodRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *converter.BloodRequestToResponse(&requests[i]))
	}

	return &dto.BloodRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}
