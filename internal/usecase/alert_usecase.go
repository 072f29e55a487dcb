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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDonorNotGeocoded = errors.New("donor profile has no coordinates")
	ErrRequestNotFound  = errors.New("blood request not found")
	ErrAlreadyResponded = errors.New("donor already responded to this request")
)

type AlertUsecase interface {
	GetAlerts(ctx context.Context, donorID uuid.UUID) ([]dto.AlertResponse, error)
	RespondToRequest(ctx context.Context, donorID uuid.UUID, req *dto.RespondToRequestRequest) (*dto.DonorResponseResponse, error)
}

type alertUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	donorRepo    repository.DonorProfileRepository
	requestRepo  repository.BloodRequestRepository
	responseRepo repository.DonorResponseRepository
	matcher      *service.AlertMatcher
	auditService service.AuditService
}

func NewAlertUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorRepo repository.DonorProfileRepository,
	requestRepo repository.BloodRequestRepository,
	responseRepo repository.DonorResponseRepository,
	matcher *service.AlertMatcher,
	auditService service.AuditService,
) AlertUsecase {
	return &alertUsecase{
		db:           db,
		log:          log,
		donorRepo:    donorRepo,
		requestRepo:  requestRepo,
		responseRepo: responseRepo,
		matcher:      matcher,
		auditService: auditService,
	}
}

// GetAlerts resolves the donor and hands the open request set to the
// matcher. The matcher itself never sees an unresolved donor.
func (u *alertUsecase) GetAlerts(ctx context.Context, donorID uuid.UUID) ([]dto.AlertResponse, error) {
	donor, err := u.donorRepo.FindByUserID(ctx, u.db, donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	// Opted-out donors skip the request query entirely.
	if !donor.WantsAlerts() {
		return []dto.AlertResponse{}, nil
	}

	if !donor.HasCoordinates() {
		return nil, ErrDonorNotGeocoded
	}
	origin := geo.Coordinate{Latitude: *donor.Latitude, Longitude: *donor.Longitude}

	requests, err := u.requestRepo.FindOpen(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load open requests: %+v", err)
		return nil, err
	}

	matches := u.matcher.Match(donor, origin, requests)

	alerts := make([]dto.AlertResponse, 0, len(matches))
	for _, match := range matches {
		alerts = append(alerts, converter.AlertMatchToResponse(match))
	}

	return alerts, nil
}

func (u *alertUsecase) RespondToRequest(ctx context.Context, donorID uuid.UUID, req *dto.RespondToRequestRequest) (*dto.DonorResponseResponse, error) {
	donor, err := u.donorRepo.FindByUserID(ctx, u.db, donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	request, err := u.requestRepo.FindByID(ctx, u.db, req.RequestID)
	if err != nil {
		u.log.Warnf("Failed to find blood request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	response := &entity.DonorResponse{
		DonorID:   donorID,
		RequestID: req.RequestID,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.responseRepo.Create(ctx, tx, response); err != nil {
		if isDuplicateKeyError(err, "idx_donor_request") {
			return nil, ErrAlreadyResponded
		}
		u.log.Warnf("Failed to create donor response: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &donorID, entity.AuditActionAlertRespond, "blood_request", req.RequestID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DonorResponseToResponse(response), nil
}
