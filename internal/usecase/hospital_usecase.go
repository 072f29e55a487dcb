package usecase

import (
	"context"
	"errors"

	"bloodlink/internal/converter"
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHospitalNotFound = errors.New("hospital not found")

type HospitalUsecase interface {
	GetHospital(ctx context.Context, userID uuid.UUID) (*dto.HospitalResponse, error)
	UpdateAvailability(ctx context.Context, userID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.HospitalResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalProfileRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalProfileRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, userID uuid.UUID) (*dto.HospitalResponse, error) {
	profile, err := u.hospitalRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalProfileToResponse(profile, &profile.User), nil
}

// UpdateAvailability replaces the whole stock map; the DTO's validation
// already guarantees all 8 groups are present and non-negative.
func (u *hospitalUsecase) UpdateAvailability(ctx context.Context, userID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.HospitalResponse, error) {
	availability := entity.BloodAvailability{
		APos:  *req.APos,
		ANeg:  *req.ANeg,
		BPos:  *req.BPos,
		BNeg:  *req.BNeg,
		ABPos: *req.ABPos,
		ABNeg: *req.ABNeg,
		OPos:  *req.OPos,
		ONeg:  *req.ONeg,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.hospitalRepo.UpdateAvailability(ctx, tx, userID, availability); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		u.log.Warnf("Failed to update availability: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionAvailabilityUpdate, "hospital", userID.String(), availability); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile, err := u.hospitalRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to reload hospital profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalProfileToResponse(profile, &profile.User), nil
}
