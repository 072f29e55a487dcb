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
	ErrDonorNotFound        = errors.New("donor not found")
	ErrInvalidAlertRadius   = errors.New("alert radius must be positive")
	ErrInvalidUrgencyLevel  = errors.New("urgency level must be All, Urgent or Normal")
	ErrInvalidBloodGroup    = errors.New("invalid blood group")
	ErrIncompleteCoordinate = errors.New("latitude and longitude must be provided together")
)

type DonorUsecase interface {
	ListDonors(ctx context.Context, filter repository.DonorFilter) (*dto.DonorListResponse, error)
	GetDonor(ctx context.Context, userID uuid.UUID) (*dto.DonorResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorResponse, error)
}

type donorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	donorRepo    repository.DonorProfileRepository
	auditService service.AuditService
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	donorRepo repository.DonorProfileRepository,
	auditService service.AuditService,
) DonorUsecase {
	return &donorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		donorRepo:    donorRepo,
		auditService: auditService,
	}
}

func (u *donorUsecase) ListDonors(ctx context.Context, filter repository.DonorFilter) (*dto.DonorListResponse, error) {
	if filter.BloodGroup != "" && !entity.IsValidBloodGroup(filter.BloodGroup) {
		return nil, ErrInvalidBloodGroup
	}

	profiles, err := u.donorRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list donors: %+v", err)
		return nil, err
	}

	donors := make([]dto.DonorResponse, 0, len(profiles))
	for i := range profiles {
		if resp := converter.DonorProfileToResponse(&profiles[i], &profiles[i].User); resp != nil {
			donors = append(donors, *resp)
		}
	}

	return &dto.DonorListResponse{
		Donors: donors,
		Total:  len(donors),
	}, nil
}

func (u *donorUsecase) GetDonor(ctx context.Context, userID uuid.UUID) (*dto.DonorResponse, error) {
	profile, user, err := u.findDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return converter.DonorProfileToResponse(profile, user), nil
}

func (u *donorUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorResponse, error) {
	// Reject malformed preference values before touching the store.
	if req.AlertRadiusKm != nil && *req.AlertRadiusKm <= 0 {
		return nil, ErrInvalidAlertRadius
	}
	if req.UrgencyLevel != nil && !entity.IsValidUrgencyLevel(*req.UrgencyLevel) {
		return nil, ErrInvalidUrgencyLevel
	}
	if req.BloodGroup != nil && !entity.IsValidBloodGroup(*req.BloodGroup) {
		return nil, ErrInvalidBloodGroup
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, ErrIncompleteCoordinate
	}
	if req.Latitude != nil {
		coord := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if err := coord.Validate(); err != nil {
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, user, err := u.findDonorTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
		if err := u.userRepo.Update(ctx, tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.BloodGroup != nil {
		profile.BloodGroup = *req.BloodGroup
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
		profile.Longitude = req.Longitude
	}
	if req.ReceiveAlerts != nil {
		profile.ReceiveAlerts = req.ReceiveAlerts
	}
	if req.AlertRadiusKm != nil {
		profile.AlertRadiusKm = *req.AlertRadiusKm
	}
	if req.UrgencyLevel != nil {
		profile.UrgencyLevel = *req.UrgencyLevel
	}

	if err := u.donorRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update donor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionProfileUpdate, "donor", userID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DonorProfileToResponse(profile, user), nil
}

func (u *donorUsecase) findDonor(ctx context.Context, userID uuid.UUID) (*entity.DonorProfile, *entity.User, error) {
	return u.findDonorTx(ctx, u.db, userID)
}

func (u *donorUsecase) findDonorTx(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, *entity.User, error) {
	profile, err := u.donorRepo.FindByUserID(ctx, db, userID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrDonorNotFound
	}

	user, err := u.userRepo.FindByID(ctx, db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrDonorNotFound
	}

	return profile, user, nil
}
