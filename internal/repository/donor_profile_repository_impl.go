package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"
	domainRepo "bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donorProfileRepository struct{}

func NewDonorProfileRepository() domainRepo.DonorProfileRepository {
	return &donorProfileRepository{}
}

func (r *donorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *donorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error) {
	var profile entity.DonorProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *donorProfileRepository) FindAll(ctx context.Context, db *gorm.DB, filter domainRepo.DonorFilter) ([]entity.DonorProfile, error) {
	query := db.WithContext(ctx).Preload("User")
	if filter.BloodGroup != "" {
		query = query.Where("blood_group = ?", filter.BloodGroup)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var profiles []entity.DonorProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *donorProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}
