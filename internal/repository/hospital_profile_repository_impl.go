package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"
	domainRepo "bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalProfileRepository struct{}

func NewHospitalProfileRepository() domainRepo.HospitalProfileRepository {
	return &hospitalProfileRepository{}
}

func (r *hospitalProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.HospitalProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *hospitalProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.HospitalProfile, error) {
	var profile entity.HospitalProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateAvailability replaces the whole stock map in a single statement;
// partial updates are never issued.
func (r *hospitalProfileRepository) UpdateAvailability(ctx context.Context, db *gorm.DB, userID uuid.UUID, availability entity.BloodAvailability) error {
	result := db.WithContext(ctx).
		Model(&entity.HospitalProfile{}).
		Where("user_id = ?", userID).
		Select("units_a_pos", "units_a_neg", "units_b_pos", "units_b_neg",
			"units_ab_pos", "units_ab_neg", "units_o_pos", "units_o_neg").
		Updates(entity.HospitalProfile{Availability: availability})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
