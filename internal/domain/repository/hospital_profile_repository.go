package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.HospitalProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.HospitalProfile, error)
	UpdateAvailability(ctx context.Context, db *gorm.DB, userID uuid.UUID, availability entity.BloodAvailability) error
}
