package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonorFilter narrows donor listings; zero values mean no filtering.
type DonorFilter struct {
	BloodGroup string
	Location   string
}

type DonorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error)
	FindAll(ctx context.Context, db *gorm.DB, filter DonorFilter) ([]entity.DonorProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error
}
