package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorResponseRepository interface {
	Create(ctx context.Context, db *gorm.DB, response *entity.DonorResponse) error
	FindByDonorID(ctx context.Context, db *gorm.DB, donorID uuid.UUID) ([]entity.DonorResponse, error)
}
