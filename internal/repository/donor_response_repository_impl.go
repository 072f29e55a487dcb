package repository

import (
	"context"

	"bloodlink/internal/domain/entity"
	domainRepo "bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donorResponseRepository struct{}

func NewDonorResponseRepository() domainRepo.DonorResponseRepository {
	return &donorResponseRepository{}
}

func (r *donorResponseRepository) Create(ctx context.Context, db *gorm.DB, response *entity.DonorResponse) error {
	return db.WithContext(ctx).Create(response).Error
}

func (r *donorResponseRepository) FindByDonorID(ctx context.Context, db *gorm.DB, donorID uuid.UUID) ([]entity.DonorResponse, error) {
	var responses []entity.DonorResponse
	err := db.WithContext(ctx).Preload("Request").Where("donor_id = ?", donorID).Order("created_at DESC").Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
