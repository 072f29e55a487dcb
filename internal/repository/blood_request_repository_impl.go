package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"
	domainRepo "bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodRequestRepository struct{}

func NewBloodRequestRepository() domainRepo.BloodRequestRepository {
	return &bloodRequestRepository{}
}

func (r *bloodRequestRepository) Create(ctx context.Context, db *gorm.DB, request *entity.BloodRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *bloodRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	err := db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *bloodRequestRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *bloodRequestRepository) FindOpen(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := db.WithContext(ctx).Order("created_at ASC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
