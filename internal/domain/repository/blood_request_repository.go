package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodRequestRepository interface {
	Create(ctx context.Context, db *gorm.DB, request *entity.BloodRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error)
	// FindAll returns every request, newest first.
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error)
	// FindOpen returns the requests eligible for alert matching, oldest
	// first so downstream tie-breaking is deterministic.
	FindOpen(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error)
}
