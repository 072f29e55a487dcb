package usecase

import (
	"context"
	"testing"

	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(ctx, db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func newDonorUsecaseForTest(userRepo *MockUserRepository, donorRepo *MockDonorProfileRepository) DonorUsecase {
	return NewDonorUsecase(nil, quietLogger(), userRepo, donorRepo, &MockAuditService{})
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestUpdateProfileRejectsNonPositiveRadius(t *testing.T) {
	uc := newDonorUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository))

	for _, radius := range []float64{0, -1, -10.5} {
		_, err := uc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateDonorProfileRequest{
			AlertRadiusKm: floatPtr(radius),
		})
		assert.ErrorIs(t, err, ErrInvalidAlertRadius)
	}
}

func TestUpdateProfileRejectsUnknownUrgencyLevel(t *testing.T) {
	uc := newDonorUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository))

	for _, level := range []string{"Critical", "urgent", "none", ""} {
		_, err := uc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateDonorProfileRequest{
			UrgencyLevel: strPtr(level),
		})
		assert.ErrorIs(t, err, ErrInvalidUrgencyLevel)
	}
}

func TestUpdateProfileRejectsUnknownBloodGroup(t *testing.T) {
	uc := newDonorUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository))

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateDonorProfileRequest{
		BloodGroup: strPtr("C+"),
	})
	assert.ErrorIs(t, err, ErrInvalidBloodGroup)
}

func TestUpdateProfileRejectsHalfCoordinatePair(t *testing.T) {
	uc := newDonorUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository))

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateDonorProfileRequest{
		Latitude: floatPtr(10),
	})
	assert.ErrorIs(t, err, ErrIncompleteCoordinate)
}

func TestListDonorsAppliesFilter(t *testing.T) {
	userRepo := new(MockUserRepository)
	donorRepo := new(MockDonorProfileRepository)
	uc := newDonorUsecaseForTest(userRepo, donorRepo)

	filter := repository.DonorFilter{BloodGroup: entity.BloodGroupONeg, Location: "Springfield"}
	profiles := []entity.DonorProfile{
		{
			UserID:        uuid.New(),
			BloodGroup:    entity.BloodGroupONeg,
			Location:      "Springfield",
			AlertRadiusKm: 10,
			UrgencyLevel:  entity.UrgencyLevelAll,
			User:          entity.User{Email: "donor@example.com", FullName: "Donor One"},
		},
	}
	donorRepo.On("FindAll", mock.Anything, mock.Anything, filter).Return(profiles, nil)

	resp, err := uc.ListDonors(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, entity.BloodGroupONeg, resp.Donors[0].BloodGroup)
	donorRepo.AssertExpectations(t)
}

func TestListDonorsRejectsInvalidBloodGroupFilter(t *testing.T) {
	uc := newDonorUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository))

	_, err := uc.ListDonors(context.Background(), repository.DonorFilter{BloodGroup: "XY"})
	assert.ErrorIs(t, err, ErrInvalidBloodGroup)
}
