package usecase

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockDonorProfileRepository struct {
	mock.Mock
}

func (m *MockDonorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error {
	args := m.Called(ctx, db, profile)
	return args.Error(0)
}

func (m *MockDonorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DonorProfile), args.Error(1)
}

func (m *MockDonorProfileRepository) FindAll(ctx context.Context, db *gorm.DB, filter repository.DonorFilter) ([]entity.DonorProfile, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DonorProfile), args.Error(1)
}

func (m *MockDonorProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.DonorProfile) error {
	args := m.Called(ctx, db, profile)
	return args.Error(0)
}

type MockBloodRequestRepository struct {
	mock.Mock
}

func (m *MockBloodRequestRepository) Create(ctx context.Context, db *gorm.DB, request *entity.BloodRequest) error {
	args := m.Called(ctx, db, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) FindOpen(ctx context.Context, db *gorm.DB) ([]entity.BloodRequest, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BloodRequest), args.Error(1)
}

type MockDonorResponseRepository struct {
	mock.Mock
}

func (m *MockDonorResponseRepository) Create(ctx context.Context, db *gorm.DB, response *entity.DonorResponse) error {
	args := m.Called(ctx, db, response)
	return args.Error(0)
}

func (m *MockDonorResponseRepository) FindByDonorID(ctx context.Context, db *gorm.DB, donorID uuid.UUID) ([]entity.DonorResponse, error) {
	args := m.Called(ctx, db, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DonorResponse), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, detail)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)
	return log
}

func newAlertUsecaseForTest(donorRepo *MockDonorProfileRepository, requestRepo *MockBloodRequestRepository, responseRepo *MockDonorResponseRepository) AlertUsecase {
	log := quietLogger()
	return NewAlertUsecase(nil, log, donorRepo, requestRepo, responseRepo, service.NewAlertMatcher(log), &MockAuditService{})
}

func geocodedDonor(bloodGroup string, radiusKm float64, urgencyLevel string, lat, lon float64) *entity.DonorProfile {
	receive := true
	return &entity.DonorProfile{
		UserID:        uuid.New(),
		BloodGroup:    bloodGroup,
		Location:      "Test City",
		Latitude:      &lat,
		Longitude:     &lon,
		ReceiveAlerts: &receive,
		AlertRadiusKm: radiusKm,
		UrgencyLevel:  urgencyLevel,
	}
}

func TestGetAlertsDonorNotFound(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	donorID := uuid.New()
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donorID).Return(nil, nil)

	_, err := uc.GetAlerts(context.Background(), donorID)

	assert.ErrorIs(t, err, ErrDonorNotFound)
	requestRepo.AssertNotCalled(t, "FindOpen", mock.Anything, mock.Anything)
}

func TestGetAlertsOptedOutSkipsRequestQuery(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	donor := geocodedDonor(entity.BloodGroupOPos, 10, entity.UrgencyLevelAll, 0, 0)
	receive := false
	donor.ReceiveAlerts = &receive
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donor.UserID).Return(donor, nil)

	alerts, err := uc.GetAlerts(context.Background(), donor.UserID)

	require.NoError(t, err)
	assert.Empty(t, alerts)
	requestRepo.AssertNotCalled(t, "FindOpen", mock.Anything, mock.Anything)
}

func TestGetAlertsDonorWithoutCoordinates(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	receive := true
	donor := &entity.DonorProfile{
		UserID:        uuid.New(),
		BloodGroup:    entity.BloodGroupOPos,
		ReceiveAlerts: &receive,
		AlertRadiusKm: 10,
		UrgencyLevel:  entity.UrgencyLevelAll,
	}
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donor.UserID).Return(donor, nil)

	_, err := uc.GetAlerts(context.Background(), donor.UserID)

	assert.ErrorIs(t, err, ErrDonorNotGeocoded)
}

func TestGetAlertsReturnsRankedMatches(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	donor := geocodedDonor(entity.BloodGroupOPos, 50, entity.UrgencyLevelAll, 0, 0)
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donor.UserID).Return(donor, nil)

	now := time.Now()
	requests := []entity.BloodRequest{
		{ID: uuid.New(), BloodGroup: entity.BloodGroupOPos, Urgency: entity.UrgencyNormal, Latitude: 0, Longitude: 0.2, CreatedAt: now},
		{ID: uuid.New(), BloodGroup: entity.BloodGroupOPos, Urgency: entity.UrgencyUrgent, Latitude: 0, Longitude: 0.1, CreatedAt: now},
		{ID: uuid.New(), BloodGroup: entity.BloodGroupANeg, Urgency: entity.UrgencyNormal, Latitude: 0, Longitude: 0.1, CreatedAt: now},
	}
	requestRepo.On("FindOpen", mock.Anything, mock.Anything).Return(requests, nil)

	alerts, err := uc.GetAlerts(context.Background(), donor.UserID)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, requests[1].ID, alerts[0].ID)
	assert.Equal(t, requests[0].ID, alerts[1].ID)
	assert.Less(t, alerts[0].DistanceKm, alerts[1].DistanceKm)
}

func TestRespondToRequestUnknownRequest(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	donor := geocodedDonor(entity.BloodGroupOPos, 10, entity.UrgencyLevelAll, 0, 0)
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donor.UserID).Return(donor, nil)

	requestID := uuid.New()
	requestRepo.On("FindByID", mock.Anything, mock.Anything, requestID).Return(nil, nil)

	_, err := uc.RespondToRequest(context.Background(), donor.UserID, &dto.RespondToRequestRequest{RequestID: requestID})

	assert.ErrorIs(t, err, ErrRequestNotFound)
	responseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespondToRequestUnknownDonor(t *testing.T) {
	donorRepo := new(MockDonorProfileRepository)
	requestRepo := new(MockBloodRequestRepository)
	responseRepo := new(MockDonorResponseRepository)
	uc := newAlertUsecaseForTest(donorRepo, requestRepo, responseRepo)

	donorID := uuid.New()
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, donorID).Return(nil, nil)

	_, err := uc.RespondToRequest(context.Background(), donorID, &dto.RespondToRequestRequest{RequestID: uuid.New()})

	assert.ErrorIs(t, err, ErrDonorNotFound)
}
