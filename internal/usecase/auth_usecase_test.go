package usecase

import (
	"context"
	"testing"
	"time"

	"bloodlink/config"
	"bloodlink/internal/delivery/dto"
	"bloodlink/internal/domain/entity"
	"bloodlink/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB backs a gorm handle with sqlmock so transaction
// boundaries can be asserted without a database.
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, dbMock, func() { sqlDB.Close() }
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func newAuthUsecaseForTest(userRepo *MockUserRepository, donorRepo *MockDonorProfileRepository, hospitalRepo *MockHospitalProfileRepository) AuthUsecase {
	return NewAuthUsecase(
		nil,
		quietLogger(),
		config.AlertConfig{DefaultRadiusKm: 10},
		userRepo,
		donorRepo,
		hospitalRepo,
		&MockAuditService{},
		testJWTService(),
		nil,
	)
}

func TestRegisterDonorRejectsHalfCoordinatePair(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err := uc.RegisterDonor(context.Background(), &dto.RegisterDonorRequest{
		Email:      "donor@example.com",
		Password:   "secret123",
		FullName:   "Jane Donor",
		BloodGroup: entity.BloodGroupAPos,
		Location:   "Dhaka",
		Latitude:   floatPtr(23.8103),
	})
	assert.ErrorIs(t, err, ErrIncompleteCoordinate)
}

func TestRegisterDonorHashesPassword(t *testing.T) {
	db, dbMock, cleanup := newMockGormDB(t)
	defer cleanup()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	const plaintext = "secret123"

	var created *entity.User
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(2).(*entity.User)
			created.ID = uuid.New()
		}).Return(nil)

	donorRepo := new(MockDonorProfileRepository)
	donorRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	auditService := new(MockAuditService)
	auditService.On("LogAction", mock.Anything, mock.Anything, mock.Anything,
		entity.AuditActionDonorRegister, "donor", mock.Anything, mock.Anything).Return(nil)

	uc := NewAuthUsecase(db, quietLogger(), config.AlertConfig{DefaultRadiusKm: 10},
		userRepo, donorRepo, new(MockHospitalProfileRepository), auditService, testJWTService(), nil)

	resp, err := uc.RegisterDonor(context.Background(), &dto.RegisterDonorRequest{
		Email:      "donor@example.com",
		Password:   plaintext,
		FullName:   "Jane Donor",
		BloodGroup: entity.BloodGroupAPos,
		Location:   "Dhaka",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, created)
	assert.NotEqual(t, plaintext, created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(plaintext)))

	require.NotNil(t, resp.Donor)
	assert.Equal(t, 10.0, resp.Donor.AlertRadiusKm)
	assert.Equal(t, entity.UrgencyLevelAll, resp.Donor.UrgencyLevel)

	auditService.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegisterHospitalHashesPassword(t *testing.T) {
	db, dbMock, cleanup := newMockGormDB(t)
	defer cleanup()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	const plaintext = "secret123"

	var created *entity.User
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(2).(*entity.User)
			created.ID = uuid.New()
		}).Return(nil)

	hospitalRepo := new(MockHospitalProfileRepository)
	hospitalRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	auditService := new(MockAuditService)
	auditService.On("LogAction", mock.Anything, mock.Anything, mock.Anything,
		entity.AuditActionHospitalRegister, "hospital", mock.Anything, mock.Anything).Return(nil)

	uc := NewAuthUsecase(db, quietLogger(), config.AlertConfig{DefaultRadiusKm: 10},
		userRepo, new(MockDonorProfileRepository), hospitalRepo, auditService, testJWTService(), nil)

	resp, err := uc.RegisterHospital(context.Background(), &dto.RegisterHospitalRequest{
		Email:    "hospital@example.com",
		Password: plaintext,
		FullName: "City Hospital",
		Location: "Dhaka",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, created)
	assert.NotEqual(t, plaintext, created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(plaintext)))

	// New hospitals start with every group at zero units.
	require.NotNil(t, resp.Hospital)
	for _, group := range entity.BloodGroups {
		assert.Equal(t, 0, resp.Hospital.Availability[group])
	}

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, nil)

	uc := newAuthUsecaseForTest(userRepo, new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "donor@example.com",
		Password: string(hash),
		RoleID:   entity.RoleIDDonor,
	}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything, user.Email).Return(user, nil)

	uc := newAuthUsecaseForTest(userRepo, new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	jwtService := testJWTService()
	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "donor@example.com", entity.RoleIDDonor)
	require.NoError(t, err)

	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: accessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetCurrentUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	uc := newAuthUsecaseForTest(userRepo, new(MockDonorProfileRepository), new(MockHospitalProfileRepository))

	_, err := uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCurrentUserAttachesDonorProfile(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Email:    "donor@example.com",
		FullName: "Jane Donor",
		RoleID:   entity.RoleIDDonor,
	}
	profile := &entity.DonorProfile{
		UserID:        userID,
		BloodGroup:    entity.BloodGroupONeg,
		Location:      "Chittagong",
		AlertRadiusKm: 25,
		UrgencyLevel:  entity.UrgencyLevelAll,
	}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(user, nil)
	donorRepo := new(MockDonorProfileRepository)
	donorRepo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(profile, nil)

	uc := newAuthUsecaseForTest(userRepo, donorRepo, new(MockHospitalProfileRepository))

	resp, err := uc.GetCurrentUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.RoleDonor, resp.Role)
	require.NotNil(t, resp.Donor)
	assert.Equal(t, entity.BloodGroupONeg, resp.Donor.BloodGroup)
	assert.Nil(t, resp.Hospital)
}

func TestGetCurrentUserAttachesHospitalProfile(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Email:    "hospital@example.com",
		FullName: "City Hospital",
		RoleID:   entity.RoleIDHospital,
	}
	profile := &entity.HospitalProfile{
		UserID:   userID,
		Location: "Dhaka",
		Availability: entity.BloodAvailability{
			BPos: 7,
		},
	}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(user, nil)
	hospitalRepo := new(MockHospitalProfileRepository)
	hospitalRepo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(profile, nil)

	uc := newAuthUsecaseForTest(userRepo, new(MockDonorProfileRepository), hospitalRepo)

	resp, err := uc.GetCurrentUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.RoleHospital, resp.Role)
	require.NotNil(t, resp.Hospital)
	assert.Equal(t, 7, resp.Hospital.Availability[entity.BloodGroupBPos])
	assert.Nil(t, resp.Donor)
}
