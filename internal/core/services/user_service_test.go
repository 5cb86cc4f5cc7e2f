package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	"github.com/smartdom/shift_management_app/internal/core/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Encargado", Email: "encargado@local.test", Password: "super-secret-1"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	svc := services.NewUserService(suite.mockRepo)
	user, err := svc.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.True(user.IsActive)
	suite.NotEqual(req.Password, user.PasswordHash, "password must be stored hashed")
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Encargado", Email: "dup@local.test", Password: "super-secret-1"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	svc := services.NewUserService(suite.mockRepo)
	user, err := svc.CreateUser(ctx, req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "a@b.test").
		Return(&domain.User{UserID: "user-1", Email: "a@b.test", PasswordHash: hash, IsActive: true}, nil).Once()

	svc := services.NewUserService(suite.mockRepo)
	user, err := svc.AuthenticateUser(ctx, "a@b.test", "correct-password")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "a@b.test").
		Return(&domain.User{UserID: "user-1", PasswordHash: hash, IsActive: true}, nil).Once()

	svc := services.NewUserService(suite.mockRepo)
	user, err := svc.AuthenticateUser(ctx, "a@b.test", "wrong-password")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@b.test").
		Return(nil, apperrors.ErrNotFound).Once()

	svc := services.NewUserService(suite.mockRepo)
	user, err := svc.AuthenticateUser(ctx, "nobody@b.test", "whatever")

	suite.Nil(user)
	// Unknown email and bad password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
