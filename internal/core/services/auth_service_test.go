package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/core/services"
	"github.com/vnpayroll/attendance_backend/internal/platform/config"
	"github.com/vnpayroll/attendance_backend/internal/utils"
)

const testSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	mockAdminRepo    *MockAdminRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.AuthSvcFacade
	passwordHash     string
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	suite.passwordHash = hash
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockAdminRepo = new(MockAdminRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	cfg := &config.Config{JWTSecret: testSecret, JWTExpiryDuration: time.Hour, JWTIssuer: "attendance-test"}
	suite.service = services.NewAuthService(suite.mockAdminRepo, suite.mockEmployeeRepo, cfg)
}

func (suite *AuthServiceTestSuite) TestLoginAdmin_Success() {
	ctx := context.Background()
	admin := &domain.Admin{AdminID: 3, Phone: "0900000001", PasswordHash: suite.passwordHash}
	suite.mockAdminRepo.On("FindAdminByPhone", ctx, "0900000001").Return(admin, nil).Once()

	token, got, err := suite.service.LoginAdmin(ctx, "0900000001", "secret123")

	suite.Require().NoError(err)
	suite.Equal(admin, got)
	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	suite.Require().NoError(err)
	suite.Equal(utils.RoleAdmin, claims.Role)
	id, err := claims.SubjectID()
	suite.Require().NoError(err)
	suite.Equal(int64(3), id)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLoginAdmin_WrongPassword() {
	ctx := context.Background()
	admin := &domain.Admin{AdminID: 3, Phone: "0900000001", PasswordHash: suite.passwordHash}
	suite.mockAdminRepo.On("FindAdminByPhone", ctx, "0900000001").Return(admin, nil).Once()

	token, got, err := suite.service.LoginAdmin(ctx, "0900000001", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(token)
	suite.Nil(got)
}

func (suite *AuthServiceTestSuite) TestLoginAdmin_UnknownPhoneLooksLikeBadPassword() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindAdminByPhone", ctx, "0999").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.LoginAdmin(ctx, "0999", "secret123")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLoginAdmin_RepoError() {
	ctx := context.Background()
	suite.mockAdminRepo.On("FindAdminByPhone", ctx, "0900000001").Return(nil, assert.AnError).Once()

	_, _, err := suite.service.LoginAdmin(ctx, "0900000001", "secret123")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *AuthServiceTestSuite) TestLoginEmployee_Success() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 11, Phone: "0911", PasswordHash: suite.passwordHash, ActiveStatus: domain.StatusActive}
	suite.mockEmployeeRepo.On("FindEmployeeByPhone", ctx, "0911").Return(employee, nil).Once()

	token, got, err := suite.service.LoginEmployee(ctx, "0911", "secret123")

	suite.Require().NoError(err)
	suite.Equal(int64(11), got.EmployeeID)
	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	suite.Require().NoError(err)
	suite.Equal(utils.RoleEmployee, claims.Role)
}

func (suite *AuthServiceTestSuite) TestLoginEmployee_Inactive() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 11, Phone: "0911", PasswordHash: suite.passwordHash, ActiveStatus: domain.StatusUnactive}
	suite.mockEmployeeRepo.On("FindEmployeeByPhone", ctx, "0911").Return(employee, nil).Once()

	token, _, err := suite.service.LoginEmployee(ctx, "0911", "secret123")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Empty(token)
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_HashesPassword() {
	ctx := context.Background()
	suite.mockAdminRepo.On("SaveAdmin", ctx, mock.MatchedBy(func(a domain.Admin) bool {
		return a.Phone == "0900" && a.Name == "Owner" && utils.CheckPasswordHash("bootstrap1", a.PasswordHash)
	})).Return(true, nil).Once()

	created, err := suite.service.EnsureAdmin(ctx, "Owner", "0900", "bootstrap1")

	suite.Require().NoError(err)
	suite.True(created)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_AlreadyPresent() {
	ctx := context.Background()
	suite.mockAdminRepo.On("SaveAdmin", ctx, mock.AnythingOfType("domain.Admin")).Return(false, nil).Once()

	created, err := suite.service.EnsureAdmin(ctx, "Owner", "0900", "bootstrap1")

	suite.Require().NoError(err)
	suite.False(created)
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_MissingCredentials() {
	_, err := suite.service.EnsureAdmin(context.Background(), "Owner", "", "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "SaveAdmin", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_ShortPassword() {
	_, err := suite.service.EnsureAdmin(context.Background(), "Owner", "0900", "abc")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "SaveAdmin", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
