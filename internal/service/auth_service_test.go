package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hrgate/internal/auth"
	apperrors "hrgate/internal/errors"
	"hrgate/internal/model"
)

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, identityToken, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, identityToken, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockEmployeeRepository, *MockProvider, *MockTokenStore)
		expectedDest  string
		expectedError error
	}{
		{
			name:     "admin lands on the dashboard",
			email:    "admin@example.com",
			password: "secret",
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider, mStore *MockTokenStore) {
				mProv.On("Authenticate", mock.Anything, "admin@example.com", "secret").Return("token-a", nil)
				mEmp.On("FindByToken", mock.Anything, "token-a").Return(&model.Employee{
					IdentityToken: "token-a",
					Email:         "admin@example.com",
					Role:          model.RoleAdmin,
				}, nil)
				mStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "token-a", "admin@example.com", mock.Anything).Return(nil)
			},
			expectedDest: "/dashboard",
		},
		{
			name:     "employee lands on the attendance page",
			email:    "sara@example.com",
			password: "secret",
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider, mStore *MockTokenStore) {
				mProv.On("Authenticate", mock.Anything, "sara@example.com", "secret").Return("token-s", nil)
				mEmp.On("FindByToken", mock.Anything, "token-s").Return(&model.Employee{
					IdentityToken: "token-s",
					Email:         "sara@example.com",
					Role:          model.RoleEmployee,
				}, nil)
				mStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "token-s", "sara@example.com", mock.Anything).Return(nil)
			},
			expectedDest: "/attendance",
		},
		{
			name:     "invalid credentials",
			email:    "sara@example.com",
			password: "wrong",
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider, mStore *MockTokenStore) {
				mProv.On("Authenticate", mock.Anything, "sara@example.com", "wrong").Return("", apperrors.ErrInvalidCredentials)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "valid identity with no roster record is rejected",
			email:    "ghost@example.com",
			password: "secret",
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider, mStore *MockTokenStore) {
				mProv.On("Authenticate", mock.Anything, "ghost@example.com", "secret").Return("token-g", nil)
				mEmp.On("FindByToken", mock.Anything, "token-g").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUnknownIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmp := new(MockEmployeeRepository)
			mockProv := new(MockProvider)
			mockStore := new(MockTokenStore)
			tt.setupMock(mockEmp, mockProv, mockStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockEmp, mockProv, jwtService, mockStore)

			result, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.Equal(t, tt.expectedDest, result.Destination)
			}

			mockEmp.AssertExpectations(t)
			mockProv.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("token-s", "sara@example.com", model.RoleEmployee)
	assert.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return("token-s", "sara@example.com", nil)

	svc := NewAuthService(new(MockEmployeeRepository), new(MockProvider), jwtService, mockStore)
	accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "token-s", claims.IdentityToken)
	assert.Equal(t, model.RoleEmployee, claims.Role)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(new(MockEmployeeRepository), new(MockProvider), jwtService, new(MockTokenStore))

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("token-s", "sara@example.com", model.RoleEmployee)
	assert.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockEmployeeRepository), new(MockProvider), jwtService, mockStore)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	mockStore.AssertExpectations(t)
}
