package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hrgate/internal/auth"
	apperrors "hrgate/internal/errors"
	"hrgate/internal/identity"
	"hrgate/internal/model"
	"hrgate/internal/repository"
)

// LoginResult carries session tokens and the role-based landing page.
type LoginResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Employee     *model.Employee `json:"employee"`
	Destination  string          `json:"destination"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	employeeRepo repository.EmployeeRepository
	provider     identity.Provider
	jwtService   *auth.JWTService
	tokenStore   auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	employeeRepo repository.EmployeeRepository,
	provider identity.Provider,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		provider:     provider,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

// Login authenticates against the identity provider, resolves the roster
// entry, and issues session tokens. An identity with valid credentials but no
// roster record is rejected: having an account is not enough to be on the
// roster.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	token, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindByToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUnknownIdentity
		}
		return nil, fmt.Errorf("look up employee: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(token, employee.Email, employee.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(token, employee.Email, employee.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, token, employee.Email, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee:     employee,
		Destination:  destinationFor(employee.Role),
	}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	storedToken, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if storedToken != claims.IdentityToken || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.IdentityToken, claims.Email, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

func destinationFor(role model.Role) string {
	if role == model.RoleAdmin {
		return "/dashboard"
	}
	return "/attendance"
}
