package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "hrgate/internal/errors"
	"hrgate/internal/model"
	"hrgate/internal/repository"
)

const bcryptCost = 10

// Provider maps credentials to stable opaque identity tokens. The roster and
// attendance code treats it as an external collaborator: the token is the only
// thing that crosses the boundary.
type Provider interface {
	// CreateIdentity provisions a new identity and returns its token.
	CreateIdentity(ctx context.Context, email, credential string) (string, error)
	// Authenticate verifies credentials and returns the identity's token.
	Authenticate(ctx context.Context, email, credential string) (string, error)
}

type localProvider struct {
	repo repository.IdentityRepository
}

// NewLocalProvider creates a provider backed by the identities table.
func NewLocalProvider(repo repository.IdentityRepository) Provider {
	return &localProvider{repo: repo}
}

// CreateIdentity provisions a new identity with a bcrypt-hashed credential.
// A duplicate email aborts before any write.
func (p *localProvider) CreateIdentity(ctx context.Context, email, credential string) (string, error) {
	existing, err := p.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check identity existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}

	ident := &model.Identity{
		Email:          email,
		CredentialHash: string(hashed),
		Token:          uuid.New().String(),
	}
	if err := p.repo.Create(ctx, ident); err != nil {
		return "", fmt.Errorf("create identity: %w", err)
	}

	return ident.Token, nil
}

// Authenticate verifies credentials and returns the token on success.
func (p *localProvider) Authenticate(ctx context.Context, email, credential string) (string, error) {
	ident, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.CredentialHash), []byte(credential)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return ident.Token, nil
}
