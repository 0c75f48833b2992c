package repository

import (
	"context"

	"gorm.io/gorm"

	"hrgate/internal/model"
)

// IdentityRepository defines identity persistence operations.
type IdentityRepository interface {
	Create(ctx context.Context, identity *model.Identity) error
	FindByEmail(ctx context.Context, email string) (*model.Identity, error)
	FindByToken(ctx context.Context, token string) (*model.Identity, error)
	ListOrphans(ctx context.Context) ([]model.Identity, error)
}

type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository.
func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

// Create inserts a new identity.
func (r *identityRepository) Create(ctx context.Context, identity *model.Identity) error {
	return r.db.WithContext(ctx).Create(identity).Error
}

// FindByEmail finds an identity by email.
func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

// FindByToken finds an identity by its token.
func (r *identityRepository) FindByToken(ctx context.Context, token string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

// ListOrphans returns identities whose token no longer matches an employee.
// Soft-deleted employees count as gone, matching roster Delete semantics.
func (r *identityRepository) ListOrphans(ctx context.Context) ([]model.Identity, error) {
	var identities []model.Identity
	sub := r.db.Model(&model.Employee{}).Select("identity_token")
	if err := r.db.WithContext(ctx).
		Where("token NOT IN (?)", sub).
		Find(&identities).Error; err != nil {
		return nil, err
	}
	return identities, nil
}
