package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hrgate/internal/cache"
	apperrors "hrgate/internal/errors"
	"hrgate/internal/identity"
	"hrgate/internal/model"
	"hrgate/internal/repository"
)

const (
	rosterCacheKey = "roster:list"
	rosterCacheTTL = 5 * time.Minute
)

// EmployeeInput carries the descriptive attributes owned by the roster.
type EmployeeInput struct {
	Name       string
	Email      string
	HourlyRate decimal.Decimal
	Department string
	BirthDate  string
	Address    string
}

// RosterService owns employee records and their scan payloads.
type RosterService interface {
	List(ctx context.Context) ([]model.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*model.Employee, error)
	Update(ctx context.Context, id uuid.UUID, input EmployeeInput) (*model.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ScanPayload(ctx context.Context, id uuid.UUID) (string, error)
	Orphans(ctx context.Context) ([]model.Identity, error)
}

type rosterService struct {
	employeeRepo    repository.EmployeeRepository
	identityRepo    repository.IdentityRepository
	provider        identity.Provider
	cache           *cache.Client
	defaultPassword string
}

// NewRosterService creates a new roster service.
func NewRosterService(
	employeeRepo repository.EmployeeRepository,
	identityRepo repository.IdentityRepository,
	provider identity.Provider,
	cache *cache.Client,
	defaultPassword string,
) RosterService {
	return &rosterService{
		employeeRepo:    employeeRepo,
		identityRepo:    identityRepo,
		provider:        provider,
		cache:           cache,
		defaultPassword: defaultPassword,
	}
}

// List returns the full roster, serving from cache when possible.
func (s *rosterService) List(ctx context.Context) ([]model.Employee, error) {
	var cached []model.Employee
	if s.cache.GetJSON(ctx, rosterCacheKey, &cached) {
		return cached, nil
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	s.cache.SetJSON(ctx, rosterCacheKey, employees, rosterCacheTTL)
	return employees, nil
}

// Create provisions an identity for the employee's email and writes the
// roster record. The two steps are not transactional: if the record write
// fails after the identity exists, the identity is orphaned until the
// Orphans sweep picks it up.
func (s *rosterService) Create(ctx context.Context, input EmployeeInput) (*model.Employee, error) {
	if input.HourlyRate.IsNegative() {
		return nil, apperrors.ErrNegativeRate
	}

	token, err := s.provider.CreateIdentity(ctx, input.Email, s.defaultPassword)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		IdentityToken: token,
		Name:          input.Name,
		Email:         input.Email,
		HourlyRate:    input.HourlyRate,
		Department:    input.Department,
		BirthDate:     input.BirthDate,
		Address:       input.Address,
		Role:          model.RoleEmployee,
		Active:        true,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	_ = s.cache.Delete(ctx, rosterCacheKey)
	return employee, nil
}

// Update overwrites the descriptive attributes of an existing employee.
// Identity token, role, active flag and the identity provider account are
// never touched here.
func (s *rosterService) Update(ctx context.Context, id uuid.UUID, input EmployeeInput) (*model.Employee, error) {
	if input.HourlyRate.IsNegative() {
		return nil, apperrors.ErrNegativeRate
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	employee.Name = input.Name
	employee.Email = input.Email
	employee.HourlyRate = input.HourlyRate
	employee.Department = input.Department
	employee.BirthDate = input.BirthDate
	employee.Address = input.Address

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	_ = s.cache.Delete(ctx, rosterCacheKey)
	return employee, nil
}

// Delete removes the roster record only. The identity account and the
// employee's attendance history are retained after offboarding.
func (s *rosterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("delete employee: %w", err)
	}

	_ = s.cache.Delete(ctx, rosterCacheKey)
	return nil
}

// ScanPayload returns the exact string to render into the employee's QR
// badge: the raw identity token, no envelope or signature. Anyone holding a
// copy of the rendered code can present the identity.
func (s *rosterService) ScanPayload(ctx context.Context, id uuid.UUID) (string, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("find employee: %w", err)
	}
	return employee.IdentityToken, nil
}

// Orphans lists identities left behind by a Create that provisioned the
// account but failed to persist the roster record.
func (s *rosterService) Orphans(ctx context.Context) ([]model.Identity, error) {
	orphans, err := s.identityRepo.ListOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orphan identities: %w", err)
	}
	return orphans, nil
}
